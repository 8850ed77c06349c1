package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/clients/api"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/persistence/sqlstore"
	"github.com/jsamuelsen11/tasks-service/internal/app"
	"github.com/jsamuelsen11/tasks-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// Backend is the pair of services the commands run against.
type Backend struct {
	Auth  ports.AuthService
	Tasks ports.TaskService
	close func() error
}

// Close releases the backend's resources.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenBackend builds the services selected by cfg.Mode: the API client for a
// remote server, or the application services over a local SQLite database.
func OpenBackend(ctx context.Context, cfg Config, logger *slog.Logger) (*Backend, error) {
	switch cfg.Mode {
	case ModeRemote:
		clientCfg := cfg.ClientConfig()
		client := api.NewClient(httpclient.New(&clientCfg, "tasks-api", nil, logger), logger)
		return &Backend{Auth: client, Tasks: client}, nil

	case ModeLocal:
		if err := ensureSQLiteDir(cfg.DSN); err != nil {
			return nil, err
		}
		store, err := sqlstore.Open(ctx, sqlstore.SQLite, cfg.DSN, sqlstore.Options{Migrate: true, Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("open local store: %w", err)
		}
		users, tasks := store.Users(), store.Tasks()
		return &Backend{
			Auth:  app.NewAuthService(users, nil, logger),
			Tasks: app.NewTaskService(users, tasks, nil, logger),
			close: store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
}

// ensureSQLiteDir creates the parent directory of a "file:" DSN so the
// first local run works on a clean machine.
func ensureSQLiteDir(dsn string) error {
	path, ok := strings.CutPrefix(dsn, "file:")
	if !ok {
		return nil
	}
	path, _, _ = strings.Cut(path, "?")
	if path == "" || path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
