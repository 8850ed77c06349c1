// Command server runs the tasks HTTP API. Configuration comes from the
// profile named by APP_PROFILE; SIGINT or SIGTERM drains in-flight requests
// before storage and telemetry are closed.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/cache"
	adapthttp "github.com/jsamuelsen11/tasks-service/internal/adapters/http"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/persistence/memory"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/persistence/sqlstore"
	"github.com/jsamuelsen11/tasks-service/internal/app"
	"github.com/jsamuelsen11/tasks-service/internal/platform/config"
	"github.com/jsamuelsen11/tasks-service/internal/platform/health"
	"github.com/jsamuelsen11/tasks-service/internal/platform/logging"
	"github.com/jsamuelsen11/tasks-service/internal/platform/sanitize"
	"github.com/jsamuelsen11/tasks-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(providers, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerDependencies(injector, cfg, logger)

	// Invoking the server resolves the whole graph, storage included.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	store := do.MustInvoke[*storage](injector)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("storage close error", slog.Any("error", err))
		}
	}()

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range store.checkers {
		registry.Register(checker)
	}
	logger.Info("storage ready",
		slog.String("driver", cfg.Storage.Driver),
		slog.Bool("cache", cfg.Cache.Enabled),
	)

	if err := server.Listen(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("received shutdown signal")
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), serverShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func flushTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// storage bundles the repositories chosen by configuration with the health
// checkers and closers that come with them.
type storage struct {
	users    ports.UserRepository
	tasks    ports.TaskRepository
	checkers []ports.HealthChecker
	closers  []func() error
}

// Close releases every backing connection, last opened first.
func (s *storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	s := &storage{}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		mem := memory.NewStore()
		s.users, s.tasks = mem.Users(), mem.Tasks()
		s.checkers = append(s.checkers, mem)
	default:
		dialect, err := sqlstore.ParseDialect(cfg.Storage.Driver)
		if err != nil {
			return nil, err
		}
		db, err := sqlstore.Open(ctx, dialect, cfg.Storage.DSN, sqlstore.Options{
			Migrate: cfg.Storage.Migrate,
			Logger:  logger,
		})
		if err != nil {
			return nil, fmt.Errorf("opening %s store: %w", dialect, err)
		}
		s.users, s.tasks = db.Users(), db.Tasks()
		s.checkers = append(s.checkers, db)
		s.closers = append(s.closers, db.Close)
	}

	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		cached := cache.NewTaskRepository(s.tasks, client, cache.Config{
			Prefix: cfg.Cache.Prefix,
			TTL:    cfg.Cache.TTL,
		}, logger)
		s.tasks = cached
		s.checkers = append(s.checkers, cached)
		s.closers = append(s.closers, client.Close)
	}

	return s, nil
}

// operationCounter returns the task operations counter, or nil when
// telemetry is disabled.
func operationCounter(i do.Injector) metric.Int64Counter {
	metrics := do.MustInvoke[*telemetry.Metrics](i)
	if metrics == nil {
		return nil
	}
	return metrics.TaskOperations
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*storage, error) {
		return openStorage(context.Background(), cfg, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		store := do.MustInvoke[*storage](i)
		counter := operationCounter(i)
		return app.NewAuthService(store.users, counter, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[*storage](i)
		counter := operationCounter(i)
		return app.NewTaskService(store.users, store.tasks, counter, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.UserHandler, error) {
		return handlers.NewUserHandler(do.MustInvoke[ports.AuthService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		svc := do.MustInvoke[ports.TaskService](i)
		return handlers.NewTaskHandler(svc, sanitize.NewText()), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		userH := do.MustInvoke[*handlers.UserHandler](i)
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(userH, taskH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
