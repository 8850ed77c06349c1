// Package main is the entry point for taskctl, the command-line client for
// the tasks service. Settings come from TASKCTL_* environment variables;
// see internal/cli.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/tasks-service/internal/cli"
	"github.com/jsamuelsen11/tasks-service/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, cli.FormatError(err))
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cli.LoadConfig(nil)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, "text", os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := cli.OpenBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			logger.Warn("closing backend", slog.Any("error", cerr))
		}
	}()

	app := cli.New(backend.Auth, backend.Tasks, cli.NewSessionStore(cfg.SessionFile), os.Stdout, os.Stderr)
	return app.Run(ctx, os.Args[1:])
}
