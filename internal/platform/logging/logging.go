// Package logging builds the slog loggers used by the server and taskctl and
// carries the request-scoped logger through context.
//
// Services take the logger from context so their entries carry the request
// and correlation IDs set by the HTTP middleware:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "toggle task failed",
//	    slog.String("operation", "ToggleTask"),
//	    slog.String("task_id", cmd.TaskID),
//	    slog.Any("error", err),
//	)
//
// Failures name the operation, the ids involved and the whole error chain.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New returns a logger writing to w. level takes any slog level name in any
// case, with an optional offset such as "warn+2"; unknown names mean info.
// format "text" selects logfmt style output for terminals, anything else JSON.
// Debug loggers also record the source location. Every logger redacts
// credentials, see SensitiveHeaders.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(strings.TrimSpace(format), "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
