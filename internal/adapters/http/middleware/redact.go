package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/tasks-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// headerGroup renders request headers as a single "headers" group, sorted by
// name. Values of logging.SensitiveHeaders are replaced before they reach any
// handler.
func headerGroup(h http.Header) slog.Attr {
	names := slices.Sorted(maps.Keys(h))

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := strings.Join(h[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}
