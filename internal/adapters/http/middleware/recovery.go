package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/dto"
)

// errPanic never reaches clients as text: dto maps it to the generic 500
// problem detail.
var errPanic = errors.New("handler panicked")

// Recovery turns a handler panic into a logged stack trace and a 500 problem
// response. When the handler had already started its response only the log
// entry is written. http.ErrAbortHandler is re-raised so net/http can abort
// the connection as the handler asked.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value, compared as net/http does
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errPanic)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
