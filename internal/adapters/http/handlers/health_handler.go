package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/tasks-service/internal/platform/logging"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

const (
	statusOK          = "ok"
	statusReady       = "ready"
	statusNotReady    = "not_ready"
	statusUnavailable = "unavailable"
)

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a handler reporting on the checks in registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is the whole check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, healthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when the task store and cache
// answer, 503 otherwise. The report names failing dependencies but never
// carries their error text, which may hold hosts or credentials; the errors
// go to the request log instead.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := healthResponse{Status: statusReady, Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(ctx) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = statusUnavailable
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
