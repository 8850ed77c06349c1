// Package http is the inbound HTTP adapter: the chi route table for the
// users and tasks API and the server lifecycle around it.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/handlers"
)

// APIPrefix is the mount point of the versioned API.
const APIPrefix = "/api/v1"

// NewRouter builds the route table. The middlewares wrap every route, outermost
// first, including the health endpoints and the problem responses for
// unmatched requests.
func NewRouter(
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, dto.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, dto.ErrMethodNotAllowed)
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	api := chi.NewRouter()
	for _, rt := range apiRoutes(userHandler, taskHandler) {
		api.Method(rt.method, rt.pattern, rt.handler)
	}
	r.Mount(APIPrefix, api)

	return r
}

type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// apiRoutes lists the versioned API relative to APIPrefix.
func apiRoutes(users *handlers.UserHandler, tasks *handlers.TaskHandler) []route {
	return []route{
		{http.MethodPost, "/users", users.CreateUser},
		{http.MethodGet, "/users/{email}", users.FindUser},
		{http.MethodGet, "/users/{userId}/tasks", tasks.ListTasks},

		{http.MethodPost, "/tasks", tasks.CreateTask},
		{http.MethodGet, "/tasks/{taskId}", tasks.GetTask},
		{http.MethodPatch, "/tasks/{taskId}", tasks.UpdateTask},
		{http.MethodDelete, "/tasks/{taskId}", tasks.DeleteTask},
		{http.MethodPost, "/tasks/{taskId}/toggle", tasks.ToggleTask},
	}
}
