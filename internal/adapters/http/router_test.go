package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/tasks-service/internal/adapters/http"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tasks-service/internal/adapters/persistence/memory"
	"github.com/jsamuelsen11/tasks-service/internal/app"
	"github.com/jsamuelsen11/tasks-service/mocks"
)

// newMockRouter wires handlers whose services fail the test if called.
func newMockRouter(t *testing.T) http.Handler {
	t.Helper()
	return adapthttp.NewRouter(
		handlers.NewUserHandler(mocks.NewMockAuthService(t)),
		handlers.NewTaskHandler(mocks.NewMockTaskService(t), nil),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
	)
}

// newAppRouter wires the real services over the in-memory store.
func newAppRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	auth := app.NewAuthService(store.Users(), nil, discardLogger())
	tasks := app.NewTaskService(store.Users(), store.Tasks(), nil, discardLogger())
	return adapthttp.NewRouter(
		handlers.NewUserHandler(auth),
		handlers.NewTaskHandler(tasks, nil),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
	)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestRouter_RouteTable(t *testing.T) {
	t.Parallel()

	router := newMockRouter(t)
	mux, ok := router.(chi.Routes)
	require.True(t, ok, "router does not expose its routes")

	var registered []string
	require.NoError(t, chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered = append(registered, method+" "+route)
		return nil
	}))

	assert.Subset(t, registered, []string{
		"GET /health/live",
		"GET /health/ready",
		"POST /api/v1/users",
		"GET /api/v1/users/{email}",
		"GET /api/v1/users/{userId}/tasks",
		"POST /api/v1/tasks",
		"GET /api/v1/tasks/{taskId}",
		"PATCH /api/v1/tasks/{taskId}",
		"DELETE /api/v1/tasks/{taskId}",
		"POST /api/v1/tasks/{taskId}/toggle",
	})
}

func TestRouter_MiddlewareWrapsHealthRoutes(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router := adapthttp.NewRouter(
		handlers.NewUserHandler(mocks.NewMockAuthService(t)),
		handlers.NewTaskHandler(mocks.NewMockTaskService(t), nil),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
		tag("outer"), tag("inner"),
	)

	rec := do(t, router, http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRouter_UnmatchedRequestsGetProblemDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"unknown path", http.MethodGet, "/nonexistent", http.StatusNotFound},
		{"unknown api path", http.MethodGet, "/api/v1/projects", http.StatusNotFound},
		{"wrong method on task", http.MethodPut, "/api/v1/tasks/t1", http.StatusMethodNotAllowed},
		{"wrong method on liveness", http.MethodPost, "/health/live", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newMockRouter(t)
			rec := do(t, router, tt.method, tt.path, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			problem := decode[dto.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.path, problem.Instance)
		})
	}
}

// TestRouter_TaskLifecycle drives the full API over the in-memory store.
func TestRouter_TaskLifecycle(t *testing.T) {
	t.Parallel()
	router := newAppRouter(t)

	rec := do(t, router, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Email: "  Kim@Example.com "})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	kim := decode[dto.UserResponse](t, rec)
	require.Equal(t, "kim@example.com", kim.Email)

	rec = do(t, router, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Email: "kim@example.com"})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/users/KIM@example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[dto.FindUserResponse](t, rec)
	require.True(t, found.Found)
	require.Equal(t, kim.ID, found.User.ID)

	rec = do(t, router, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Email: "lee@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	lee := decode[dto.UserResponse](t, rec)

	rec = do(t, router, http.MethodPost, "/api/v1/tasks", dto.CreateTaskRequest{
		UserID: kim.ID, Title: "<i>File taxes</i>", Description: "Federal and state",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.TaskResponse](t, rec)
	require.Equal(t, "File taxes", created.Title)
	require.False(t, created.Completed)
	require.Nil(t, created.UpdatedAt)

	taskPath := "/api/v1/tasks/" + created.ID

	rec = do(t, router, http.MethodPatch, taskPath+"?user_id="+lee.ID, dto.UpdateTaskRequest{Title: ptr("Hijacked")})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPatch, taskPath+"?user_id="+kim.ID, dto.UpdateTaskRequest{
		Title: ptr("ab"), Description: ptr("   "),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	problem := decode[dto.ErrorResponse](t, rec)
	require.Len(t, problem.Errors, 2)

	rec = do(t, router, http.MethodPost, taskPath+"/toggle?user_id="+kim.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	toggled := decode[dto.TaskResponse](t, rec)
	require.True(t, toggled.Completed)
	require.NotNil(t, toggled.UpdatedAt)
	require.Equal(t, "File taxes", toggled.Title, "failed update must not have persisted")

	rec = do(t, router, http.MethodGet, "/api/v1/users/"+kim.ID+"/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dto.TaskListResponse](t, rec)
	require.Equal(t, 1, list.Count)

	rec = do(t, router, http.MethodDelete, taskPath+"?user_id="+lee.ID, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodDelete, taskPath+"?user_id="+kim.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, taskPath, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func ptr[T any](v T) *T { return &v }
