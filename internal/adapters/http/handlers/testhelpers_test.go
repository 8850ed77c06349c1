package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

// testTime is the creation time of every fixture.
var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// withChiParams attaches URL parameters as chi's router would after matching.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.Rehydrate(user.Snapshot{ID: "u1", Email: "kim@example.com", CreatedAt: testTime})
	require.NoError(t, err)
	return u
}

func validTask(t *testing.T) *task.Task {
	t.Helper()
	tk, err := task.Rehydrate(task.Snapshot{
		ID:          "t1",
		UserID:      "u1",
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		CreatedAt:   testTime,
	})
	require.NoError(t, err)
	return tk
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result), "body = %s", rec.Body.String())
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
