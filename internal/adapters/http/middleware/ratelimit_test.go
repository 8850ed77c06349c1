package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serveFrom(h http.Handler, remote string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t1", http.NoBody)
	req.RemoteAddr = remote
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	t.Parallel()

	h := middleware.RateLimit(0.001, 2)(okHandler())

	for i := range 2 {
		if rec := serveFrom(h, "10.0.0.1:5000"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec := serveFrom(h, "10.0.0.1:5001")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRateLimit_PerClient(t *testing.T) {
	t.Parallel()

	h := middleware.RateLimit(0.001, 1)(okHandler())

	if rec := serveFrom(h, "10.0.0.1:1000"); rec.Code != http.StatusOK {
		t.Fatalf("first client status = %d", rec.Code)
	}
	if rec := serveFrom(h, "10.0.0.2:1000"); rec.Code != http.StatusOK {
		t.Errorf("second client status = %d, want its own budget", rec.Code)
	}
	if rec := serveFrom(h, "10.0.0.1:1000"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("first client repeat status = %d, want 429", rec.Code)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	t.Parallel()

	h := middleware.RateLimit(0, 0)(okHandler())
	for range 50 {
		if rec := serveFrom(h, "10.0.0.1:1"); rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 with limiting disabled", rec.Code)
		}
	}
}
