package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/tasks-service/internal/adapters/http"
	"github.com/jsamuelsen11/tasks-service/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func localConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:         "127.0.0.1",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

func TestServer_AddrBeforeListen(t *testing.T) {
	t.Parallel()

	cfg := localConfig()
	cfg.Port = 9090
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil)

	assert.Equal(t, "127.0.0.1:9090", s.Addr())
}

func TestServer_ServesUntilShutdown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	})
	s := adapthttp.NewServer(localConfig(), handler, discardLogger())
	require.NoError(t, s.Listen())
	assert.NotEqual(t, "127.0.0.1:0", s.Addr(), "port 0 resolves to the bound port")

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve() }()

	resp, err := http.Get("http://" + s.Addr() + "/health/live") //nolint:noctx // test request
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.NoError(t, <-errCh, "Serve returns nil after a graceful shutdown")
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(localConfig(), http.NotFoundHandler(), discardLogger())
	require.NoError(t, s.Listen())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve() }()

	require.NoError(t, s.Shutdown(context.Background()))
	require.NoError(t, <-errCh)
}

func TestServer_ListenReportsTakenPort(t *testing.T) {
	t.Parallel()

	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = taken.Close() })

	cfg := localConfig()
	cfg.Port = taken.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	require.Error(t, s.Listen())
	require.Error(t, s.Serve())
}
