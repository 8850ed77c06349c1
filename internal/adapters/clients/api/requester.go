package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/platform/httpclient"
)

// requester centralizes the HTTP request lifecycle: JSON encoding, execution
// through httpclient.Client, status validation, error translation and JSON
// decoding. The response body is always closed.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// call describes one request. target tells the error translator which
// entity a 403, 404 or 409 refers to.
type call struct {
	method     string
	path       string
	wantStatus int
	body       any
	out        any
	target     target
}

func (r *requester) do(ctx context.Context, c call) error {
	req, err := r.newRequest(ctx, c)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still carry a response
		// worth translating.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != c.wantStatus {
				return translateHTTPError(resp, c.target)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", c.method),
			slog.String("path", c.path),
			slog.String("breaker", r.client.CircuitBreakerState()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", c.method, c.path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != c.wantStatus {
		r.logger.DebugContext(ctx, "unexpected status",
			slog.String("method", c.method),
			slog.String("path", c.path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", c.wantStatus),
		)
		return translateHTTPError(resp, c.target)
	}

	if c.out != nil {
		if err := json.NewDecoder(resp.Body).Decode(c.out); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", c.method, c.path, err)
		}
	}
	return nil
}

func (r *requester) newRequest(ctx context.Context, c call) (*http.Request, error) {
	url := r.client.BaseURL() + c.path

	if c.body == nil {
		req, err := http.NewRequestWithContext(ctx, c.method, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", c.method, c.path, err)
		}
		return req, nil
	}

	payload, err := json.Marshal(c.body)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", c.method, c.path, err)
	}
	req, err := http.NewRequestWithContext(ctx, c.method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", c.method, c.path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
