package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/platform/config"
)

// jitter spreads each delay over ±25% so that several taskctl processes
// started together do not retry in lockstep.
const jitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// backoff is the jittered delay before retry n, counting from 1.
func (p retryPolicy) backoff(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = min(d, float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1) //nolint:gosec // timing jitter, not a secret
	return time.Duration(max(d, 0))
}

// retryStatus reports whether an answer with code may be retried. 429 and
// 503 mean the server did not act on the request. Other 5xx answers are
// retried only for idempotent methods, so a POST toggling a task is never
// applied twice.
func retryStatus(method string, code int) bool {
	switch {
	case code == http.StatusTooManyRequests, code == http.StatusServiceUnavailable:
		return true
	case code >= http.StatusInternalServerError:
		return idempotent(method)
	default:
		return false
	}
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// retryTransport reports whether a transport error may be retried. Only the
// caller's own cancellation or deadline stops the loop.
func retryTransport(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryAfter reads a Retry-After header given in seconds, as the tasks
// server's rate limiter sends it.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// send runs the retry loop. The body is buffered once and replayed on every
// attempt. A retryable answer on the last attempt, or one whose Retry-After
// exceeds the policy ceiling, is returned open together with a StatusError.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := drainBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		var wait time.Duration
		switch {
		case err != nil:
			if !retryTransport(err) || attempt == c.policy.attempts {
				return nil, fmt.Errorf("%s: %w", c.name, err)
			}
			lastErr = err
			wait = c.policy.backoff(attempt)

		case !retryStatus(req.Method, resp.StatusCode):
			if resp.StatusCode >= http.StatusInternalServerError {
				return resp, &StatusError{Service: c.name, StatusCode: resp.StatusCode}
			}
			return resp, nil

		default:
			lastErr = &StatusError{Service: c.name, StatusCode: resp.StatusCode}
			wait = c.policy.backoff(attempt)
			if hint, ok := retryAfter(resp); ok {
				if hint > c.policy.ceiling {
					return resp, lastErr
				}
				wait = max(wait, hint)
			}
			if attempt == c.policy.attempts {
				return resp, lastErr
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		c.logger.WarnContext(ctx, "retrying request",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("peer_service", c.name),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.policy.attempts),
			slog.Duration("backoff", wait),
			slog.Any("error", lastErr),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%s: %w (last failure: %w)", c.name, ctx.Err(), lastErr)
		case <-timer.C:
		}
	}
}

// drainBody reads and closes the request body so it can be replayed.
func drainBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return body, nil
}
