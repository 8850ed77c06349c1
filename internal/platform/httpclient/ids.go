package httpclient

import (
	"context"
	"net/http"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID makes Do send id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID makes Do send id as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// setIDHeaders copies the IDs carried by ctx onto h.
func setIDHeaders(ctx context.Context, h http.Header) {
	for header, key := range map[string]any{
		"X-Request-ID":     requestIDKey{},
		"X-Correlation-ID": correlationIDKey{},
	} {
		if id, _ := ctx.Value(key).(string); id != "" {
			h.Set(header, id)
		}
	}
}
