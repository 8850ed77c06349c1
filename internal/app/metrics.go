package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// operationRecorder counts completed operations by name and result.
type operationRecorder struct {
	counter metric.Int64Counter
}

func newOperationRecorder(counter metric.Int64Counter) *operationRecorder {
	if counter == nil {
		counter = noop.Int64Counter{}
	}
	return &operationRecorder{counter: counter}
}

func (r *operationRecorder) record(ctx context.Context, op string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	r.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("task.operation", op),
		attribute.String("result", result),
	))
}
