package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Instrument names.
const (
	MetricServerDuration = "http.server.request.duration"
	MetricServerTotal    = "http.server.request.total"
	MetricClientDuration = "http.client.request.duration"
	MetricClientTotal    = "http.client.request.total"
	MetricTaskOperations = "task.operations"
)

// Metrics holds the service's registered instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// TaskOperations counts auth and task service calls, labelled with
	// AttrOperation and AttrResult.
	TaskOperations metric.Int64Counter
}

// NewMetrics registers every instrument on a meter named after the service.
// All registration failures are reported together.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: r.histogram(MetricServerDuration, "Duration of incoming HTTP requests"),
		ServerRequestTotal:    r.counter(MetricServerTotal, "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: r.histogram(MetricClientDuration, "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    r.counter(MetricClientTotal, "Outgoing HTTP requests", "{request}"),
		TaskOperations:        r.counter(MetricTaskOperations, "Auth and task operations handled by the application layer", "{operation}"),
	}
	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

type registrar struct {
	meter metric.Meter
	errs  []error
}

// histogram registers a duration histogram in seconds.
func (r *registrar) histogram(name, desc string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("register %s: %w", name, err))
	}
	return h
}

func (r *registrar) counter(name, desc, unit string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("register %s: %w", name, err))
	}
	return c
}
