package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/tasks-service/internal/platform/config"
	"github.com/jsamuelsen11/tasks-service/internal/platform/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Exporter: "bogus"})
	require.NoError(t, err)

	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(context.Background()))
}

// Setup replaces the global providers, so these tests do not run in parallel.
func TestSetup_InstallsGlobals(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "tasks-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, p.Shutdown(ctx)) })

	assert.Same(t, p.Tracer, otel.GetTracerProvider())
	assert.Same(t, p.Meter, otel.GetMeterProvider())
	assert.ElementsMatch(t,
		[]string{"traceparent", "tracestate", "baggage"},
		otel.GetTextMapPropagator().Fields(),
	)
	require.NotNil(t, p.Metrics)
	assert.NotNil(t, p.Metrics.TaskOperations)
}

func TestSetup_OTLP(t *testing.T) {
	ctx := context.Background()

	for _, endpoint := range []string{"http://localhost:4318", "localhost:4318"} {
		p, err := telemetry.Setup(ctx, config.TelemetryConfig{
			Enabled:     true,
			Exporter:    telemetry.ExporterOTLP,
			Endpoint:    endpoint,
			ServiceName: "tasks-test",
		})
		require.NoError(t, err, endpoint)
		require.NotNil(t, p.Tracer, endpoint)

		// No collector is listening, so the final flush may fail.
		_ = p.Shutdown(ctx)
	}
}

func TestSetup_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.TelemetryConfig
		wantErr error
	}{
		{
			name:    "unknown exporter",
			cfg:     config.TelemetryConfig{Enabled: true, Exporter: "zipkin", ServiceName: "svc"},
			wantErr: telemetry.ErrUnsupportedExporter,
		},
		{
			name:    "otlp without endpoint",
			cfg:     config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP, ServiceName: "svc"},
			wantErr: telemetry.ErrMissingEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := telemetry.Setup(context.Background(), tt.cfg)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestNewMetrics_Noop(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "tasks-test")
	require.NoError(t, err)

	assert.NotNil(t, m.ServerRequestDuration)
	assert.NotNil(t, m.ServerRequestTotal)
	assert.NotNil(t, m.ClientRequestDuration)
	assert.NotNil(t, m.ClientRequestTotal)
	assert.NotNil(t, m.TaskOperations)
}

func TestNewMetrics_RecordsTaskOperations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp, "tasks-test")
	require.NoError(t, err)

	created := attribute.NewSet(telemetry.AttrOperation.String("create"), telemetry.AttrResult.String("success"))
	m.TaskOperations.Add(ctx, 2, metric.WithAttributeSet(created))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, "tasks-test", rm.ScopeMetrics[0].Scope.Name)

	var sum metricdata.Sum[int64]
	for _, md := range rm.ScopeMetrics[0].Metrics {
		if md.Name == telemetry.MetricTaskOperations {
			sum = md.Data.(metricdata.Sum[int64])
		}
	}
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
	assert.True(t, sum.DataPoints[0].Attributes.Equals(&created))
}
