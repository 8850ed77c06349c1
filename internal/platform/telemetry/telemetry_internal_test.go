package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint string
		want     collector
	}{
		{endpoint: "http://otel-collector:4318", want: collector{host: "otel-collector:4318", insecure: true}},
		{endpoint: "https://otel.example.com:4318", want: collector{host: "otel.example.com:4318"}},
		{endpoint: "https://otel.example.com", want: collector{host: "otel.example.com"}},
		{endpoint: "otel-collector:4318", want: collector{host: "otel-collector:4318", insecure: true}},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			t.Parallel()

			got, err := parseCollector(tt.endpoint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCollector_Empty(t *testing.T) {
	t.Parallel()

	_, err := parseCollector("")
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}
