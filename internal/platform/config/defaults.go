package config

import "time"

const (
	defaultServerPort = 8080

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 40

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":  DriverMemory,
		"storage.dsn":     "",
		"storage.migrate": true,

		"cache.enabled":  false,
		"cache.addr":     "localhost:6379",
		"cache.password": "",
		"cache.db":       0,
		"cache.prefix":   "tasks",
		"cache.ttl":      "5m",

		"rate_limit.requests_per_second": defaultRateLimitRPS,
		"rate_limit.burst_size":          defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "tasks-service",
	}
}

// DefaultClientConfig returns the outbound client settings used when the
// caller supplies nothing else.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: "http://localhost:8080",
		Timeout: 10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts:     defaultRetryMaxAttempts,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      defaultRetryMultiplier,
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxFailures:   defaultCircuitBreakerMaxFailures,
			Timeout:       30 * time.Second,
			HalfOpenLimit: defaultCircuitBreakerHalfOpen,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: defaultRateLimitRPS,
			BurstSize:         defaultRateLimitBurst,
		},
	}
}
