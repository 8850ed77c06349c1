package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Storage.validate(),
		c.Cache.validate(),
		c.RateLimit.validate("rate_limit"),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite, DriverPostgres:
		if s.DSN == "" {
			return fmt.Errorf("storage.dsn must not be empty for driver %q", s.Driver)
		}
		return nil
	default:
		return fmt.Errorf("storage.driver must be one of: memory, sqlite, postgres; got %q", s.Driver)
	}
}

func (c *CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}

	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("cache.addr must not be empty when the cache is enabled"))
	}
	if c.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}
	if c.DB < 0 {
		errs = append(errs, fmt.Errorf("cache.db must not be negative, got %d", c.DB))
	}
	return errors.Join(errs...)
}

// validate treats a zero rate as "disabled".
func (r *RateLimitConfig) validate(section string) error {
	var errs []error
	if r.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.requests_per_second must not be negative, got %f", section, r.RequestsPerSecond))
	}
	if r.RequestsPerSecond > 0 && r.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.burst_size must be >= 1, got %d", section, r.BurstSize))
	}
	return errors.Join(errs...)
}

// Validate checks outbound client settings.
func (cl *ClientConfig) Validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	errs = append(errs, cl.RateLimit.validate("client.rate_limit"))

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
