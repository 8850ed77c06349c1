package ports

import "context"

// HealthChecker reports whether one backing dependency can serve requests.
// The SQL stores, the redis task cache and the remote API client implement it.
type HealthChecker interface {
	// Name labels the dependency in readiness output, e.g. "postgres".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give
	// up once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers the readiness endpoint consults.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and maps checker name to its
	// result. A nil entry is healthy.
	CheckAll(ctx context.Context) map[string]error
}
