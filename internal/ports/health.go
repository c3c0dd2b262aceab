package ports

import (
	"context"
	"time"
)

// HealthChecker is implemented by any component that can report its health:
// the SQL store, the Redis cache, the image store and the mail executor.
type HealthChecker interface {
	// Name identifies the component in readiness output ("database",
	// "cache", "images", "mail").
	Name() string

	// HealthCheck returns nil when the component is usable. It must honor
	// the deadline on ctx.
	HealthCheck(ctx context.Context) error
}

// CheckResult is the outcome of one health check.
type CheckResult struct {
	Err      error
	Duration time.Duration

	// Optional components (the cache, outbound mail) have fallbacks, so
	// their failure degrades the service instead of taking it out of
	// rotation.
	Optional bool
}

// HealthRegistry collects health checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a checker whose failure makes the service not ready.
	Register(checker HealthChecker)

	// RegisterOptional adds a checker whose failure only degrades the
	// service.
	RegisterOptional(checker HealthChecker)

	// CheckAll runs every registered check and returns results keyed by
	// checker name.
	CheckAll(ctx context.Context) map[string]CheckResult
}
