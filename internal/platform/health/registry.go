// Package health provides a thread-safe health check registry for the
// dependencies behind the readiness check: the database, the optional cache,
// the image store and the mail transport.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// DefaultCheckTimeout bounds each individual check so one slow dependency
// cannot stall the whole check.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

type entry struct {
	name     string
	checker  ports.HealthChecker
	optional bool
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers are keyed by name; registering a second checker under a name
// replaces the first.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	timeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a critical health checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.add(checker, false)
}

// RegisterOptional adds a checker whose failure only degrades readiness.
func (r *Registry) RegisterOptional(checker ports.HealthChecker) {
	r.add(checker, true)
}

func (r *Registry) add(checker ports.HealthChecker, optional bool) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i] = entry{name: name, checker: checker, optional: optional}
			return
		}
	}
	r.entries = append(r.entries, entry{name: name, checker: checker, optional: optional})
}

// CheckAll runs all registered checks concurrently, each under its own
// timeout, and returns results keyed by checker name.
func (r *Registry) CheckAll(ctx context.Context) map[string]ports.CheckResult {
	r.mu.RLock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]ports.CheckResult, len(entries))
	)
	for _, e := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			start := time.Now()
			err := e.checker.HealthCheck(checkCtx)
			res := ports.CheckResult{Err: err, Duration: time.Since(start), Optional: e.optional}

			mu.Lock()
			results[e.name] = res
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}
