// Package cache provides Redis read-through decorators for the repositories
// behind the public pages. Every write through a decorator bumps a per-entity
// generation counter, which retires all cached reads of that entity at once.
// Redis failures never fail a call; the decorator falls back to the wrapped
// repository and logs a warning.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// Namespaces for generation counters.
const (
	nsProjects = "projects"
	nsSkills   = "skills"
)

var _ ports.HealthChecker = (*Cache)(nil)

// Cache holds the Redis client shared by the decorators.
type Cache struct {
	client  redis.UniversalClient
	ttl     time.Duration
	prefix  string
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Cache. Entries expire after ttl even without writes. If
// metrics is nil, hit and miss counting is skipped.
func New(client redis.UniversalClient, ttl time.Duration, prefix string, metrics *telemetry.Metrics, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{
		client:  client,
		ttl:     ttl,
		prefix:  prefix,
		metrics: metrics,
		logger:  logger,
	}
}

// Name implements ports.HealthChecker.
func (c *Cache) Name() string { return "cache" }

// HealthCheck pings Redis.
func (c *Cache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (c *Cache) genKey(ns string) string {
	return c.prefix + ":" + ns + ":gen"
}

func (c *Cache) key(ns string, gen int64, name string) string {
	return fmt.Sprintf("%s:%s:v%d:%s", c.prefix, ns, gen, name)
}

// generation returns the current generation of ns. A missing counter is
// generation 0.
func (c *Cache) generation(ctx context.Context, ns string) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey(ns)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// invalidate retires every cached read in ns.
func (c *Cache) invalidate(ctx context.Context, ns string) {
	if err := c.client.Incr(ctx, c.genKey(ns)).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed",
			slog.String("namespace", ns),
			slog.Any("error", err),
		)
	}
}

func (c *Cache) record(ctx context.Context, ns, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CacheLookupTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrCacheNamespace.String(ns),
		telemetry.AttrResult.String(result),
	))
}

// remember returns the cached value for name in ns, or calls load and
// caches its result. Errors from load are returned and never cached.
func remember[T any](ctx context.Context, c *Cache, ns, name string, load func(context.Context) (T, error)) (T, error) {
	gen, err := c.generation(ctx, ns)
	if err != nil {
		c.logger.WarnContext(ctx, "cache unavailable, reading through",
			slog.String("namespace", ns),
			slog.Any("error", err),
		)
		c.record(ctx, ns, "error")
		return load(ctx)
	}
	key := c.key(ns, gen, name)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			c.record(ctx, ns, "hit")
			return v, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "cache read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
	c.record(ctx, ns, "miss")

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.Any("error", err))
		return v, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return v, nil
}
