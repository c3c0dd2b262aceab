// Package resilience wraps calls to outbound dependencies (mail relays,
// object stores) with a circuit breaker, rate limiting, retry with
// exponential backoff, OpenTelemetry tracing, and call metrics.
//
// Each call passes through these stages in order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry (with per-attempt timeout) → fn
//
// Construction:
//
//	exec := resilience.New(&cfg.Mail.Resilience, "mail", metrics, logger)
//
// Executing calls:
//
//	err := exec.Do(ctx, "send", func(ctx context.Context) error {
//		return sender.Send(ctx, msg)
//	})
//
// Wrap an error with Permanent to stop retrying it.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/telemetry"
)

// Call results recorded on the outbound call metrics.
const (
	resultSuccess     = "success"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
)

// retryConfig holds the retry policy values extracted from config.RetryConfig
// using unexported types to avoid leaking the config package through the API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Executor runs calls against one named dependency.
type Executor struct {
	name     string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker[struct{}]
	limiter  *rate.Limiter // nil when rate limiting is disabled
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates an Executor for the dependency called name (e.g. "mail").
// The name labels traces, metrics, and the health check. If metrics is nil,
// metric recording is skipped. A nil logger discards output.
func New(cfg *config.ResilienceConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A caller giving up says nothing about the dependency's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Executor{
		name:    name,
		timeout: cfg.Timeout,
		breaker: cb,
		limiter: limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do runs fn through the full pipeline. The operation names the call in
// spans, metrics, and retry logs (e.g. "send", "put_object").
//
// When the breaker is open, Do returns an error wrapping
// gobreaker.ErrOpenState without calling fn.
func (e *Executor) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()

	_, err := e.breaker.Execute(func() (struct{}, error) {
		if err := e.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := e.startSpan(ctx, operation)
		defer span.End()

		retryErr := e.doWithRetry(spanCtx, operation, fn)
		finishSpan(span, retryErr)

		return struct{}{}, retryErr
	})

	e.recordMetrics(ctx, operation, start, err)

	if err != nil {
		return fmt.Errorf("%s %s: %w", e.name, operation, err)
	}
	return nil
}

// Name returns the dependency identifier (e.g., "mail").
// Together with HealthCheck, this method lets Executor satisfy the
// ports.HealthChecker interface via structural typing.
func (e *Executor) Name() string {
	return e.name
}

// HealthCheck reports the dependency's availability based on the circuit
// breaker state. No call is made to the dependency.
//
// State mapping:
//   - "closed": operating normally; returns nil.
//   - "half-open": probing recovery; returns an error indicating degraded state.
//   - "open": calls are being rejected; returns an error indicating failure.
func (e *Executor) HealthCheck(_ context.Context) error {
	state := e.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", e.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", e.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", e.name, state)
	}
}

// waitForRateLimit blocks until the rate limiter allows the call or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (e *Executor) waitForRateLimit(ctx context.Context) error {
	if e.limiter == nil {
		return nil
	}
	return e.limiter.Wait(ctx)
}

func (e *Executor) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("resilience")

	return tracer.Start(ctx, e.name+" "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("peer.service", e.name),
			attribute.String("operation", operation),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records outbound call duration and count metrics.
// Metrics are recorded outside the circuit breaker so that circuit-open
// rejections are captured. Safe to call with nil metrics.
func (e *Executor) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if e.metrics == nil {
		return
	}

	result := resultSuccess
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = resultCircuitOpen
	case err != nil:
		result = resultError
	}

	attrs := metric.WithAttributes(
		telemetry.AttrPeerService.String(e.name),
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	e.metrics.OutboundCallDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	e.metrics.OutboundCallTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
