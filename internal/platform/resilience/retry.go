package resilience

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// permanentError marks an error that retrying cannot fix.
type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent wraps err so the executor returns it without further attempts.
// Permanent(nil) is nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// doWithRetry calls fn until it succeeds, returns a non-retryable error, or
// the attempts run out. Each attempt gets its own timeout when configured.
func (e *Executor) doWithRetry(ctx context.Context, operation string, fn func(context.Context) error) error {
	if e.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("resilience: maxAttempts must be >= 1, got %d", e.retryCfg.maxAttempts)
	}

	var lastErr error

	for attempt := range e.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := e.waitForRetry(ctx, operation, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = e.attempt(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(ctx, lastErr) {
			return lastErr
		}
	}

	return lastErr
}

func (e *Executor) attempt(ctx context.Context, fn func(context.Context) error) error {
	if e.timeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return fn(ctx)
}

// waitForRetry calculates the backoff delay, logs the retry attempt at WARN
// level, and waits for the delay or context cancellation.
func (e *Executor) waitForRetry(ctx context.Context, operation string, attempt int, lastErr error) error {
	delay := backoff(attempt, e.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying outbound call",
		slog.String("operation", operation),
		slog.String("peer_service", e.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", e.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	// Apply ±25% jitter to prevent thundering herd.
	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable determines whether a failed attempt should be retried.
// Permanent errors and cancellation of the caller's context are final.
// An attempt that hit its own timeout is retried while the caller's context
// is still live.
func isRetryable(ctx context.Context, err error) bool {
	if err == nil || IsPermanent(err) {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	return !errors.Is(err, context.Canceled)
}
