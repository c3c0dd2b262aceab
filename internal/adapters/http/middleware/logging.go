package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/logging"
)

// healthPathPrefix marks liveness and readiness requests. Orchestrators poll them
// every few seconds, so they are logged at debug level only.
const healthPathPrefix = "/health/"

// Logging returns middleware that logs request start and completion. It
// stores a child logger carrying request_id and correlation_id in the context
// (see logging.FromContext) for handlers and services.
//
// Completion is logged at error level for 5xx, warn for 4xx and info
// otherwise, with the matched route, status, response size and duration.
// Header dumps (sensitive values redacted) are emitted at debug level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			healthCheck := strings.HasPrefix(r.URL.Path, healthPathPrefix)
			startLevel := slog.LevelInfo
			if healthCheck {
				startLevel = slog.LevelDebug
			}

			child.Log(ctx, startLevel, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("client_ip", ClientIP(r)),
			)
			logHeaders(ctx, child, r.Header)

			rw := wrapWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.Log(ctx, completionLevel(rw.status, healthCheck), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func logHeaders(ctx context.Context, logger *slog.Logger, h http.Header) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := RedactHeaders(h)
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	logger.DebugContext(ctx, "request headers", args...)
}

func completionLevel(status int, healthCheck bool) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case healthCheck:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
