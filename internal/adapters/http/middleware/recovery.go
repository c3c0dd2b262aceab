package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
)

// errInternalServer is what the client sees after a panic. The panic value
// and stack only go to the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into an RFC 9457
// 500 response and an error log carrying the stack, the request and
// correlation IDs, and the matched route. If the handler already started the
// response, only the log is written.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
// quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrapWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				ctx := r.Context()
				logger.ErrorContext(ctx, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r)),
					slog.String("request_id", RequestIDFromContext(ctx)),
					slog.String("correlation_id", CorrelationIDFromContext(ctx)),
					slog.Bool("response_started", rw.wroteHeader),
				)

				if !rw.wroteHeader {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
