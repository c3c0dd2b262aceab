package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
)

const timeoutDetail = "the request took too long to complete"

// Timeout returns middleware that bounds each request by timeout. The handler
// sees the deadline on its context, so repository and image calls stop with
// it. When the deadline passes first, the client receives an RFC 9457 504 and
// anything the handler writes afterwards is discarded with
// http.ErrHandlerTimeout.
//
// A timeout <= 0 disables the middleware.
//
// Handler panics are re-raised on the serving goroutine so Recovery still
// sees them.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flushTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteStatusResponse(w, r, http.StatusGatewayTimeout, timeoutDetail)
			}
		})
	}
}

// timeoutWriter buffers the handler's response until Timeout decides which
// side answers the client. Its fields are guarded by mu.
type timeoutWriter struct {
	mu         sync.Mutex
	header     http.Header
	buf        []byte
	statusCode int
	timedOut   bool
}

// Header returns the buffered header map. Handlers must not touch it
// concurrently with Write, the same rule net/http applies.
func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.statusCode == 0 {
		tw.statusCode = http.StatusOK
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.statusCode != 0 {
		return
	}
	tw.statusCode = code
}

// flushTo copies the buffered response to w. Must be called with tw.mu held.
func (tw *timeoutWriter) flushTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.statusCode != 0 {
		w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}
