// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The global stack processes requests in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → CORS → Timeout → Handler
//
// Route groups add AdminAuth (admin API) or RateLimit (contact form) on top.
// Each middleware is a func(http.Handler) http.Handler registered on the chi
// router with Use, so route patterns are known by the time a request
// completes.
package middleware

import "net/http"

// statusWriter records the status code and body size of a response. Recovery,
// OpenTelemetry and Logging all read from the same instance.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

// wrapWriter returns w when it is already a *statusWriter and wraps it
// otherwise, so stacked middleware share one set of counters.
func wrapWriter(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code. Later calls are dropped.
func (sw *statusWriter) WriteHeader(code int) {
	if sw.wroteHeader {
		return
	}
	sw.status = code
	sw.wroteHeader = true
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.wroteHeader = true
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += int64(n)
	return n, err
}

// Flush commits the headers and flushes when the underlying writer supports
// it.
func (sw *statusWriter) Flush() {
	sw.wroteHeader = true
	_ = http.NewResponseController(sw.ResponseWriter).Flush()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
