package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAgeSeconds = 300

// CORS returns middleware that answers cross-origin requests from the listed
// origins. With no origins configured it adds no CORS headers at all, so
// browsers fall back to same-origin rules.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
			headerRequestID, headerCorrelationID,
		},
		ExposedHeaders: []string{headerRequestID, headerCorrelationID, "Retry-After"},
		MaxAge:         corsMaxAgeSeconds,
	})
}
