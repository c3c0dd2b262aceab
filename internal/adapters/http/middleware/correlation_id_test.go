package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		want     string
	}{
		{name: "reuses incoming header", incoming: "corr-abc", want: "corr-abc"},
		{name: "missing falls back to request ID", incoming: "", want: "req-1"},
		{name: "whitespace falls back to request ID", incoming: "corr abc", want: "req-1"},
		{name: "control characters fall back", incoming: "corr\x01", want: "req-1"},
		{name: "oversized falls back", incoming: strings.Repeat("c", 200), want: "req-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			// Order: RequestID → CorrelationID → handler
			handler := middleware.RequestID()(
				middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					gotID = middleware.CorrelationIDFromContext(r.Context())
				})),
			)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", http.NoBody)
			req.Header.Set("X-Request-ID", "req-1")
			if tt.incoming != "" {
				req.Header.Set("X-Correlation-ID", tt.incoming)
			}
			handler.ServeHTTP(rec, req)

			if gotID != tt.want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, tt.want)
			}
			if respID := rec.Header().Get("X-Correlation-ID"); respID != tt.want {
				t.Errorf("response X-Correlation-ID = %q, want %q", respID, tt.want)
			}
		})
	}
}

func TestCorrelationID_GeneratedRequestIDIsShared(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.RequestID()(
		middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotID = middleware.CorrelationIDFromContext(r.Context())
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/skills", http.NoBody))

	reqID := rec.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("X-Request-ID response header is empty")
	}
	if gotID != reqID {
		t.Errorf("CorrelationIDFromContext = %q, want request ID %q", gotID, reqID)
	}
}

func TestCorrelationIDFromContext(t *testing.T) {
	t.Parallel()

	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext(empty) = %q, want empty string", id)
	}

	ctx := middleware.WithCorrelationID(context.Background(), "test-corr")
	if got := middleware.CorrelationIDFromContext(ctx); got != "test-corr" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "test-corr")
	}
}
