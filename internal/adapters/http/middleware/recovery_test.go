package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(new(bytes.Buffer), nil))
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantCode    int
		wantBody    string
		wantProblem bool
	}{
		{
			name: "no panic passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantCode: http.StatusOK,
			wantBody: "ok",
		},
		{
			name:        "string panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic("something went wrong") },
			wantCode:    http.StatusInternalServerError,
			wantProblem: true,
		},
		{
			name:        "error panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic(errors.New("nil map write")) },
			wantCode:    http.StatusInternalServerError,
			wantProblem: true,
		},
		{
			name:        "non-string panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic(42) },
			wantCode:    http.StatusInternalServerError,
			wantProblem: true,
		},
		{
			// The status line is already on the wire; only the log records it.
			name: "panic after response started",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late panic")
			},
			wantCode: http.StatusAccepted,
			wantBody: "partial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/skills", http.NoBody)
			middleware.Recovery(discardLogger())(tt.handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if !tt.wantProblem {
				return
			}

			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
			}
			var body map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response body: %v", err)
			}
			if title, _ := body["title"].(string); title != "Internal Server Error" {
				t.Errorf("title = %q, want %q", title, "Internal Server Error")
			}
			if detail, _ := body["detail"].(string); detail != "" {
				t.Errorf("detail = %q, want panic value kept out of the response", detail)
			}
		})
	}
}

func TestRecovery_LogsPanicWithContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.Recovery(testLogger(&buf)))
	r.Get("/api/v1/projects/{slug}", func(_ http.ResponseWriter, _ *http.Request) {
		panic("test panic value")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/portfolio-site", http.NoBody)
	req.Header.Set("X-Request-ID", "req-panic-1")
	r.ServeHTTP(rec, req)

	logOutput := buf.String()
	for _, want := range []string{
		"panic recovered",
		"test panic value",
		"goroutine",
		"request_id=req-panic-1",
		"route=/api/v1/projects/{slug}",
		"response_started=false",
	} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("log output missing %q:\n%s", want, logOutput)
		}
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	t.Error("ServeHTTP returned, want re-panic")
}
