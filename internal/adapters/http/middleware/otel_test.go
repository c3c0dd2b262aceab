package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/telemetry"
)

// Span tests are not parallel: they replace the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return exporter
}

// onlySpan returns the single recorded span and its attributes by key.
func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter) (tracetest.SpanStub, map[string]any) {
	t.Helper()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	attrs := make(map[string]any, len(spans[0].Attributes))
	for _, a := range spans[0].Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return spans[0], attrs
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	})
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		status     int
		wantName   string
		wantStatus codes.Code
	}{
		{
			name:       "unrouted request keeps raw path",
			method:     http.MethodGet,
			path:       "/favicon.ico",
			status:     http.StatusOK,
			wantName:   "HTTP GET /favicon.ico",
			wantStatus: codes.Unset,
		},
		{
			name:       "client error leaves span status unset",
			method:     http.MethodPost,
			path:       "/api/v1/contact",
			status:     http.StatusUnprocessableEntity,
			wantName:   "HTTP POST /api/v1/contact",
			wantStatus: codes.Unset,
		},
		{
			name:       "server error marks span",
			method:     http.MethodGet,
			path:       "/api/v1/skills",
			status:     http.StatusBadGateway,
			wantName:   "HTTP GET /api/v1/skills",
			wantStatus: codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupTracer(t)

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			middleware.OpenTelemetry(nil)(statusHandler(tt.status)).ServeHTTP(httptest.NewRecorder(), req)

			span, attrs := onlySpan(t, exporter)
			if span.Name != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tt.wantName)
			}
			if span.Status.Code != tt.wantStatus {
				t.Errorf("span status = %v, want %v", span.Status.Code, tt.wantStatus)
			}
			if attrs["http.method"] != tt.method {
				t.Errorf("http.method = %v, want %q", attrs["http.method"], tt.method)
			}
			if attrs["http.status_code"] != int64(tt.status) {
				t.Errorf("http.status_code = %v, want %d", attrs["http.status_code"], tt.status)
			}
			if _, ok := attrs["http.route"]; ok {
				t.Error("http.route set on an unrouted request")
			}
		})
	}
}

func TestOpenTelemetry_NamesSpanAfterRoutePattern(t *testing.T) {
	exporter := setupTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Method(http.MethodGet, "/api/v1/projects/{slug}", statusHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/portfolio-api", http.NoBody)
	r.ServeHTTP(httptest.NewRecorder(), req)

	span, attrs := onlySpan(t, exporter)
	if want := "HTTP GET /api/v1/projects/{slug}"; span.Name != want {
		t.Errorf("span name = %q, want %q", span.Name, want)
	}
	if attrs["http.route"] != "/api/v1/projects/{slug}" {
		t.Errorf("http.route = %v, want the pattern", attrs["http.route"])
	}
}

func TestOpenTelemetry_JoinsIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	middleware.OpenTelemetry(nil)(statusHandler(http.StatusOK)).ServeHTTP(httptest.NewRecorder(), req)

	span, _ := onlySpan(t, exporter)
	if got := span.SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace ID = %s, want %s", got, traceID)
	}
	if !span.Parent.IsRemote() {
		t.Error("parent span context is not remote")
	}
}

func TestOpenTelemetry_TagsAPISurface(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/v1/admin/projects", want: "admin"},
		{path: "/api/v1/admin", want: "admin"},
		{path: "/api/v1/administrators", want: "public"},
		{path: "/api/v1/projects/featured", want: "public"},
		{path: "/uploads/projects/a.png", want: "uploads"},
		{path: "/health/ready", want: "health"},
		{path: "/favicon.ico", want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			exporter := setupTracer(t)

			handler := middleware.RequestID()(middleware.OpenTelemetry(nil)(statusHandler(http.StatusOK)))
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			req.Header.Set("X-Request-ID", "req-otel")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			_, attrs := onlySpan(t, exporter)
			if attrs["portfolio.api"] != tt.want {
				t.Errorf("portfolio.api = %v, want %q", attrs["portfolio.api"], tt.want)
			}
			if attrs["request.id"] != "req-otel" {
				t.Errorf("request.id = %v, want %q", attrs["request.id"], "req-otel")
			}
		})
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	metrics, err := telemetry.NewMetrics(mp, "portfolio-test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Method(http.MethodGet, "/api/v1/projects/{slug}", statusHandler(http.StatusNotFound))

	for _, slug := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+slug, http.NoBody)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	var total *metricdata.Sum[int64]
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http.server.request.total" {
				if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
					total = &sum
				}
			}
		}
	}
	if total == nil {
		t.Fatal("http.server.request.total not collected")
	}

	// Three slugs share one route label, so one series.
	if len(total.DataPoints) != 1 {
		t.Fatalf("request total has %d series, want 1", len(total.DataPoints))
	}
	dp := total.DataPoints[0]
	if dp.Value != 3 {
		t.Errorf("request total = %d, want 3", dp.Value)
	}
	if v, ok := dp.Attributes.Value(telemetry.AttrHTTPRoute); !ok || v.AsString() != "/api/v1/projects/{slug}" {
		t.Errorf("http.route label = %v, want the pattern", v.AsString())
	}
	if v, ok := dp.Attributes.Value(telemetry.AttrResult); !ok || v.AsString() != "error" {
		t.Errorf("result label = %v, want %q", v.AsString(), "error")
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/skills", http.NoBody)
	middleware.OpenTelemetry(nil)(statusHandler(http.StatusOK)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
