package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusFailing  = "failing"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

type checkResponse struct {
	Status     string  `json:"status"`
	Error      string  `json:"error,omitempty"`
	DurationMS float64 `json:"duration_ms"`
	Optional   bool    `json:"optional,omitempty"`
}

type readinessResponse struct {
	Status string                   `json:"status"`
	Checks map[string]checkResponse `json:"checks"`
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready.
//
// A failing critical check (database, images) answers 503 "not_ready". A
// failing optional check (cache, mail) answers 200 "degraded": the service
// still serves content, reading through to the database or skipping
// notifications.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{
		Status: statusReady,
		Checks: make(map[string]checkResponse, len(results)),
	}
	code := http.StatusOK

	for name, res := range results {
		check := checkResponse{
			Status:     statusOK,
			DurationMS: float64(res.Duration.Microseconds()) / 1000,
			Optional:   res.Optional,
		}
		if res.Err != nil {
			check.Status = statusFailing
			check.Error = res.Err.Error()
			switch {
			case !res.Optional:
				resp.Status = statusNotReady
				code = http.StatusServiceUnavailable
			case resp.Status == statusReady:
				resp.Status = statusDegraded
			}
		}
		resp.Checks[name] = check
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
