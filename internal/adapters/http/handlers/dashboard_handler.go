package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	svc  ports.DashboardService
	urls dto.ImageURLs
}

// NewDashboardHandler creates a DashboardHandler. urls turns stored image
// paths into public URLs in the response.
func NewDashboardHandler(svc ports.DashboardService, urls dto.ImageURLs) *DashboardHandler {
	return &DashboardHandler{svc: svc, urls: urls}
}

// Overview handles GET /api/v1/admin/dashboard.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDashboardResponse(o, h.urls))
}
