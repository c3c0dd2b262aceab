package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// SkillHandler handles the public grouped skill listing and admin skill CRUD.
type SkillHandler struct {
	svc ports.SkillService
}

// NewSkillHandler creates a new SkillHandler with the given service port.
func NewSkillHandler(svc ports.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// ListGrouped handles GET /api/v1/skills.
func (h *SkillHandler) ListGrouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListSkillsByCategory(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSkillGroupsResponse(groups))
}

// List handles GET /api/v1/admin/skills.
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.ListSkills(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSkillListResponse(skills))
}

// Create handles POST /api/v1/admin/skills.
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSkillRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondSkill(w, r, http.StatusCreated)(h.svc.CreateSkill(r.Context(), req.ToInput()))
}

// Get handles GET /api/v1/admin/skills/{id}.
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		respondSkill(w, r, http.StatusOK)(h.svc.GetSkill(r.Context(), id))
	})
}

// Update handles PATCH /api/v1/admin/skills/{id}.
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		var req dto.UpdateSkillRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		respondSkill(w, r, http.StatusOK)(h.svc.UpdateSkill(r.Context(), id, req.ToInput()))
	})
}

// Delete handles DELETE /api/v1/admin/skills/{id}.
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		if err := h.svc.DeleteSkill(r.Context(), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func respondSkill(w http.ResponseWriter, r *http.Request, status int) func(*skill.Skill, error) {
	return func(s *skill.Skill, err error) {
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, status, dto.ToSkillResponse(s))
	}
}
