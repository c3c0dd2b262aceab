package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
	"github.com/jsamuelsen11/portfolio-service/mocks"
)

func newSkillHandler(t *testing.T) (*handlers.SkillHandler, *mocks.MockSkillService) {
	t.Helper()
	svc := mocks.NewMockSkillService(t)
	return handlers.NewSkillHandler(svc), svc
}

func TestListGrouped(t *testing.T) {
	t.Parallel()
	h, svc := newSkillHandler(t)

	svc.EXPECT().ListSkillsByCategory(mock.Anything).Return([]ports.SkillGroup{
		{Category: "Backend", Skills: []*skill.Skill{validSkill(t)}},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/skills", nil)
	h.ListGrouped(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SkillGroupsResponse](t, rec)
	if len(resp.Categories) != 1 || resp.Categories[0].Category != "Backend" {
		t.Fatalf("Categories = %+v, want one Backend group", resp.Categories)
	}
	s := resp.Categories[0].Skills[0]
	if s.LevelPercentage != 100 || s.LevelLabel == "" {
		t.Errorf("level data = %d/%q, want 100 and a label", s.LevelPercentage, s.LevelLabel)
	}
}

func TestSkillList(t *testing.T) {
	t.Parallel()
	h, svc := newSkillHandler(t)

	svc.EXPECT().ListSkills(mock.Anything).Return([]*skill.Skill{validSkill(t)}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/skills", nil)
	h.List(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.SkillListResponse](t, rec); resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestSkillCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		callSvc    bool
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"name":"Go","category":"Backend","level":"expert"}`,
			callSvc:    true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown level",
			body:       `{"name":"Go","category":"Backend","level":"guru"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "duplicate name",
			body:       `{"name":"Go","category":"Backend","level":"expert"}`,
			svcErr:     domain.NewValidationError("name", "a skill with this name already exists"),
			callSvc:    true,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newSkillHandler(t)

			if tt.callSvc {
				svc.EXPECT().CreateSkill(mock.Anything, mock.AnythingOfType("ports.CreateSkillInput")).
					RunAndReturn(func(_ context.Context, in ports.CreateSkillInput) (*skill.Skill, error) {
						if in.Level != skill.LevelExpert {
							t.Errorf("Level = %q, want expert", in.Level)
						}
						if tt.svcErr != nil {
							return nil, tt.svcErr
						}
						return validSkill(t), nil
					})
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/skills", strings.NewReader(tt.body))
			h.Create(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestSkillGetUpdateDelete(t *testing.T) {
	t.Parallel()
	h, svc := newSkillHandler(t)

	svc.EXPECT().GetSkill(mock.Anything, int64(3)).Return(validSkill(t), nil)
	svc.EXPECT().UpdateSkill(mock.Anything, int64(3), mock.AnythingOfType("ports.UpdateSkillInput")).
		Return(validSkill(t), nil)
	svc.EXPECT().DeleteSkill(mock.Anything, int64(3)).Return(domain.ErrNotFound)

	params := map[string]string{"id": "3"}

	rec := httptest.NewRecorder()
	h.Get(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/admin/skills/3", nil), params))
	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.SkillResponse](t, rec); resp.Slug != "go" {
		t.Errorf("Slug = %q, want %q", resp.Slug, "go")
	}

	rec = httptest.NewRecorder()
	h.Update(rec, withChiParams(httptest.NewRequest(http.MethodPatch, "/api/v1/admin/skills/3",
		strings.NewReader(`{"order":2}`)), params))
	requireStatus(t, rec, http.StatusOK)

	rec = httptest.NewRecorder()
	h.Delete(rec, withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/skills/3", nil), params))
	requireStatus(t, rec, http.StatusNotFound)
}
