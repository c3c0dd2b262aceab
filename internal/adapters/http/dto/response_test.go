package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

type stubURLs struct{}

func (stubURLs) URL(path string) string { return "/uploads/" + path }

func testProject(t *testing.T, image string) *project.Project {
	t.Helper()
	id := int64(7)
	rec := project.Record{
		ID:           &id,
		Title:        "Portfolio API",
		Slug:         "portfolio-api",
		Description:  "A small service that powers the portfolio site.",
		Technologies: []string{"Go"},
		Status:       "draft",
		CreatedAt:    "2026-02-12 15:04:05",
	}
	if image != "" {
		rec.Image = &image
	}
	p, err := project.FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	return p
}

func TestToProjectResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		image        string
		wantImageURL string
	}{
		{name: "without image", image: ""},
		{name: "with image", image: "projects/1_ab.png", wantImageURL: "/uploads/projects/1_ab.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToProjectResponse(testProject(t, tt.image), stubURLs{})

			if got.ID == nil || *got.ID != 7 {
				t.Errorf("ID = %v, want 7", got.ID)
			}
			if got.Slug != "portfolio-api" {
				t.Errorf("Slug = %q, want %q", got.Slug, "portfolio-api")
			}
			if got.StatusLabel != project.StatusDraft.Label() {
				t.Errorf("StatusLabel = %q, want %q", got.StatusLabel, project.StatusDraft.Label())
			}
			switch {
			case tt.wantImageURL == "" && got.ImageURL != nil:
				t.Errorf("ImageURL = %q, want nil", *got.ImageURL)
			case tt.wantImageURL != "" && (got.ImageURL == nil || *got.ImageURL != tt.wantImageURL):
				t.Errorf("ImageURL = %v, want %q", got.ImageURL, tt.wantImageURL)
			}
		})
	}
}

func TestProjectResponse_FlatJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToProjectResponse(testProject(t, ""), stubURLs{}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"id", "title", "slug", "technologies", "github_url", "status", "created_at", "image_url"} {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing top-level key %q", key)
		}
	}
	if m["image"] != nil {
		t.Errorf("image = %v, want null", m["image"])
	}
}

func TestToSkillGroupsResponse(t *testing.T) {
	t.Parallel()

	goSkill, err := skill.New("Go", "Backend", skill.LevelExpert)
	if err != nil {
		t.Fatalf("skill.New() error = %v", err)
	}
	sqlSkill, err := skill.New("SQL", "Backend", skill.LevelIntermediate)
	if err != nil {
		t.Fatalf("skill.New() error = %v", err)
	}
	cssSkill, err := skill.New("CSS", "Frontend", skill.LevelBeginner)
	if err != nil {
		t.Fatalf("skill.New() error = %v", err)
	}

	got := dto.ToSkillGroupsResponse([]ports.SkillGroup{
		{Category: "Backend", Skills: []*skill.Skill{goSkill, sqlSkill}},
		{Category: "Frontend", Skills: []*skill.Skill{cssSkill}},
	})

	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
	if len(got.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(got.Categories))
	}
	first := got.Categories[0].Skills[0]
	if first.LevelPercentage != 100 {
		t.Errorf("LevelPercentage = %d, want 100", first.LevelPercentage)
	}
	if first.LevelLabel != skill.LevelExpert.Label() {
		t.Errorf("LevelLabel = %q, want %q", first.LevelLabel, skill.LevelExpert.Label())
	}
	if got.Categories[1].Skills[0].LevelColor != "blue" {
		t.Errorf("LevelColor = %q, want %q", got.Categories[1].Skills[0].LevelColor, "blue")
	}
}

func TestToContactResponse_ReadState(t *testing.T) {
	t.Parallel()

	email, err := valueobject.ParseEmail("ada@example.com")
	if err != nil {
		t.Fatalf("ParseEmail() error = %v", err)
	}
	c, err := contact.New("Ada", email, "Collaboration", "I would love to work together on a project.")
	if err != nil {
		t.Fatalf("contact.New() error = %v", err)
	}

	got := dto.ToContactResponse(c)
	if got.IsRead {
		t.Error("IsRead = true, want false")
	}
	if !got.IsRecent {
		t.Error("IsRecent = false, want true")
	}
	if got.ReadAt != nil {
		t.Errorf("ReadAt = %q, want nil", *got.ReadAt)
	}

	c.MarkAsRead()
	if got := dto.ToContactResponse(c); !got.IsRead || got.ReadAt == nil {
		t.Errorf("after MarkAsRead: IsRead = %v, ReadAt = %v", got.IsRead, got.ReadAt)
	}
}

func TestToDashboardResponse(t *testing.T) {
	t.Parallel()

	o := &ports.Overview{
		TotalProjects:     3,
		PublishedProjects: 1,
		DraftProjects:     1,
		ArchivedProjects:  1,
		UnreadMessages:    0,
		RecentProjects:    []*project.Project{testProject(t, "projects/a.png")},
	}

	got := dto.ToDashboardResponse(o, stubURLs{})
	if got.TotalProjects != 3 || got.ArchivedProjects != 1 {
		t.Errorf("counts = %+v", got)
	}
	if len(got.RecentProjects) != 1 || got.RecentProjects[0].ImageURL == nil {
		t.Errorf("RecentProjects = %+v, want one project with image URL", got.RecentProjects)
	}
	if got.UnreadInbox == nil || len(got.UnreadInbox) != 0 {
		t.Errorf("UnreadInbox = %v, want empty non-nil slice", got.UnreadInbox)
	}
}
