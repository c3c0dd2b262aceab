package project_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
)

func ptr[T any](v T) *T { return &v }

func fullRecord() project.Record {
	return project.Record{
		ID:           ptr(int64(42)),
		Title:        "Portfolio Engine",
		Slug:         "portfolio-engine",
		Description:  "Backend powering the personal portfolio site.",
		Image:        ptr("projects/1700000000_abcd1234.jpg"),
		Technologies: []string{"Go", "SQLite"},
		URL:          ptr("https://example.com"),
		GitHubURL:    ptr("https://github.com/me/portfolio"),
		Status:       "published",
		Featured:     true,
		Order:        3,
		CreatedAt:    "2026-01-10 03:43:24",
		UpdatedAt:    ptr("2026-02-01 12:00:00"),
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("fresh project", func(t *testing.T) {
		t.Parallel()
		p := newProject(t)
		p.SetGitHubURL(valueobject.TryParseURL("https://github.com/me/app"))

		back, err := project.FromRecord(p.ToRecord())
		if err != nil {
			t.Fatalf("FromRecord error: %v", err)
		}
		assertSameProject(t, back, p)
	})

	t.Run("persisted project", func(t *testing.T) {
		t.Parallel()
		p, err := project.FromRecord(fullRecord())
		if err != nil {
			t.Fatalf("FromRecord error: %v", err)
		}

		back, err := project.FromRecord(p.ToRecord())
		if err != nil {
			t.Fatalf("FromRecord error: %v", err)
		}
		assertSameProject(t, back, p)
		if !reflect.DeepEqual(p.ToRecord(), fullRecord()) {
			t.Errorf("ToRecord() = %+v, want %+v", p.ToRecord(), fullRecord())
		}
	})
}

func assertSameProject(t *testing.T, got, want *project.Project) {
	t.Helper()
	if !reflect.DeepEqual(got.ToRecord(), want.ToRecord()) {
		t.Errorf("records differ:\n got %+v\nwant %+v", got.ToRecord(), want.ToRecord())
	}
	if !got.CreatedAt().Equal(want.CreatedAt()) || !got.UpdatedAt().Equal(want.UpdatedAt()) {
		t.Errorf("timestamps differ: got (%v, %v), want (%v, %v)",
			got.CreatedAt(), got.UpdatedAt(), want.CreatedAt(), want.UpdatedAt())
	}
	if got.ID() != want.ID() || got.Image() != want.Image() || got.Status() != want.Status() {
		t.Errorf("identity fields differ: got (%d, %q, %q), want (%d, %q, %q)",
			got.ID(), got.Image(), got.Status(), want.ID(), want.Image(), want.Status())
	}
}

func TestRecord_JSONKeys(t *testing.T) {
	t.Parallel()

	p := newProject(t)
	raw, err := json.Marshal(p.ToRecord())
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}

	for _, key := range []string{
		"id", "title", "slug", "description", "image", "technologies", "url",
		"github_url", "status", "featured", "order", "created_at", "updated_at",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, raw)
		}
	}
	if m["id"] != nil || m["image"] != nil || m["updated_at"] != nil {
		t.Errorf("nullable fields not null for new project: %s", raw)
	}
	if m["status"] != "draft" {
		t.Errorf("status = %v, want draft", m["status"])
	}
}

func TestFromRecord_Defaults(t *testing.T) {
	t.Parallel()

	r := fullRecord()
	r.Status = ""
	r.CreatedAt = ""
	r.ID = nil

	p, err := project.FromRecord(r)
	if err != nil {
		t.Fatalf("FromRecord error: %v", err)
	}
	if p.Status() != project.StatusDraft {
		t.Errorf("Status() = %q, want draft default", p.Status())
	}
	if p.CreatedAt().IsZero() {
		t.Error("CreatedAt() is zero, want now default")
	}
	if p.ID() != 0 {
		t.Errorf("ID() = %d, want 0", p.ID())
	}
}

func TestFromRecord_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*project.Record)
		field  string
	}{
		{"short title", func(r *project.Record) { r.Title = "ab" }, "title"},
		{"short description", func(r *project.Record) { r.Description = "short" }, "description"},
		{"no technologies", func(r *project.Record) { r.Technologies = nil }, "technologies"},
		{"unknown status", func(r *project.Record) { r.Status = "deleted" }, "status"},
		{"bad url", func(r *project.Record) { r.URL = ptr("ftp://example.com") }, "url"},
		{"bad github url", func(r *project.Record) { r.GitHubURL = ptr("nope") }, "github_url"},
		{"negative order", func(r *project.Record) { r.Order = -1 }, "order"},
		{"bad created_at", func(r *project.Record) { r.CreatedAt = "yesterday" }, "created_at"},
		{"bad updated_at", func(r *project.Record) { r.UpdatedAt = ptr("2026-13-01 00:00:00") }, "updated_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := fullRecord()
			tt.modify(&r)

			_, err := project.FromRecord(r)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("FromRecord error = %v, want ErrInvalidInput", err)
			}
			requireField(t, err, tt.field)
		})
	}
}
