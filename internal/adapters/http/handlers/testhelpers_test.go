package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
)

const testCreatedAt = "2026-02-12 15:04:05"

type stubURLs struct{}

func (stubURLs) URL(path string) string { return "http://localhost:8080/uploads/" + path }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func int64Ptr(v int64) *int64 { return &v }

func validProject(t *testing.T) *project.Project {
	t.Helper()
	image := "projects/1700000000_deadbeef.png"
	p, err := project.FromRecord(project.Record{
		ID:           int64Ptr(1),
		Title:        "Portfolio API",
		Slug:         "portfolio-api",
		Description:  "A small service that powers the portfolio site.",
		Image:        &image,
		Technologies: []string{"Go", "SQLite"},
		Status:       "published",
		Featured:     true,
		CreatedAt:    testCreatedAt,
	})
	if err != nil {
		t.Fatalf("project.FromRecord() error = %v", err)
	}
	return p
}

func validSkill(t *testing.T) *skill.Skill {
	t.Helper()
	s, err := skill.FromRecord(skill.Record{
		ID:        int64Ptr(3),
		Name:      "Go",
		Slug:      "go",
		Category:  "Backend",
		Level:     "expert",
		CreatedAt: testCreatedAt,
	})
	if err != nil {
		t.Fatalf("skill.FromRecord() error = %v", err)
	}
	return s
}

func validContact(t *testing.T) *contact.Contact {
	t.Helper()
	c, err := contact.FromRecord(contact.Record{
		ID:        int64Ptr(9),
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Subject:   "Collaboration",
		Message:   "I would love to work together on a project.",
		CreatedAt: testCreatedAt,
	})
	if err != nil {
		t.Fatalf("contact.FromRecord() error = %v", err)
	}
	return c
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
