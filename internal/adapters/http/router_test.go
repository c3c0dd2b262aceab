package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/portfolio-service/internal/adapters/http"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
	"github.com/jsamuelsen11/portfolio-service/mocks"
)

const testAdminToken = "router-test-token"

type stubURLs struct{}

func (stubURLs) URL(path string) string { return "/uploads/" + path }

type routerDeps struct {
	projects  *mocks.MockProjectService
	skills    *mocks.MockSkillService
	contacts  *mocks.MockContactService
	dashboard *mocks.MockDashboardService
	registry  *mocks.MockHealthRegistry
}

func newRouterDeps(t *testing.T) routerDeps {
	t.Helper()
	return routerDeps{
		projects:  mocks.NewMockProjectService(t),
		skills:    mocks.NewMockSkillService(t),
		contacts:  mocks.NewMockContactService(t),
		dashboard: mocks.NewMockDashboardService(t),
		registry:  mocks.NewMockHealthRegistry(t),
	}
}

func (d routerDeps) handlers() adapthttp.Handlers {
	return adapthttp.Handlers{
		Projects:  handlers.NewProjectHandler(d.projects, stubURLs{}, 5<<20),
		Skills:    handlers.NewSkillHandler(d.skills),
		Contacts:  handlers.NewContactHandler(d.contacts, nil),
		Dashboard: handlers.NewDashboardHandler(d.dashboard, stubURLs{}),
		Health:    handlers.NewHealthHandler(d.registry),
	}
}

func newTestRouter(t *testing.T, opts adapthttp.RouterOptions) (http.Handler, routerDeps) {
	t.Helper()
	deps := newRouterDeps(t)
	return adapthttp.NewRouter(deps.handlers(), opts), deps
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.RouterOptions{
		AdminToken: testAdminToken,
		Uploads:    http.NotFoundHandler(),
	})

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/uploads/*"},
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/projects/featured"},
		{http.MethodGet, "/api/v1/projects/{slug}"},
		{http.MethodGet, "/api/v1/skills"},
		{http.MethodPost, "/api/v1/contact"},
		{http.MethodGet, "/api/v1/admin/dashboard"},
		{http.MethodGet, "/api/v1/admin/projects/"},
		{http.MethodPost, "/api/v1/admin/projects/"},
		{http.MethodGet, "/api/v1/admin/projects/{id}"},
		{http.MethodPatch, "/api/v1/admin/projects/{id}"},
		{http.MethodDelete, "/api/v1/admin/projects/{id}"},
		{http.MethodPost, "/api/v1/admin/projects/{id}/publish"},
		{http.MethodPost, "/api/v1/admin/projects/{id}/archive"},
		{http.MethodPost, "/api/v1/admin/projects/{id}/restore"},
		{http.MethodPut, "/api/v1/admin/projects/{id}/image"},
		{http.MethodGet, "/api/v1/admin/skills/"},
		{http.MethodPost, "/api/v1/admin/skills/"},
		{http.MethodGet, "/api/v1/admin/skills/{id}"},
		{http.MethodPatch, "/api/v1/admin/skills/{id}"},
		{http.MethodDelete, "/api/v1/admin/skills/{id}"},
		{http.MethodGet, "/api/v1/admin/messages/"},
		{http.MethodGet, "/api/v1/admin/messages/unread-count"},
		{http.MethodGet, "/api/v1/admin/messages/{id}"},
		{http.MethodDelete, "/api/v1/admin/messages/{id}"},
		{http.MethodPost, "/api/v1/admin/messages/{id}/read"},
		{http.MethodPost, "/api/v1/admin/messages/{id}/unread"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_NoUploadsRouteWithoutHandler(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.RouterOptions{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/projects/a.png", http.NoBody))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_UploadsStripsPrefix(t *testing.T) {
	t.Parallel()

	var gotPath string
	uploads := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	router, _ := newTestRouter(t, adapthttp.RouterOptions{Uploads: uploads})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/projects/a.png", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotPath != "projects/a.png" {
		t.Errorf("path = %q, want %q", gotPath, "projects/a.png")
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	deps := newRouterDeps(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(deps.handlers(), adapthttp.RouterOptions{}, testMW)

	deps.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]ports.CheckResult{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_PublicListProjects(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, adapthttp.RouterOptions{})

	deps.projects.EXPECT().ListPublishedProjects(mock.Anything).Return([]*project.Project{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_FeaturedIsNotASlug(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, adapthttp.RouterOptions{})

	deps.projects.EXPECT().ListFeaturedProjects(mock.Anything, handlers.DefaultPublicFeaturedLimit).
		Return([]*project.Project{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/featured", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
	}{
		{name: "missing header", token: testAdminToken, header: "", wantStatus: http.StatusForbidden},
		{name: "wrong token", token: testAdminToken, header: "Bearer wrong", wantStatus: http.StatusForbidden},
		{name: "admin disabled", token: "", header: "Bearer " + testAdminToken, wantStatus: http.StatusForbidden},
		{name: "valid token", token: testAdminToken, header: "Bearer " + testAdminToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, deps := newTestRouter(t, adapthttp.RouterOptions{AdminToken: tt.token})
			if tt.wantStatus == http.StatusOK {
				deps.contacts.EXPECT().CountUnread(mock.Anything).Return(2, nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages/unread-count", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_AdminListWithoutTrailingSlash(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t, adapthttp.RouterOptions{AdminToken: testAdminToken})

	deps.projects.EXPECT().ListProjects(mock.Anything, project.Status("")).Return([]*project.Project{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_ContactIsRateLimited(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewIPRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	router, _ := newTestRouter(t, adapthttp.RouterOptions{ContactLimiter: limiter})

	send := func() int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := send(); got != http.StatusUnprocessableEntity {
		t.Fatalf("first request status = %d, want %d", got, http.StatusUnprocessableEntity)
	}
	if got := send(); got != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want %d", got, http.StatusTooManyRequests)
	}
}

func TestRouter_TrustProxyUsesForwardedIP(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewIPRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	router, _ := newTestRouter(t, adapthttp.RouterOptions{ContactLimiter: limiter, TrustProxy: true})

	send := func(forwardedFor string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader("{"))
		req.Header.Set("X-Forwarded-For", forwardedFor)
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := send("203.0.113.1"); got != http.StatusUnprocessableEntity {
		t.Fatalf("first client status = %d, want %d", got, http.StatusUnprocessableEntity)
	}
	if got := send("203.0.113.2"); got != http.StatusUnprocessableEntity {
		t.Errorf("second client status = %d, want %d", got, http.StatusUnprocessableEntity)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.RouterOptions{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, adapthttp.RouterOptions{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/projects", http.NoBody)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
