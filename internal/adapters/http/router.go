// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/middleware"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Projects  *handlers.ProjectHandler
	Skills    *handlers.SkillHandler
	Contacts  *handlers.ContactHandler
	Dashboard *handlers.DashboardHandler
	Health    *handlers.HealthHandler
}

// RouterOptions configures the route-specific behavior of NewRouter.
type RouterOptions struct {
	// AdminToken is the bearer token for /api/v1/admin. Empty disables the
	// admin API.
	AdminToken string

	// ContactLimiter throttles POST /api/v1/contact per client IP. Nil
	// disables throttling.
	ContactLimiter *middleware.IPRateLimiter

	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that sets these headers.
	TrustProxy bool

	// Uploads serves locally stored images under /uploads/. Nil when images
	// are served from object storage.
	Uploads http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, opts RouterOptions, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	if opts.Uploads != nil {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", opts.Uploads))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public site.
		r.Get("/projects", h.Projects.ListPublished)
		r.Get("/projects/featured", h.Projects.ListFeatured)
		r.Get("/projects/{slug}", h.Projects.GetBySlug)
		r.Get("/skills", h.Skills.ListGrouped)

		r.Group(func(r chi.Router) {
			if opts.ContactLimiter != nil {
				r.Use(middleware.RateLimit(opts.ContactLimiter))
			}
			r.Post("/contact", h.Contacts.Send)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(opts.AdminToken))
			mountAdmin(r, h)
		})
	})

	return r
}

func mountAdmin(r chi.Router, h Handlers) {
	r.Get("/dashboard", h.Dashboard.Overview)

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.Projects.List)
		r.Post("/", h.Projects.Create)
		r.Get("/{id}", h.Projects.Get)
		r.Patch("/{id}", h.Projects.Update)
		r.Delete("/{id}", h.Projects.Delete)
		r.Post("/{id}/publish", h.Projects.Publish)
		r.Post("/{id}/archive", h.Projects.Archive)
		r.Post("/{id}/restore", h.Projects.Restore)
		r.Put("/{id}/image", h.Projects.UploadImage)
	})

	r.Route("/skills", func(r chi.Router) {
		r.Get("/", h.Skills.List)
		r.Post("/", h.Skills.Create)
		r.Get("/{id}", h.Skills.Get)
		r.Patch("/{id}", h.Skills.Update)
		r.Delete("/{id}", h.Skills.Delete)
	})

	r.Route("/messages", func(r chi.Router) {
		r.Get("/", h.Contacts.List)
		r.Get("/unread-count", h.Contacts.UnreadCount)
		r.Get("/{id}", h.Contacts.Get)
		r.Delete("/{id}", h.Contacts.Delete)
		r.Post("/{id}/read", h.Contacts.MarkRead)
		r.Post("/{id}/unread", h.Contacts.MarkUnread)
	})
}
