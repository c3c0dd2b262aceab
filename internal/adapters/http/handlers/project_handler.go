// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/portfolio-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// DefaultPublicFeaturedLimit is the number of featured projects returned by
// the public API when no limit is given.
const DefaultPublicFeaturedLimit = 6

// maxFeaturedLimit caps the featured limit query parameter.
const maxFeaturedLimit = 50

// multipartOverhead is allowed on top of the image size limit for the
// multipart envelope.
const multipartOverhead = 1 << 20

// imageField is the multipart field carrying a project image.
const imageField = "image"

// ProjectHandler handles the public project endpoints and the admin project
// management endpoints.
type ProjectHandler struct {
	svc            ports.ProjectService
	urls           dto.ImageURLs
	maxUploadBytes int64
}

// NewProjectHandler creates a new ProjectHandler. maxUploadBytes bounds the
// image upload body; the image store applies its own size rule.
func NewProjectHandler(svc ports.ProjectService, urls dto.ImageURLs, maxUploadBytes int64) *ProjectHandler {
	return &ProjectHandler{svc: svc, urls: urls, maxUploadBytes: maxUploadBytes}
}

// ListPublished handles GET /api/v1/projects.
func (h *ProjectHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListPublishedProjects(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects, h.urls))
}

// ListFeatured handles GET /api/v1/projects/featured?limit=N.
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	limit := DefaultPublicFeaturedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxFeaturedLimit {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("limit",
				"must be an integer between 1 and "+strconv.Itoa(maxFeaturedLimit)))
			return
		}
		limit = n
	}

	projects, err := h.svc.ListFeaturedProjects(r.Context(), limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects, h.urls))
}

// GetBySlug handles GET /api/v1/projects/{slug}.
func (h *ProjectHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPublishedProjectBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p, h.urls))
}

// List handles GET /api/v1/admin/projects?status=.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	status := project.Status(r.URL.Query().Get("status"))

	projects, err := h.svc.ListProjects(r.Context(), status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects, h.urls))
}

// Create handles POST /api/v1/admin/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created, h.urls))
}

// Get handles GET /api/v1/admin/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		h.respond(w, r, http.StatusOK)(h.svc.GetProject(r.Context(), id))
	})
}

// Update handles PATCH /api/v1/admin/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		var req dto.UpdateProjectRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		h.respond(w, r, http.StatusOK)(h.svc.UpdateProject(r.Context(), id, req.ToInput()))
	})
}

// Delete handles DELETE /api/v1/admin/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		if err := h.svc.DeleteProject(r.Context(), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// Publish handles POST /api/v1/admin/projects/{id}/publish.
func (h *ProjectHandler) Publish(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		h.respond(w, r, http.StatusOK)(h.svc.PublishProject(r.Context(), id))
	})
}

// Archive handles POST /api/v1/admin/projects/{id}/archive.
func (h *ProjectHandler) Archive(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		h.respond(w, r, http.StatusOK)(h.svc.ArchiveProject(r.Context(), id))
	})
}

// Restore handles POST /api/v1/admin/projects/{id}/restore.
func (h *ProjectHandler) Restore(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		h.respond(w, r, http.StatusOK)(h.svc.RestoreProject(r.Context(), id))
	})
}

// UploadImage handles PUT /api/v1/admin/projects/{id}/image with a
// multipart/form-data body carrying the file in the "image" field.
func (h *ProjectHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	withID(w, r, func(id int64) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

		file, header, err := r.FormFile(imageField)
		if err != nil {
			dto.WriteErrorResponse(w, r, uploadError(err))
			return
		}
		defer func() { _ = file.Close() }()

		upload := ports.ImageUpload{
			Filename: header.Filename,
			Size:     header.Size,
			Content:  file,
		}
		h.respond(w, r, http.StatusOK)(h.svc.SetProjectImage(r.Context(), id, upload))
	})
}

// respond returns a writer for the (project, error) result of a service call.
func (h *ProjectHandler) respond(w http.ResponseWriter, r *http.Request, status int) func(*project.Project, error) {
	return func(p *project.Project, err error) {
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, status, dto.ToProjectResponse(p, h.urls))
	}
}

// uploadError maps a multipart parsing failure to a field validation error.
func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return domain.NewValidationError(imageField, "upload is too large")
	case errors.Is(err, http.ErrMissingFile):
		return domain.NewValidationError(imageField, domain.MsgRequired)
	default:
		return domain.NewValidationError(imageField, "must be sent as multipart/form-data")
	}
}
