// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// DefaultFeaturedLimit is used when ListFeaturedProjects is called without a
// positive limit.
const DefaultFeaturedLimit = 3

const (
	msgDuplicateTitle = "a project with this title already exists"
	msgReservedTitle  = "this title is reserved"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. Each method loads at most
// one project, applies one domain operation, and persists the result through
// the ProjectRepository port. Image files are handled through the ImageStore
// port after (or around) persistence and never roll back a saved project.
type ProjectService struct {
	repo   ports.ProjectRepository
	images ports.ImageStore
	logger *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(repo ports.ProjectRepository, images ports.ImageStore, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// ListProjects returns all projects, or those in status when non-empty.
func (s *ProjectService) ListProjects(ctx context.Context, status project.Status) ([]*project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects", slog.String("status", status.String()))

	if status == "" {
		projects, err := s.repo.FindAll(ctx)
		if err != nil {
			logFailure(ctx, s.logger, "failed to list projects", "ListProjects", err)
			return nil, err
		}
		return projects, nil
	}

	if !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", status))
	}

	projects, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list projects", "ListProjects", err,
			slog.String("status", status.String()))
		return nil, err
	}
	return projects, nil
}

// ListPublishedProjects returns the publicly visible projects.
func (s *ProjectService) ListPublishedProjects(ctx context.Context) ([]*project.Project, error) {
	s.logger.InfoContext(ctx, "listing published projects")

	projects, err := s.repo.FindPublished(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list published projects", "ListPublishedProjects", err)
		return nil, err
	}
	return projects, nil
}

// ListFeaturedProjects returns up to limit published, featured projects.
func (s *ProjectService) ListFeaturedProjects(ctx context.Context, limit int) ([]*project.Project, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	s.logger.InfoContext(ctx, "listing featured projects", slog.Int("limit", limit))

	projects, err := s.repo.FindFeatured(ctx, limit)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list featured projects", "ListFeaturedProjects", err)
		return nil, err
	}
	return projects, nil
}

// GetProject returns a single project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.Int64("id", id))
	return s.load(ctx, "GetProject", id)
}

// GetPublishedProjectBySlug returns a published project by slug. Drafts and
// archived projects are reported as not found.
func (s *ProjectService) GetPublishedProjectBySlug(ctx context.Context, slug string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project by slug", slog.String("slug", slug))

	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch project", "GetPublishedProjectBySlug", err,
			slog.String("slug", slug))
		return nil, err
	}
	if !p.IsPublished() {
		return nil, fmt.Errorf("project %q: %w", slug, domain.ErrNotFound)
	}
	return p, nil
}

// CreateProject validates the input, checks the derived slug is free, and
// persists a new draft project.
func (s *ProjectService) CreateProject(ctx context.Context, in ports.CreateProjectInput) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("title", in.Title))

	p, err := project.New(in.Title, in.Description, in.Technologies)
	if err != nil {
		return nil, err
	}
	if u := valueobject.TryParseURL(in.URL); u != nil {
		p.SetURL(u)
	}
	if u := valueobject.TryParseURL(in.GitHubURL); u != nil {
		p.SetGitHubURL(u)
	}
	if in.Order != 0 {
		if err := p.Reorder(in.Order); err != nil {
			return nil, err
		}
	}
	if in.Featured {
		p.Feature()
	}

	if err := s.ensureSlugFree(ctx, "CreateProject", p.Slug(), 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		logFailure(ctx, s.logger, "failed to create project", "CreateProject", err,
			slog.String("slug", p.Slug()))
		return nil, err
	}
	return created, nil
}

// UpdateProject applies a partial update to an existing project.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, in ports.UpdateProjectInput) (*project.Project, error) {
	s.logger.InfoContext(ctx, "updating project", slog.Int64("id", id))

	p, err := s.load(ctx, "UpdateProject", id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != p.Title() {
		if err := s.ensureSlugFree(ctx, "UpdateProject", domain.Slugify(*in.Title), id); err != nil {
			return nil, err
		}
		if err := p.UpdateTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if err := applyProjectFields(p, in); err != nil {
		return nil, err
	}

	return s.save(ctx, "UpdateProject", p)
}

// applyProjectFields applies every non-title field of in to p.
func applyProjectFields(p *project.Project, in ports.UpdateProjectInput) error {
	if in.Description != nil {
		if err := p.UpdateDescription(*in.Description); err != nil {
			return err
		}
	}
	if in.Technologies != nil {
		if err := p.UpdateTechnologies(in.Technologies); err != nil {
			return err
		}
	}
	if in.URL != nil {
		p.SetURL(valueobject.TryParseURL(*in.URL))
	}
	if in.GitHubURL != nil {
		p.SetGitHubURL(valueobject.TryParseURL(*in.GitHubURL))
	}
	if in.Order != nil {
		if err := p.Reorder(*in.Order); err != nil {
			return err
		}
	}
	if in.Featured != nil {
		if *in.Featured {
			p.Feature()
		} else {
			p.Unfeature()
		}
	}
	if in.Status != nil {
		return transition(p, *in.Status)
	}
	return nil
}

// transition moves p to status using the state machine's own operations.
func transition(p *project.Project, status project.Status) error {
	if status == p.Status() {
		return nil
	}
	switch status {
	case project.StatusPublished:
		return p.Publish()
	case project.StatusArchived:
		p.Archive()
		return nil
	case project.StatusDraft:
		if !p.IsArchived() {
			return fmt.Errorf("only archived projects can return to draft: %w", domain.ErrInvalidState)
		}
		p.Restore()
		return nil
	default:
		return domain.NewValidationError("status", fmt.Sprintf("invalid: %q", status))
	}
}

// PublishProject makes a project public. The project must have an image.
func (s *ProjectService) PublishProject(ctx context.Context, id int64) (*project.Project, error) {
	s.logger.InfoContext(ctx, "publishing project", slog.Int64("id", id))

	p, err := s.load(ctx, "PublishProject", id)
	if err != nil {
		return nil, err
	}
	if err := p.Publish(); err != nil {
		logFailure(ctx, s.logger, "failed to publish project", "PublishProject", err, slog.Int64("id", id))
		return nil, err
	}
	return s.save(ctx, "PublishProject", p)
}

// ArchiveProject hides a project.
func (s *ProjectService) ArchiveProject(ctx context.Context, id int64) (*project.Project, error) {
	s.logger.InfoContext(ctx, "archiving project", slog.Int64("id", id))

	p, err := s.load(ctx, "ArchiveProject", id)
	if err != nil {
		return nil, err
	}
	p.Archive()
	return s.save(ctx, "ArchiveProject", p)
}

// RestoreProject returns an archived project to draft.
func (s *ProjectService) RestoreProject(ctx context.Context, id int64) (*project.Project, error) {
	s.logger.InfoContext(ctx, "restoring project", slog.Int64("id", id))

	p, err := s.load(ctx, "RestoreProject", id)
	if err != nil {
		return nil, err
	}
	if !p.IsArchived() {
		return p, nil
	}
	p.Restore()
	return s.save(ctx, "RestoreProject", p)
}

// SetProjectImage stores a new image for the project. The previous image is
// removed only after the project row points at the new one; if the save
// fails, the new file is removed and the old one stays in place.
func (s *ProjectService) SetProjectImage(ctx context.Context, id int64, upload ports.ImageUpload) (*project.Project, error) {
	s.logger.InfoContext(ctx, "setting project image",
		slog.Int64("id", id),
		slog.String("filename", upload.Filename),
		slog.Int64("size", upload.Size),
	)

	p, err := s.load(ctx, "SetProjectImage", id)
	if err != nil {
		return nil, err
	}

	oldPath := p.Image()
	path, err := s.images.Store(ctx, upload, "")
	if err != nil {
		logFailure(ctx, s.logger, "failed to store project image", "SetProjectImage", err, slog.Int64("id", id))
		return nil, fmt.Errorf("storing image: %w", err)
	}
	if err := p.SetImage(path); err != nil {
		s.images.Delete(ctx, path)
		return nil, err
	}

	saved, err := s.save(ctx, "SetProjectImage", p)
	if err != nil {
		s.images.Delete(ctx, path)
		return nil, err
	}
	if oldPath != "" && oldPath != path {
		s.images.Delete(ctx, oldPath)
	}
	return saved, nil
}

// DeleteProject deletes a project, then its image. A failed image deletion
// is logged by the image store and does not fail the call.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting project", slog.Int64("id", id))

	p, err := s.load(ctx, "DeleteProject", id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete project", "DeleteProject", err, slog.Int64("id", id))
		return err
	}

	if p.HasImage() {
		s.images.Delete(ctx, p.Image())
	}
	return nil
}

func (s *ProjectService) load(ctx context.Context, operation string, id int64) (*project.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch project", operation, err, slog.Int64("id", id))
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) save(ctx context.Context, operation string, p *project.Project) (*project.Project, error) {
	saved, err := s.repo.Update(ctx, p)
	if err != nil {
		logFailure(ctx, s.logger, "failed to save project", operation, err, slog.Int64("id", p.ID()))
		return nil, err
	}
	return saved, nil
}

// ensureSlugFree fails with a validation error when slug names a fixed route
// or another project already uses it. The storage unique index remains the
// final guard.
func (s *ProjectService) ensureSlugFree(ctx context.Context, operation, slug string, excludeID int64) error {
	if project.IsReservedSlug(slug) {
		return domain.NewValidationError("title", msgReservedTitle)
	}
	exists, err := s.repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		logFailure(ctx, s.logger, "failed to check slug", operation, err, slog.String("slug", slug))
		return fmt.Errorf("checking slug: %w", err)
	}
	if exists {
		return domain.NewValidationError("title", msgDuplicateTitle)
	}
	return nil
}
