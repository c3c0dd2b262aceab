package cache

import (
	"context"
	"strconv"

	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// ProjectRepository caches the published, featured, and by-slug reads of the
// wrapped repository. Every other method passes straight through.
type ProjectRepository struct {
	ports.ProjectRepository
	cache *Cache
}

// Projects wraps next with the cache.
func (c *Cache) Projects(next ports.ProjectRepository) *ProjectRepository {
	return &ProjectRepository{ProjectRepository: next, cache: c}
}

// FindPublished serves published projects from the cache, loading them on a miss.
func (r *ProjectRepository) FindPublished(ctx context.Context) ([]*project.Project, error) {
	recs, err := remember(ctx, r.cache, nsProjects, "published", func(ctx context.Context) ([]project.Record, error) {
		return projectRecords(r.ProjectRepository.FindPublished(ctx))
	})
	if err != nil {
		return nil, err
	}
	return projectsFromRecords(recs)
}

// FindFeatured caches one entry per limit.
func (r *ProjectRepository) FindFeatured(ctx context.Context, limit int) ([]*project.Project, error) {
	recs, err := remember(ctx, r.cache, nsProjects, "featured:"+strconv.Itoa(limit), func(ctx context.Context) ([]project.Record, error) {
		return projectRecords(r.ProjectRepository.FindFeatured(ctx, limit))
	})
	if err != nil {
		return nil, err
	}
	return projectsFromRecords(recs)
}

// FindBySlug caches the project under its slug. Lookup errors are not cached.
func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	rec, err := remember(ctx, r.cache, nsProjects, "slug:"+slug, func(ctx context.Context) (project.Record, error) {
		p, err := r.ProjectRepository.FindBySlug(ctx, slug)
		if err != nil {
			return project.Record{}, err
		}
		return p.ToRecord(), nil
	})
	if err != nil {
		return nil, err
	}
	return project.FromRecord(rec)
}

// Create inserts through and invalidates the projects namespace.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	created, err := r.ProjectRepository.Create(ctx, p)
	if err == nil {
		r.cache.invalidate(ctx, nsProjects)
	}
	return created, err
}

// Update saves through and invalidates the projects namespace.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	updated, err := r.ProjectRepository.Update(ctx, p)
	if err == nil {
		r.cache.invalidate(ctx, nsProjects)
	}
	return updated, err
}

// Delete removes through and invalidates the projects namespace.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	err := r.ProjectRepository.Delete(ctx, id)
	if err == nil {
		r.cache.invalidate(ctx, nsProjects)
	}
	return err
}

func projectRecords(projects []*project.Project, err error) ([]project.Record, error) {
	if err != nil {
		return nil, err
	}
	recs := make([]project.Record, len(projects))
	for i, p := range projects {
		recs[i] = p.ToRecord()
	}
	return recs, nil
}

func projectsFromRecords(recs []project.Record) ([]*project.Project, error) {
	projects := make([]*project.Project, 0, len(recs))
	for _, rec := range recs {
		p, err := project.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
