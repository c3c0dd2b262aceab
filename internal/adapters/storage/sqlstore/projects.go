package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

const projectColumns = `id, title, slug, description, image, technologies, url, github_url,
	status, featured, "order", created_at, updated_at`

const projectOrder = ` ORDER BY "order" ASC, created_at DESC, id DESC`

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// ProjectRepository implements ports.ProjectRepository.
type ProjectRepository struct {
	store *Store
}

// FindAll returns every project in display order.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]*project.Project, error) {
	projects, err := queryAll(ctx, r.store, `SELECT `+projectColumns+` FROM projects`+projectOrder, scanProject)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// FindByID returns domain.ErrNotFound when no project has id.
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	row := r.store.queryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

// FindBySlug returns domain.ErrNotFound when no project has slug.
func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	row := r.store.queryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE slug = ?`, slug)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %q: %w", slug, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project %q: %w", slug, err)
	}
	return p, nil
}

// FindByStatus returns the projects in one lifecycle state.
func (r *ProjectRepository) FindByStatus(ctx context.Context, status project.Status) ([]*project.Project, error) {
	projects, err := queryAll(ctx, r.store,
		`SELECT `+projectColumns+` FROM projects WHERE status = ?`+projectOrder,
		scanProject, status.String())
	if err != nil {
		return nil, fmt.Errorf("list %s projects: %w", status, err)
	}
	return projects, nil
}

// FindPublished returns the published projects in display order.
func (r *ProjectRepository) FindPublished(ctx context.Context) ([]*project.Project, error) {
	return r.FindByStatus(ctx, project.StatusPublished)
}

// FindFeatured returns at most limit published, featured projects.
func (r *ProjectRepository) FindFeatured(ctx context.Context, limit int) ([]*project.Project, error) {
	projects, err := queryAll(ctx, r.store,
		`SELECT `+projectColumns+` FROM projects WHERE status = ? AND featured = ?`+projectOrder+` LIMIT ?`,
		scanProject, project.StatusPublished.String(), true, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	return projects, nil
}

// Create inserts p and returns the stored row.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	rec := p.ToRecord()
	techs, err := json.Marshal(rec.Technologies)
	if err != nil {
		return nil, fmt.Errorf("encode technologies: %w", err)
	}

	var id int64
	err = r.store.queryRow(ctx,
		`INSERT INTO projects (title, slug, description, image, technologies, url, github_url,
			status, featured, "order", created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		rec.Title, rec.Slug, rec.Description, nullString(rec.Image), string(techs),
		nullString(rec.URL), nullString(rec.GitHubURL), rec.Status, rec.Featured, rec.Order,
		rec.CreatedAt, nullString(rec.UpdatedAt),
	).Scan(&id)
	if err != nil {
		return nil, writeErr("create project", err)
	}
	return r.FindByID(ctx, id)
}

// Update overwrites every mutable column of the row with p's ID.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	rec := p.ToRecord()
	techs, err := json.Marshal(rec.Technologies)
	if err != nil {
		return nil, fmt.Errorf("encode technologies: %w", err)
	}

	res, err := r.store.exec(ctx,
		`UPDATE projects
		    SET title = ?, slug = ?, description = ?, image = ?, technologies = ?, url = ?,
		        github_url = ?, status = ?, featured = ?, "order" = ?, updated_at = ?
		  WHERE id = ?`,
		rec.Title, rec.Slug, rec.Description, nullString(rec.Image), string(techs),
		nullString(rec.URL), nullString(rec.GitHubURL), rec.Status, rec.Featured, rec.Order,
		nullString(rec.UpdatedAt), p.ID(),
	)
	if err != nil {
		return nil, writeErr(fmt.Sprintf("update project %d", p.ID()), err)
	}
	if err := affectOne(res, fmt.Errorf("project %d: %w", p.ID(), domain.ErrNotFound)); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, p.ID())
}

// Delete returns domain.ErrNotFound when no row was removed.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.exec(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return affectOne(res, fmt.Errorf("project %d: %w", id, domain.ErrNotFound))
}

// SlugExists reports whether a project other than excludeID uses slug.
func (r *ProjectRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var found int
	err := r.store.queryRow(ctx, `SELECT 1 FROM projects WHERE slug = ? AND id <> ? LIMIT 1`, slug, excludeID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check project slug: %w", err)
	}
	return true, nil
}

// CountByStatus returns project counts keyed by status. Missing states count as zero.
func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[project.Status]int, error) {
	type count struct {
		status string
		n      int
	}
	rows, err := queryAll(ctx, r.store, `SELECT status, COUNT(*) FROM projects GROUP BY status`,
		func(sc scanner) (count, error) {
			var c count
			err := sc.Scan(&c.status, &c.n)
			return c, err
		})
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}

	counts := make(map[project.Status]int, len(project.Statuses()))
	for _, s := range project.Statuses() {
		counts[s] = 0
	}
	for _, c := range rows {
		counts[project.Status(c.status)] = c.n
	}
	return counts, nil
}

// ImagePaths returns the image paths referenced by any project.
func (r *ProjectRepository) ImagePaths(ctx context.Context) ([]string, error) {
	paths, err := queryAll(ctx, r.store, `SELECT image FROM projects WHERE image IS NOT NULL AND image <> ''`,
		func(sc scanner) (string, error) {
			var p string
			err := sc.Scan(&p)
			return p, err
		})
	if err != nil {
		return nil, fmt.Errorf("list project images: %w", err)
	}
	return paths, nil
}

func scanProject(sc scanner) (*project.Project, error) {
	var (
		rec                         project.Record
		id                          int64
		image, url, github, updated sql.NullString
		techs                       string
	)
	err := sc.Scan(&id, &rec.Title, &rec.Slug, &rec.Description, &image, &techs, &url, &github,
		&rec.Status, &rec.Featured, &rec.Order, &rec.CreatedAt, &updated)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(techs), &rec.Technologies); err != nil {
		return nil, fmt.Errorf("decode technologies of project %d: %w", id, err)
	}
	rec.ID = &id
	rec.Image = stringPtr(image)
	rec.URL = stringPtr(url)
	rec.GitHubURL = stringPtr(github)
	rec.UpdatedAt = stringPtr(updated)
	return project.FromRecord(rec)
}
