package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
)

// ProjectRepository persists Project aggregates.
// Create and Update return the entity as read back from storage.
type ProjectRepository interface {
	// FindAll returns every project ordered by display order, newest first
	// within the same order.
	FindAll(ctx context.Context) ([]*project.Project, error)

	// FindByID returns domain.ErrNotFound if no project has the id.
	FindByID(ctx context.Context, id int64) (*project.Project, error)

	// FindBySlug returns domain.ErrNotFound if no project has the slug.
	FindBySlug(ctx context.Context, slug string) (*project.Project, error)

	FindByStatus(ctx context.Context, status project.Status) ([]*project.Project, error)

	// FindPublished returns published projects in display order.
	FindPublished(ctx context.Context) ([]*project.Project, error)

	// FindFeatured returns at most limit projects that are both published
	// and featured.
	FindFeatured(ctx context.Context, limit int) ([]*project.Project, error)

	// Create returns domain.ErrConflict when the slug is already taken.
	Create(ctx context.Context, p *project.Project) (*project.Project, error)

	// Update returns domain.ErrNotFound if the project no longer exists and
	// domain.ErrConflict when the new slug is already taken.
	Update(ctx context.Context, p *project.Project) (*project.Project, error)

	// Delete returns domain.ErrNotFound if no project has the id.
	Delete(ctx context.Context, id int64) error

	// SlugExists reports whether another project uses slug. An excludeID of 0
	// excludes nothing.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	// CountByStatus returns the number of projects per status. Statuses with
	// no projects are present with a zero count.
	CountByStatus(ctx context.Context) (map[project.Status]int, error)

	// ImagePaths returns every image path referenced by a project.
	ImagePaths(ctx context.Context) ([]string, error)
}

// SkillRepository persists Skill aggregates.
type SkillRepository interface {
	// FindAll returns every skill ordered by category, then display order.
	FindAll(ctx context.Context) ([]*skill.Skill, error)

	// FindByID returns domain.ErrNotFound if no skill has the id.
	FindByID(ctx context.Context, id int64) (*skill.Skill, error)

	// FindByCategory returns the skills of one category in display order.
	FindByCategory(ctx context.Context, category string) ([]*skill.Skill, error)

	// Categories returns the distinct categories, sorted.
	Categories(ctx context.Context) ([]string, error)

	Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error)
	Update(ctx context.Context, s *skill.Skill) (*skill.Skill, error)
	Delete(ctx context.Context, id int64) error

	// SlugExists reports whether another skill uses slug. An excludeID of 0
	// excludes nothing.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// ContactRepository persists Contact aggregates.
type ContactRepository interface {
	// FindAll returns every message, newest first.
	FindAll(ctx context.Context) ([]*contact.Contact, error)

	// FindByID returns domain.ErrNotFound if no message has the id.
	FindByID(ctx context.Context, id int64) (*contact.Contact, error)

	// FindUnread returns unread messages, newest first.
	FindUnread(ctx context.Context) ([]*contact.Contact, error)

	// FindRecent returns messages created at or after since, newest first.
	FindRecent(ctx context.Context, since time.Time) ([]*contact.Contact, error)

	Create(ctx context.Context, c *contact.Contact) (*contact.Contact, error)
	Update(ctx context.Context, c *contact.Contact) (*contact.Contact, error)
	Delete(ctx context.Context, id int64) error

	CountUnread(ctx context.Context) (int, error)
}
