// Package project defines the Project aggregate: a portfolio entry with a
// draft, published, archived lifecycle.
package project

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
)

// Field length limits, counted in runes after trimming.
const (
	TitleMinLength       = 3
	TitleMaxLength       = 200
	DescriptionMinLength = 20
)

// reservedSlugs are path segments the public API routes under /projects
// before the {slug} pattern, so no project may take them.
var reservedSlugs = []string{"featured"}

// IsReservedSlug reports whether slug collides with a fixed /projects route.
func IsReservedSlug(slug string) bool {
	return slices.Contains(reservedSlugs, slug)
}

// Project is a portfolio entry. Fields are only reachable through methods so
// that every mutation passes validation first.
type Project struct {
	id           int64
	title        string
	slug         string
	description  string
	image        string
	technologies []string
	url          *valueobject.URL
	githubURL    *valueobject.URL
	status       Status
	featured     bool
	order        int
	createdAt    time.Time
	updatedAt    time.Time
}

// New creates a draft Project with no image, not featured, at order 0.
// All field failures are reported together in one *domain.ValidationError.
func New(title, description string, technologies []string) (*Project, error) {
	var fields domain.Fields
	checkTitle(&fields, title)
	checkDescription(&fields, description)
	checkTechnologies(&fields, technologies)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	return &Project{
		title:        strings.TrimSpace(title),
		slug:         domain.Slugify(title),
		description:  strings.TrimSpace(description),
		technologies: slices.Clone(technologies),
		status:       StatusDraft,
		createdAt:    domain.Now(),
	}, nil
}

// ID returns the storage identifier, or 0 when the project is not persisted.
func (p *Project) ID() int64 { return p.id }

// Title returns the trimmed title.
func (p *Project) Title() string { return p.title }

// Slug returns the URL identifier derived from the title.
func (p *Project) Slug() string { return p.slug }

// Description returns the trimmed description.
func (p *Project) Description() string { return p.description }

// Image returns the stored image path, or "" when none is set.
func (p *Project) Image() string { return p.image }

// HasImage reports whether an image path is set.
func (p *Project) HasImage() bool { return p.image != "" }

// Technologies returns a copy of the technology list.
func (p *Project) Technologies() []string { return slices.Clone(p.technologies) }

// URL returns the live site URL, or nil.
func (p *Project) URL() *valueobject.URL { return p.url }

// GitHubURL returns the source repository URL, or nil.
func (p *Project) GitHubURL() *valueobject.URL { return p.githubURL }

// Status returns the current lifecycle state.
func (p *Project) Status() Status { return p.status }

// IsFeatured reports whether the project is highlighted on the home page.
func (p *Project) IsFeatured() bool { return p.featured }

// Order returns the display position.
func (p *Project) Order() int { return p.order }

// CreatedAt returns the creation time.
func (p *Project) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last mutation time, or the zero time when the
// project was never changed after creation.
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }

// IsDraft reports whether the project is a draft.
func (p *Project) IsDraft() bool { return p.status == StatusDraft }

// IsPublished reports whether the project is publicly visible.
func (p *Project) IsPublished() bool { return p.status == StatusPublished }

// IsArchived reports whether the project is archived.
func (p *Project) IsArchived() bool { return p.status == StatusArchived }

// Publish makes the project public. It fails with domain.ErrInvalidState
// when no image is set.
func (p *Project) Publish() error {
	if !p.HasImage() {
		return fmt.Errorf("cannot publish project without an image: %w", domain.ErrInvalidState)
	}
	p.status = StatusPublished
	p.touch()
	return nil
}

// Archive hides the project regardless of its current state.
func (p *Project) Archive() {
	p.status = StatusArchived
	p.touch()
}

// Restore moves an archived project back to draft. Projects in any other
// state are left untouched.
func (p *Project) Restore() {
	if p.status != StatusArchived {
		return
	}
	p.status = StatusDraft
	p.touch()
}

// Feature marks the project for the home page.
func (p *Project) Feature() {
	p.featured = true
	p.touch()
}

// Unfeature removes the project from the home page.
func (p *Project) Unfeature() {
	p.featured = false
	p.touch()
}

// Reorder sets the display position.
func (p *Project) Reorder(order int) error {
	if order < 0 {
		return domain.NewValidationError("order", domain.MsgMustBeNonNegative)
	}
	p.order = order
	p.touch()
	return nil
}

// UpdateTitle replaces the title and re-derives the slug. Slug uniqueness is
// the caller's concern.
func (p *Project) UpdateTitle(title string) error {
	var fields domain.Fields
	checkTitle(&fields, title)
	if err := fields.Err(); err != nil {
		return err
	}
	p.title = strings.TrimSpace(title)
	p.slug = domain.Slugify(title)
	p.touch()
	return nil
}

// UpdateDescription replaces the description.
func (p *Project) UpdateDescription(description string) error {
	var fields domain.Fields
	checkDescription(&fields, description)
	if err := fields.Err(); err != nil {
		return err
	}
	p.description = strings.TrimSpace(description)
	p.touch()
	return nil
}

// UpdateTechnologies replaces the technology list.
func (p *Project) UpdateTechnologies(technologies []string) error {
	var fields domain.Fields
	checkTechnologies(&fields, technologies)
	if err := fields.Err(); err != nil {
		return err
	}
	p.technologies = slices.Clone(technologies)
	p.touch()
	return nil
}

// SetImage records the storage path of the project image.
func (p *Project) SetImage(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.NewValidationError("image", domain.MsgRequired)
	}
	p.image = path
	p.touch()
	return nil
}

// SetURL sets or clears (nil) the live site URL.
func (p *Project) SetURL(u *valueobject.URL) {
	p.url = u
	p.touch()
}

// SetGitHubURL sets or clears (nil) the repository URL.
func (p *Project) SetGitHubURL(u *valueobject.URL) {
	p.githubURL = u
	p.touch()
}

func (p *Project) touch() {
	p.updatedAt = domain.Now()
}

func checkTitle(fields *domain.Fields, title string) {
	if msg := domain.CheckLength(title, TitleMinLength, TitleMaxLength); msg != "" {
		fields.Add("title", msg)
	}
}

func checkDescription(fields *domain.Fields, description string) {
	if msg := domain.CheckLength(description, DescriptionMinLength, 0); msg != "" {
		fields.Add("description", msg)
	}
}

func checkTechnologies(fields *domain.Fields, technologies []string) {
	if len(technologies) == 0 {
		fields.Add("technologies", "must contain at least one technology")
		return
	}
	for i, tech := range technologies {
		if strings.TrimSpace(tech) == "" {
			fields.Add("technologies", fmt.Sprintf("entry %d must not be empty", i))
			return
		}
	}
}
