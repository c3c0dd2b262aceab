package ports

import (
	"context"

	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
)

// ProjectService defines the service port for project operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProjectService interface {
	// ListProjects returns all projects, or only those in status when it is
	// non-empty. Returns domain.ErrInvalidInput for an unknown status.
	ListProjects(ctx context.Context, status project.Status) ([]*project.Project, error)

	// ListPublishedProjects returns the publicly visible projects.
	ListPublishedProjects(ctx context.Context) ([]*project.Project, error)

	// ListFeaturedProjects returns up to limit published, featured projects.
	// A limit <= 0 uses the default of 3.
	ListFeaturedProjects(ctx context.Context, limit int) ([]*project.Project, error)

	// GetProject returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id int64) (*project.Project, error)

	// GetPublishedProjectBySlug returns domain.ErrNotFound unless a published
	// project has the slug.
	GetPublishedProjectBySlug(ctx context.Context, slug string) (*project.Project, error)

	// CreateProject creates a draft project.
	// Returns domain.ErrInvalidInput if validation fails or the title's slug
	// is already used.
	CreateProject(ctx context.Context, in CreateProjectInput) (*project.Project, error)

	// UpdateProject applies the non-nil fields of in.
	// Returns domain.ErrNotFound if the project does not exist,
	// domain.ErrInvalidInput on validation failure or slug collision, and
	// domain.ErrInvalidState when a requested status change is not allowed.
	UpdateProject(ctx context.Context, id int64, in UpdateProjectInput) (*project.Project, error)

	// PublishProject returns domain.ErrInvalidState if the project has no image.
	PublishProject(ctx context.Context, id int64) (*project.Project, error)

	ArchiveProject(ctx context.Context, id int64) (*project.Project, error)

	// RestoreProject moves an archived project back to draft; other states
	// are returned unchanged.
	RestoreProject(ctx context.Context, id int64) (*project.Project, error)

	// SetProjectImage stores upload as the project image, replacing any
	// previous one.
	SetProjectImage(ctx context.Context, id int64, upload ImageUpload) (*project.Project, error)

	// DeleteProject deletes the project and then its image.
	// Returns domain.ErrNotFound if the project does not exist.
	DeleteProject(ctx context.Context, id int64) error
}

// CreateProjectInput carries the fields accepted when creating a project.
// Blank URL and GitHubURL, or values that fail to parse, are left unset.
type CreateProjectInput struct {
	Title        string
	Description  string
	Technologies []string
	URL          string
	GitHubURL    string
	Order        int
	Featured     bool
}

// UpdateProjectInput carries a partial project update. Nil fields are left
// unchanged; an empty URL or GitHubURL clears the value.
type UpdateProjectInput struct {
	Title        *string
	Description  *string
	Technologies []string
	URL          *string
	GitHubURL    *string
	Status       *project.Status
	Featured     *bool
	Order        *int
}

// SkillService defines the service port for skill operations.
type SkillService interface {
	ListSkills(ctx context.Context) ([]*skill.Skill, error)

	// ListSkillsByCategory returns skills grouped by category. Groups are
	// sorted by category name and skills by display order.
	ListSkillsByCategory(ctx context.Context) ([]SkillGroup, error)

	// GetSkill returns domain.ErrNotFound if the skill does not exist.
	GetSkill(ctx context.Context, id int64) (*skill.Skill, error)

	// CreateSkill returns domain.ErrInvalidInput if validation fails or the
	// name's slug is already used.
	CreateSkill(ctx context.Context, in CreateSkillInput) (*skill.Skill, error)

	// UpdateSkill applies the non-nil fields of in.
	UpdateSkill(ctx context.Context, id int64, in UpdateSkillInput) (*skill.Skill, error)

	DeleteSkill(ctx context.Context, id int64) error
}

// SkillGroup is one category of skills.
type SkillGroup struct {
	Category string
	Skills   []*skill.Skill
}

// CreateSkillInput carries the fields accepted when creating a skill.
type CreateSkillInput struct {
	Name     string
	Category string
	Level    skill.Level
	Icon     string
	Order    int
}

// UpdateSkillInput carries a partial skill update.
type UpdateSkillInput struct {
	Name     *string
	Category *string
	Level    *skill.Level
	Icon     *string
	Order    *int
}

// ContactService defines the service port for contact messages.
type ContactService interface {
	// SendMessage stores a contact form submission and notifies the site
	// owner and the sender. Notification failures do not fail the call.
	// Returns domain.ErrInvalidInput if the submission is invalid.
	SendMessage(ctx context.Context, in ContactMessageInput) (*contact.Contact, error)

	ListMessages(ctx context.Context) ([]*contact.Contact, error)
	ListUnreadMessages(ctx context.Context) ([]*contact.Contact, error)

	// ListRecentMessages returns messages received in the last 24 hours.
	ListRecentMessages(ctx context.Context) ([]*contact.Contact, error)

	CountUnread(ctx context.Context) (int, error)

	// GetMessage returns domain.ErrNotFound if the message does not exist.
	GetMessage(ctx context.Context, id int64) (*contact.Contact, error)

	MarkAsRead(ctx context.Context, id int64) (*contact.Contact, error)
	MarkAsUnread(ctx context.Context, id int64) (*contact.Contact, error)
	DeleteMessage(ctx context.Context, id int64) error
}

// ContactMessageInput is a contact form submission.
type ContactMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// DashboardService defines the service port for the admin overview.
type DashboardService interface {
	Overview(ctx context.Context) (*Overview, error)
}

// Overview summarizes site content for the admin dashboard.
type Overview struct {
	TotalProjects     int
	PublishedProjects int
	DraftProjects     int
	ArchivedProjects  int
	UnreadMessages    int
	RecentProjects    []*project.Project
	UnreadInbox       []*contact.Contact
}
