package project

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
)

// Record is the flat representation of a Project exchanged with storage and
// response builders. Timestamps use the YYYY-MM-DD HH:MM:SS layout and
// nullable fields are nil.
type Record struct {
	ID           *int64   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Image        *string  `json:"image"`
	Technologies []string `json:"technologies"`
	URL          *string  `json:"url"`
	GitHubURL    *string  `json:"github_url"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    *string  `json:"updated_at"`
}

// ToRecord flattens the project.
func (p *Project) ToRecord() Record {
	r := Record{
		Title:        p.title,
		Slug:         p.slug,
		Description:  p.description,
		Technologies: slices.Clone(p.technologies),
		URL:          valueobject.StringOrNil(p.url),
		GitHubURL:    valueobject.StringOrNil(p.githubURL),
		Status:       p.status.String(),
		Featured:     p.featured,
		Order:        p.order,
		CreatedAt:    domain.FormatTime(p.createdAt),
		UpdatedAt:    domain.FormatOptionalTime(p.updatedAt),
	}
	if p.id != 0 {
		id := p.id
		r.ID = &id
	}
	if p.image != "" {
		img := p.image
		r.Image = &img
	}
	return r
}

// FromRecord rebuilds a Project from its flat form, applying the same rules
// as New. The stored slug is kept as is; an empty status means draft and an
// empty created_at means now.
func FromRecord(r Record) (*Project, error) {
	var fields domain.Fields
	checkTitle(&fields, r.Title)
	checkDescription(&fields, r.Description)
	checkTechnologies(&fields, r.Technologies)
	if r.Order < 0 {
		fields.Add("order", domain.MsgMustBeNonNegative)
	}

	status := StatusDraft
	if r.Status != "" {
		status = Status(r.Status)
		if !status.IsValid() {
			fields.Add("status", "invalid: "+r.Status)
		}
	}

	var site, repo *valueobject.URL
	if r.URL != nil {
		u, err := valueobject.ParseURL(*r.URL)
		if err != nil {
			fields.Add("url", "must be a valid http(s) URL")
		}
		site = &u
	}
	if r.GitHubURL != nil {
		u, err := valueobject.ParseURL(*r.GitHubURL)
		if err != nil {
			fields.Add("github_url", "must be a valid http(s) URL")
		}
		repo = &u
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	createdAt := domain.Now()
	if r.CreatedAt != "" {
		t, err := domain.ParseTime("created_at", r.CreatedAt)
		if err != nil {
			return nil, err
		}
		createdAt = t
	}
	updatedAt, err := domain.ParseOptionalTime("updated_at", r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p := &Project{
		title:        strings.TrimSpace(r.Title),
		slug:         r.Slug,
		description:  strings.TrimSpace(r.Description),
		technologies: slices.Clone(r.Technologies),
		url:          site,
		githubURL:    repo,
		status:       status,
		featured:     r.Featured,
		order:        r.Order,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	if r.ID != nil {
		p.id = *r.ID
	}
	if r.Image != nil {
		p.image = strings.TrimSpace(*r.Image)
	}
	return p, nil
}
