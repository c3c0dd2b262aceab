package project

import (
	"fmt"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
)

// Status represents the publication state of a Project.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Statuses returns every defined status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusDraft, StatusPublished, StatusArchived}
}

// ParseStatus converts s to a Status, failing with a *domain.ValidationError
// for unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", domain.NewValidationError("status", fmt.Sprintf("invalid: %q", s))
	}
	return st, nil
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Label returns the display label shown on the site.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Brouillon"
	case StatusPublished:
		return "Publié"
	case StatusArchived:
		return "Archivé"
	default:
		return ""
	}
}

// Color returns the badge color used when rendering the status.
func (s Status) Color() string {
	switch s {
	case StatusDraft:
		return "gray"
	case StatusPublished:
		return "green"
	case StatusArchived:
		return "red"
	default:
		return ""
	}
}
