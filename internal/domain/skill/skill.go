// Package skill defines the Skill aggregate shown on the portfolio's skills
// section, grouped by a free-form category.
package skill

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
)

// Field length limits, counted in runes after trimming.
const (
	NameMinLength     = 2
	NameMaxLength     = 50
	CategoryMinLength = 2
	CategoryMaxLength = 50
)

// Skill is a technology or competence with a mastery level.
type Skill struct {
	id        int64
	name      string
	slug      string
	category  string
	level     Level
	icon      string
	order     int
	createdAt time.Time
	updatedAt time.Time
}

// New creates a Skill with no icon at order 0.
func New(name, category string, level Level) (*Skill, error) {
	var fields domain.Fields
	checkName(&fields, name)
	checkCategory(&fields, category)
	checkLevel(&fields, level)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	return &Skill{
		name:      strings.TrimSpace(name),
		slug:      domain.Slugify(name),
		category:  strings.TrimSpace(category),
		level:     level,
		createdAt: domain.Now(),
	}, nil
}

// ID returns the storage ID, or 0 before the skill is first saved.
func (s *Skill) ID() int64 { return s.id }

// Name returns the trimmed display name.
func (s *Skill) Name() string { return s.name }

// Slug returns the URL-safe form of the name.
func (s *Skill) Slug() string { return s.slug }

// Category returns the group the skill is listed under.
func (s *Skill) Category() string { return s.category }

// Level returns the mastery level.
func (s *Skill) Level() Level { return s.level }

// Icon returns the icon identifier, or "" when none is set.
func (s *Skill) Icon() string { return s.icon }

// Order returns the display position within its category.
func (s *Skill) Order() int { return s.order }

// CreatedAt returns when the skill was created.
func (s *Skill) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns when the skill last changed.
func (s *Skill) UpdatedAt() time.Time { return s.updatedAt }

// UpdateName replaces the name and re-derives the slug.
func (s *Skill) UpdateName(name string) error {
	var fields domain.Fields
	checkName(&fields, name)
	if err := fields.Err(); err != nil {
		return err
	}
	s.name = strings.TrimSpace(name)
	s.slug = domain.Slugify(name)
	s.touch()
	return nil
}

// UpdateCategory moves the skill to another category.
func (s *Skill) UpdateCategory(category string) error {
	var fields domain.Fields
	checkCategory(&fields, category)
	if err := fields.Err(); err != nil {
		return err
	}
	s.category = strings.TrimSpace(category)
	s.touch()
	return nil
}

// UpdateLevel changes the mastery level. Unknown levels are rejected.
func (s *Skill) UpdateLevel(level Level) error {
	var fields domain.Fields
	checkLevel(&fields, level)
	if err := fields.Err(); err != nil {
		return err
	}
	s.level = level
	s.touch()
	return nil
}

// SetIcon sets the icon identifier. A blank icon clears it.
func (s *Skill) SetIcon(icon string) {
	s.icon = strings.TrimSpace(icon)
	s.touch()
}

// Reorder sets the display position. Negative positions are rejected.
func (s *Skill) Reorder(order int) error {
	if order < 0 {
		return domain.NewValidationError("order", domain.MsgMustBeNonNegative)
	}
	s.order = order
	s.touch()
	return nil
}

func (s *Skill) touch() {
	s.updatedAt = domain.Now()
}

func checkName(fields *domain.Fields, name string) {
	if msg := domain.CheckLength(name, NameMinLength, NameMaxLength); msg != "" {
		fields.Add("name", msg)
	}
}

func checkCategory(fields *domain.Fields, category string) {
	if msg := domain.CheckLength(category, CategoryMinLength, CategoryMaxLength); msg != "" {
		fields.Add("category", msg)
	}
}

func checkLevel(fields *domain.Fields, level Level) {
	if !level.IsValid() {
		fields.Add("level", fmt.Sprintf("invalid: %q", level))
	}
}
