package skill

import (
	"strings"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
)

// Record is the flat representation of a Skill.
type Record struct {
	ID        *int64  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Category  string  `json:"category"`
	Level     string  `json:"level"`
	Icon      *string `json:"icon"`
	Order     int     `json:"order"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// ToRecord flattens the skill.
func (s *Skill) ToRecord() Record {
	r := Record{
		Name:      s.name,
		Slug:      s.slug,
		Category:  s.category,
		Level:     s.level.String(),
		Order:     s.order,
		CreatedAt: domain.FormatTime(s.createdAt),
		UpdatedAt: domain.FormatOptionalTime(s.updatedAt),
	}
	if s.id != 0 {
		id := s.id
		r.ID = &id
	}
	if s.icon != "" {
		icon := s.icon
		r.Icon = &icon
	}
	return r
}

// FromRecord rebuilds a Skill from its flat form. The stored slug is kept;
// an empty level means intermediate and an empty created_at means now.
func FromRecord(r Record) (*Skill, error) {
	level := LevelIntermediate
	if r.Level != "" {
		level = Level(r.Level)
	}

	var fields domain.Fields
	checkName(&fields, r.Name)
	checkCategory(&fields, r.Category)
	checkLevel(&fields, level)
	if r.Order < 0 {
		fields.Add("order", domain.MsgMustBeNonNegative)
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

	s := &Skill{
		name:      strings.TrimSpace(r.Name),
		slug:      r.Slug,
		category:  strings.TrimSpace(r.Category),
		level:     level,
		order:     r.Order,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	if r.ID != nil {
		s.id = *r.ID
	}
	if r.Icon != nil {
		s.icon = strings.TrimSpace(*r.Icon)
	}
	return s, nil
}
