package skill

import (
	"fmt"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
)

// Level represents how well a skill is mastered.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// Levels returns every defined level from lowest to highest.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
}

// ParseLevel converts s to a Level, failing with a *domain.ValidationError
// for unknown values.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", domain.NewValidationError("level", fmt.Sprintf("invalid: %q", s))
	}
	return l, nil
}

// IsValid returns true if the level is one of the defined constants.
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}

// Percentage returns the mastery percentage drawn on skill bars.
func (l Level) Percentage() int {
	switch l {
	case LevelBeginner:
		return 25
	case LevelIntermediate:
		return 50
	case LevelAdvanced:
		return 75
	case LevelExpert:
		return 100
	default:
		return 0
	}
}

// Label returns the display label shown on the site.
func (l Level) Label() string {
	switch l {
	case LevelBeginner:
		return "Débutant"
	case LevelIntermediate:
		return "Intermédiaire"
	case LevelAdvanced:
		return "Avancé"
	case LevelExpert:
		return "Expert"
	default:
		return ""
	}
}

// Color returns the badge color used when rendering the level.
func (l Level) Color() string {
	switch l {
	case LevelBeginner:
		return "blue"
	case LevelIntermediate:
		return "yellow"
	case LevelAdvanced:
		return "green"
	case LevelExpert:
		return "purple"
	default:
		return ""
	}
}
