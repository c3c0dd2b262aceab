package dto

import (
	"errors"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/project"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/skill"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

// Requests only reject malformed shapes. Length minimums and the rest of the
// business rules belong to the domain constructors.

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
	msgInvalidURL   = "must be a valid URL"
)

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	GitHubURL    string   `json:"github_url"`
	Order        int      `json:"order"`
	Featured     bool     `json:"featured"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error(msgRequired),
			maxTrimmedLength(project.TitleMaxLength),
		),
		validation.Field(&r.Description, validation.Required.Error(msgRequired)),
		validation.Field(&r.Technologies, validation.Required.Error(msgRequired)),
		validation.Field(&r.URL, is.URL.Error(msgInvalidURL)),
		validation.Field(&r.GitHubURL, is.URL.Error(msgInvalidURL)),
		validation.Field(&r.Order, validation.Min(0)),
	))
}

// ToInput converts the request to the service input.
func (r *CreateProjectRequest) ToInput() ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		URL:          r.URL,
		GitHubURL:    r.GitHubURL,
		Order:        r.Order,
		Featured:     r.Featured,
	}
}

// UpdateProjectRequest represents the JSON body for updating an existing project.
// All fields are optional; nil means "do not change this field". An empty
// url or github_url clears the link.
type UpdateProjectRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          *string  `json:"url,omitempty"`
	GitHubURL    *string  `json:"github_url,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
	Order        *int     `json:"order,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateProjectRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error(msgMustNotEmpty),
			maxTrimmedLength(project.TitleMaxLength),
		),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error(msgMustNotEmpty)),
		validation.Field(&r.URL, is.URL.Error(msgInvalidURL)),
		validation.Field(&r.GitHubURL, is.URL.Error(msgInvalidURL)),
		validation.Field(&r.Status, validation.In(statusValues()...)),
		validation.Field(&r.Order, validation.Min(0)),
	))
}

// ToInput converts the request to the service input.
func (r *UpdateProjectRequest) ToInput() ports.UpdateProjectInput {
	in := ports.UpdateProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		URL:          r.URL,
		GitHubURL:    r.GitHubURL,
		Featured:     r.Featured,
		Order:        r.Order,
	}
	if r.Status != nil {
		st := project.Status(*r.Status)
		in.Status = &st
	}
	return in
}

// CreateSkillRequest represents the JSON body for creating a new skill.
type CreateSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}

// Validate checks that required fields are present and the level is known.
func (r *CreateSkillRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error(msgRequired),
			maxTrimmedLength(skill.NameMaxLength),
		),
		validation.Field(&r.Category,
			validation.Required.Error(msgRequired),
			maxTrimmedLength(skill.CategoryMaxLength),
		),
		validation.Field(&r.Level,
			validation.Required.Error(msgRequired),
			validation.In(levelValues()...),
		),
		validation.Field(&r.Order, validation.Min(0)),
	))
}

// ToInput converts the request to the service input.
func (r *CreateSkillRequest) ToInput() ports.CreateSkillInput {
	return ports.CreateSkillInput{
		Name:     r.Name,
		Category: r.Category,
		Level:    skill.Level(r.Level),
		Icon:     r.Icon,
		Order:    r.Order,
	}
}

// UpdateSkillRequest represents the JSON body for a partial skill update.
type UpdateSkillRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Level    *string `json:"level,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateSkillRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error(msgMustNotEmpty),
			maxTrimmedLength(skill.NameMaxLength),
		),
		validation.Field(&r.Category,
			validation.NilOrNotEmpty.Error(msgMustNotEmpty),
			maxTrimmedLength(skill.CategoryMaxLength),
		),
		validation.Field(&r.Level, validation.In(levelValues()...)),
		validation.Field(&r.Order, validation.Min(0)),
	))
}

// ToInput converts the request to the service input.
func (r *UpdateSkillRequest) ToInput() ports.UpdateSkillInput {
	in := ports.UpdateSkillInput{
		Name:     r.Name,
		Category: r.Category,
		Icon:     r.Icon,
		Order:    r.Order,
	}
	if r.Level != nil {
		l := skill.Level(*r.Level)
		in.Level = &l
	}
	return in
}

// ContactRequest represents a public contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks the form fields before the submission reaches the domain.
func (r *ContactRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error(msgRequired),
			maxTrimmedLength(contact.NameMaxLength),
		),
		validation.Field(&r.Email,
			validation.Required.Error(msgRequired),
			emailAddress,
		),
		validation.Field(&r.Subject,
			validation.Required.Error(msgRequired),
			maxTrimmedLength(contact.SubjectMaxLength),
		),
		validation.Field(&r.Message,
			validation.Required.Error(msgRequired),
			maxTrimmedLength(contact.MessageMaxLength),
		),
	))
}

// ToInput converts the request to the service input.
func (r *ContactRequest) ToInput() ports.ContactMessageInput {
	return ports.ContactMessageInput{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// maxTrimmedLength bounds the rune length of a string or *string after
// surrounding whitespace is dropped, matching how the domain stores it.
func maxTrimmedLength(n int) validation.Rule {
	return validation.By(func(value any) error {
		v, isNil := validation.Indirect(value)
		s, ok := v.(string)
		if isNil || !ok {
			return nil
		}
		if utf8.RuneCountInString(strings.TrimSpace(s)) > n {
			return validation.ErrLengthTooLong.SetParams(map[string]any{"max": n})
		}
		return nil
	})
}

// emailAddress applies the same address rules as valueobject.ParseEmail so a
// request that passes here is not rejected by the domain.
var emailAddress = validation.By(func(value any) error {
	v, _ := validation.Indirect(value)
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := valueobject.ParseEmail(s); err != nil {
		return validation.NewError("validation_is_email", "must be a valid email address")
	}
	return nil
})

// toValidationError converts ozzo field errors, keyed by JSON name, into a
// *domain.ValidationError. Other errors are returned unchanged.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	fields := make(map[string]string, len(errs))
	for field, ferr := range errs {
		fields[field] = ferr.Error()
	}
	return &domain.ValidationError{Fields: fields}
}

func statusValues() []any {
	statuses := project.Statuses()
	values := make([]any, len(statuses))
	for i, s := range statuses {
		values[i] = s.String()
	}
	return values
}

func levelValues() []any {
	levels := skill.Levels()
	values := make([]any, len(levels))
	for i, l := range levels {
		values[i] = l.String()
	}
	return values
}
