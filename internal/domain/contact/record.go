package contact

import (
	"strings"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
)

// Record is the flat representation of a Contact.
type Record struct {
	ID        *int64  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	ReadAt    *string `json:"read_at"`
	CreatedAt string  `json:"created_at"`
}

// ToRecord flattens the contact.
func (c *Contact) ToRecord() Record {
	r := Record{
		Name:      c.name,
		Email:     c.email.String(),
		Subject:   c.subject,
		Message:   c.message,
		ReadAt:    domain.FormatOptionalTime(c.readAt),
		CreatedAt: domain.FormatTime(c.createdAt),
	}
	if c.id != 0 {
		id := c.id
		r.ID = &id
	}
	return r
}

// FromRecord rebuilds a Contact from its flat form, revalidating every field.
func FromRecord(r Record) (*Contact, error) {
	email, err := valueobject.ParseEmail(r.Email)
	if err != nil {
		return nil, err
	}

	var fields domain.Fields
	check(&fields, r.Name, email, r.Subject, r.Message)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	createdAt := domain.Now()
	if r.CreatedAt != "" {
		createdAt, err = domain.ParseTime("created_at", r.CreatedAt)
		if err != nil {
			return nil, err
		}
	}
	readAt, err := domain.ParseOptionalTime("read_at", r.ReadAt)
	if err != nil {
		return nil, err
	}

	c := &Contact{
		name:      strings.TrimSpace(r.Name),
		email:     email,
		subject:   strings.TrimSpace(r.Subject),
		message:   strings.TrimSpace(r.Message),
		readAt:    readAt,
		createdAt: createdAt,
	}
	if r.ID != nil {
		c.id = *r.ID
	}
	return c, nil
}
