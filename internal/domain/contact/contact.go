// Package contact defines the Contact aggregate: a message sent through the
// public contact form.
package contact

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
)

// Field length limits, counted in runes after trimming.
const (
	NameMinLength    = 2
	NameMaxLength    = 100
	SubjectMinLength = 5
	SubjectMaxLength = 200
	MessageMinLength = 20
	MessageMaxLength = 2000
)

// RecentWindow is how long after creation a message counts as recent.
const RecentWindow = 24 * time.Hour

// Contact is an inbound message. Its content is fixed at creation; only the
// read state changes afterwards.
type Contact struct {
	id        int64
	name      string
	email     valueobject.Email
	subject   string
	message   string
	readAt    time.Time
	createdAt time.Time
}

// New validates every field and returns an unread Contact.
func New(name string, email valueobject.Email, subject, message string) (*Contact, error) {
	var fields domain.Fields
	check(&fields, name, email, subject, message)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	return &Contact{
		name:      strings.TrimSpace(name),
		email:     email,
		subject:   strings.TrimSpace(subject),
		message:   strings.TrimSpace(message),
		createdAt: domain.Now(),
	}, nil
}

// ID returns the storage identifier, or 0 when not persisted.
func (c *Contact) ID() int64 { return c.id }

// Name returns the sender's name.
func (c *Contact) Name() string { return c.name }

// Email returns the sender's address.
func (c *Contact) Email() valueobject.Email { return c.email }

// Subject returns the message subject.
func (c *Contact) Subject() string { return c.subject }

// Message returns the message body.
func (c *Contact) Message() string { return c.message }

// ReadAt returns when the message was read, or the zero time.
func (c *Contact) ReadAt() time.Time { return c.readAt }

// CreatedAt returns when the message was received.
func (c *Contact) CreatedAt() time.Time { return c.createdAt }

// IsRead reports whether the message has been read.
func (c *Contact) IsRead() bool { return !c.readAt.IsZero() }

// IsRecent reports whether the message arrived within RecentWindow.
func (c *Contact) IsRecent() bool {
	return time.Since(c.createdAt) < RecentWindow
}

// MarkAsRead records the read time. Calling it on a read message keeps the
// original read time.
func (c *Contact) MarkAsRead() {
	if c.IsRead() {
		return
	}
	c.readAt = domain.Now()
}

// MarkAsUnread clears the read time.
func (c *Contact) MarkAsUnread() {
	c.readAt = time.Time{}
}

func check(fields *domain.Fields, name string, email valueobject.Email, subject, message string) {
	if msg := domain.CheckLength(name, NameMinLength, NameMaxLength); msg != "" {
		fields.Add("name", msg)
	}
	if email.IsZero() {
		fields.Add("email", domain.MsgRequired)
	}
	if msg := domain.CheckLength(subject, SubjectMinLength, SubjectMaxLength); msg != "" {
		fields.Add("subject", msg)
	}
	if msg := domain.CheckLength(message, MessageMinLength, MessageMaxLength); msg != "" {
		fields.Add("message", msg)
	}
}
