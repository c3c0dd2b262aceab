package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

const contactColumns = `id, name, email, subject, message, read_at, created_at`

const newestFirst = ` ORDER BY created_at DESC, id DESC`

var _ ports.ContactRepository = (*ContactRepository)(nil)

// ContactRepository implements ports.ContactRepository.
type ContactRepository struct {
	store *Store
}

// FindAll returns every message, newest first.
func (r *ContactRepository) FindAll(ctx context.Context) ([]*contact.Contact, error) {
	msgs, err := queryAll(ctx, r.store, `SELECT `+contactColumns+` FROM contacts`+newestFirst, scanContact)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// FindByID returns domain.ErrNotFound when no message has id.
func (r *ContactRepository) FindByID(ctx context.Context, id int64) (*contact.Contact, error) {
	c, err := scanContact(r.store.queryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("message %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get message %d: %w", id, err)
	}
	return c, nil
}

// FindUnread returns messages with no read timestamp, newest first.
func (r *ContactRepository) FindUnread(ctx context.Context) ([]*contact.Contact, error) {
	msgs, err := queryAll(ctx, r.store,
		`SELECT `+contactColumns+` FROM contacts WHERE read_at IS NULL`+newestFirst, scanContact)
	if err != nil {
		return nil, fmt.Errorf("list unread messages: %w", err)
	}
	return msgs, nil
}

// FindRecent relies on the fixed-width timestamp layout sorting the same
// way as the instants it encodes.
func (r *ContactRepository) FindRecent(ctx context.Context, since time.Time) ([]*contact.Contact, error) {
	msgs, err := queryAll(ctx, r.store,
		`SELECT `+contactColumns+` FROM contacts WHERE created_at >= ?`+newestFirst,
		scanContact, domain.FormatTime(since))
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}
	return msgs, nil
}

// Create inserts c and returns it with its ID and timestamps.
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	rec := c.ToRecord()
	var id int64
	err := r.store.queryRow(ctx,
		`INSERT INTO contacts (name, email, subject, message, read_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		rec.Name, rec.Email, rec.Subject, rec.Message, nullString(rec.ReadAt), rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return nil, writeErr("create message", err)
	}
	return r.FindByID(ctx, id)
}

// Update persists the read state, the only mutable part of a message.
func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	rec := c.ToRecord()
	res, err := r.store.exec(ctx, `UPDATE contacts SET read_at = ? WHERE id = ?`, nullString(rec.ReadAt), c.ID())
	if err != nil {
		return nil, fmt.Errorf("update message %d: %w", c.ID(), err)
	}
	if err := affectOne(res, fmt.Errorf("message %d: %w", c.ID(), domain.ErrNotFound)); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, c.ID())
}

// Delete returns domain.ErrNotFound when no row was removed.
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.exec(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete message %d: %w", id, err)
	}
	return affectOne(res, fmt.Errorf("message %d: %w", id, domain.ErrNotFound))
}

// CountUnread counts messages with no read timestamp.
func (r *ContactRepository) CountUnread(ctx context.Context) (int, error) {
	var n int
	if err := r.store.queryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE read_at IS NULL`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return n, nil
}

func scanContact(sc scanner) (*contact.Contact, error) {
	var (
		rec    contact.Record
		id     int64
		readAt sql.NullString
	)
	err := sc.Scan(&id, &rec.Name, &rec.Email, &rec.Subject, &rec.Message, &readAt, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.ID = &id
	rec.ReadAt = stringPtr(readAt)
	return contact.FromRecord(rec)
}
