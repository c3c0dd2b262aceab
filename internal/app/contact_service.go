package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/domain/valueobject"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

var _ ports.ContactService = (*ContactService)(nil)

// ContactService implements ports.ContactService.
//
// Mail for a stored submission is sent in the background so a slow relay
// never holds up the response. Wait blocks until those sends finish.
type ContactService struct {
	repo          ports.ContactRepository
	notifier      ports.ContactNotifier
	notifyTimeout time.Duration
	logger        *slog.Logger
	now           func() time.Time
	pending       sync.WaitGroup
}

// NewContactService creates a ContactService. notifyTimeout bounds the mail
// sent for one submission; a value of 0 or less leaves it unbounded.
func NewContactService(
	repo ports.ContactRepository,
	notifier ports.ContactNotifier,
	notifyTimeout time.Duration,
	logger *slog.Logger,
) *ContactService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContactService{
		repo:          repo,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		logger:        logger,
		now:           domain.Now,
	}
}

// SendMessage validates and stores a submission, then queues the admin
// notification and the sender confirmation. The result depends only on the
// store: mail runs detached from ctx and its failures are logged.
func (s *ContactService) SendMessage(ctx context.Context, in ports.ContactMessageInput) (*contact.Contact, error) {
	s.logger.InfoContext(ctx, "receiving contact message", slog.String("subject", in.Subject))

	c, err := newContact(in)
	if err != nil {
		logFailure(ctx, s.logger, "rejected contact message", "SendMessage", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		logFailure(ctx, s.logger, "failed to store contact message", "SendMessage", err)
		return nil, err
	}

	s.notify(ctx, created)
	return created, nil
}

// notify sends both mails on a goroutine tracked by Wait. The context keeps
// the request's values (logger, trace) but not its cancellation.
func (s *ContactService) notify(ctx context.Context, c *contact.Contact) {
	mailCtx := context.WithoutCancel(ctx)
	cancel := context.CancelFunc(func() {})
	if s.notifyTimeout > 0 {
		mailCtx, cancel = context.WithTimeout(mailCtx, s.notifyTimeout)
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer cancel()

		if !s.notifier.SendAdminNotification(mailCtx, c) {
			s.logger.WarnContext(mailCtx, "admin notification not sent",
				slog.String("operation", "SendMessage"),
				slog.Int64("id", c.ID()),
			)
		}
		if !s.notifier.SendConfirmation(mailCtx, c) {
			s.logger.WarnContext(mailCtx, "confirmation not sent",
				slog.String("operation", "SendMessage"),
				slog.Int64("id", c.ID()),
			)
		}
	}()
}

// Wait blocks until every queued notification has finished or ctx ends,
// whichever comes first. It returns ctx's error in the latter case.
func (s *ContactService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newContact builds a Contact, reporting email and field failures together.
func newContact(in ports.ContactMessageInput) (*contact.Contact, error) {
	var fields domain.Fields

	email, err := valueobject.ParseEmail(in.Email)
	mergeFields(&fields, err)

	c, err := contact.New(in.Name, email, in.Subject, in.Message)
	mergeFields(&fields, err)

	if err := fields.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func mergeFields(fields *domain.Fields, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			fields.Add(field, msg)
		}
	}
}

// ListMessages returns every message, newest first.
func (s *ContactService) ListMessages(ctx context.Context) ([]*contact.Contact, error) {
	s.logger.InfoContext(ctx, "listing messages")

	msgs, err := s.repo.FindAll(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list messages", "ListMessages", err)
		return nil, err
	}
	return msgs, nil
}

// ListUnreadMessages returns the messages not yet read, newest first.
func (s *ContactService) ListUnreadMessages(ctx context.Context) ([]*contact.Contact, error) {
	s.logger.InfoContext(ctx, "listing unread messages")

	msgs, err := s.repo.FindUnread(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list unread messages", "ListUnreadMessages", err)
		return nil, err
	}
	return msgs, nil
}

// ListRecentMessages returns the messages received in the recent window.
func (s *ContactService) ListRecentMessages(ctx context.Context) ([]*contact.Contact, error) {
	since := s.now().Add(-contact.RecentWindow)
	s.logger.InfoContext(ctx, "listing recent messages", slog.Time("since", since))

	msgs, err := s.repo.FindRecent(ctx, since)
	if err != nil {
		logFailure(ctx, s.logger, "failed to list recent messages", "ListRecentMessages", err)
		return nil, err
	}
	return msgs, nil
}

// CountUnread returns how many messages are unread.
func (s *ContactService) CountUnread(ctx context.Context) (int, error) {
	n, err := s.repo.CountUnread(ctx)
	if err != nil {
		logFailure(ctx, s.logger, "failed to count unread messages", "CountUnread", err)
		return 0, err
	}
	return n, nil
}

// GetMessage returns one message by ID.
func (s *ContactService) GetMessage(ctx context.Context, id int64) (*contact.Contact, error) {
	s.logger.InfoContext(ctx, "fetching message", slog.Int64("id", id))
	return s.load(ctx, "GetMessage", id)
}

// MarkAsRead keeps the original read time when the message is already read.
func (s *ContactService) MarkAsRead(ctx context.Context, id int64) (*contact.Contact, error) {
	s.logger.InfoContext(ctx, "marking message as read", slog.Int64("id", id))

	c, err := s.load(ctx, "MarkAsRead", id)
	if err != nil {
		return nil, err
	}
	if c.IsRead() {
		return c, nil
	}
	c.MarkAsRead()
	return s.save(ctx, "MarkAsRead", c)
}

// MarkAsUnread clears the read timestamp of a message.
func (s *ContactService) MarkAsUnread(ctx context.Context, id int64) (*contact.Contact, error) {
	s.logger.InfoContext(ctx, "marking message as unread", slog.Int64("id", id))

	c, err := s.load(ctx, "MarkAsUnread", id)
	if err != nil {
		return nil, err
	}
	if !c.IsRead() {
		return c, nil
	}
	c.MarkAsUnread()
	return s.save(ctx, "MarkAsUnread", c)
}

// DeleteMessage removes a message.
func (s *ContactService) DeleteMessage(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting message", slog.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		logFailure(ctx, s.logger, "failed to delete message", "DeleteMessage", err, slog.Int64("id", id))
		return err
	}
	return nil
}

func (s *ContactService) load(ctx context.Context, operation string, id int64) (*contact.Contact, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "failed to fetch message", operation, err, slog.Int64("id", id))
		return nil, err
	}
	return c, nil
}

func (s *ContactService) save(ctx context.Context, operation string, c *contact.Contact) (*contact.Contact, error) {
	saved, err := s.repo.Update(ctx, c)
	if err != nil {
		logFailure(ctx, s.logger, "failed to save message", operation, err, slog.Int64("id", c.ID()))
		return nil, err
	}
	return saved, nil
}
