package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
	"github.com/jsamuelsen11/portfolio-service/internal/platform/resilience"
	"github.com/jsamuelsen11/portfolio-service/internal/ports"
)

const receivedLayout = "2006-01-02 15:04 MST"

// Compile-time check that Notifier implements ports.ContactNotifier.
var _ ports.ContactNotifier = (*Notifier)(nil)

// Notifier implements ports.ContactNotifier. Every send runs through the
// executor, so transient relay failures are retried and a failing relay
// trips the breaker instead of slowing down each contact request.
type Notifier struct {
	sender     Sender
	exec       *resilience.Executor
	from       string
	adminEmail string
	siteName   string
	logger     *slog.Logger
}

// NewNotifier creates a Notifier. A nil logger discards output.
func NewNotifier(sender Sender, exec *resilience.Executor, cfg *config.MailConfig, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Notifier{
		sender:     sender,
		exec:       exec,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
		siteName:   cfg.SiteName,
		logger:     logger,
	}
}

// SendAdminNotification emails the site owner. Replies go to the sender.
func (n *Notifier) SendAdminNotification(ctx context.Context, c *contact.Contact) bool {
	msg := Message{
		From:    n.from,
		To:      []string{n.adminEmail},
		ReplyTo: senderAddress(c),
		Subject: "New contact message - " + n.siteName,
		Text:    n.adminBody(c),
	}
	return n.send(ctx, "admin_notification", c, msg)
}

// SendConfirmation acknowledges receipt to the sender.
func (n *Notifier) SendConfirmation(ctx context.Context, c *contact.Contact) bool {
	msg := Message{
		From:    n.from,
		To:      []string{senderAddress(c)},
		Subject: "Thanks for your message - " + n.siteName,
		Text:    n.confirmationBody(c),
	}
	return n.send(ctx, "confirmation", c, msg)
}

func (n *Notifier) send(ctx context.Context, kind string, c *contact.Contact, msg Message) bool {
	err := n.exec.Do(ctx, "send", func(ctx context.Context) error {
		return n.sender.Send(ctx, msg)
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to send email",
			slog.String("operation", "SendEmail"),
			slog.String("kind", kind),
			slog.Int64("contact_id", c.ID()),
			slog.Any("error", err),
		)
		return false
	}

	n.logger.InfoContext(ctx, "email sent",
		slog.String("kind", kind),
		slog.Int64("contact_id", c.ID()),
	)
	return true
}

func (n *Notifier) adminBody(c *contact.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New message received through %s.\n\n", n.siteName)
	fmt.Fprintf(&b, "From:     %s\n", c.Name())
	fmt.Fprintf(&b, "Email:    %s\n", c.Email())
	fmt.Fprintf(&b, "Subject:  %s\n", c.Subject())
	fmt.Fprintf(&b, "Received: %s\n\n", c.CreatedAt().Format(receivedLayout))
	b.WriteString(c.Message())
	b.WriteString("\n")
	return b.String()
}

func (n *Notifier) confirmationBody(c *contact.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", c.Name())
	b.WriteString("Thank you for getting in touch through my portfolio.\n\n")
	b.WriteString("Your message has been received and I will reply as soon as possible, usually within 24 to 48 hours.\n\n")
	fmt.Fprintf(&b, "Your subject: %s\n\n", c.Subject())
	fmt.Fprintf(&b, "Best regards,\n%s\n\n", n.siteName)
	b.WriteString("This is an automatic confirmation. Please do not reply to it.\n")
	return b.String()
}

// senderAddress formats the contact as "Name <address>".
func senderAddress(c *contact.Contact) string {
	return (&mail.Address{Name: c.Name(), Address: c.Email().String()}).String()
}
