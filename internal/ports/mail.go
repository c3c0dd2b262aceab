package ports

import (
	"context"

	"github.com/jsamuelsen11/portfolio-service/internal/domain/contact"
)

// ContactNotifier sends the emails that follow a contact form submission.
// Each method reports success; failures are logged by the implementation
// and never surface as errors.
type ContactNotifier interface {
	// SendAdminNotification tells the site owner about a new message.
	SendAdminNotification(ctx context.Context, c *contact.Contact) bool

	// SendConfirmation acknowledges receipt to the sender.
	SendConfirmation(ctx context.Context, c *contact.Contact) bool
}
