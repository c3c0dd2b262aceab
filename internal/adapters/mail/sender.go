// Package mail sends the contact form emails through a pluggable Sender.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/portfolio-service/internal/platform/config"
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

// Sender delivers a Message. Implementations return errors wrapped with
// resilience.Permanent when a retry cannot succeed.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender returns the Sender selected by cfg.Driver.
func NewSender(ctx context.Context, cfg *config.MailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Driver {
	case "log":
		return NewLogSender(logger), nil
	case "smtp":
		return NewSMTPSender(&cfg.SMTP), nil
	case "ses":
		return NewSESSender(ctx, &cfg.SES)
	default:
		return nil, fmt.Errorf("unsupported mail driver %q", cfg.Driver)
	}
}

// LogSender writes messages to the log instead of delivering them.
// Used for local development.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender. A nil logger discards output.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogSender{logger: logger}
}

// Send logs the envelope and body at INFO level.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "email not delivered (log driver)",
		slog.String("from", msg.From),
		slog.Any("to", msg.To),
		slog.String("reply_to", msg.ReplyTo),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Text),
	)
	return nil
}
