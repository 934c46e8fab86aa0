// Package logsender provides a mailer.Sender that logs emails instead of sending them.
// Useful for development and testing.
package logsender

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

// ConfirmationMessage mirrors the confirmation text of the default provider.
const ConfirmationMessage = "Queued. Thank you."

// Sender logs every email at info level and always succeeds.
type Sender struct {
	logger *slog.Logger
}

// New creates a new log-based email sender.
func New(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	id := uuid.NewString()

	s.logger.InfoContext(ctx, "email (dev mode, not actually sent)",
		slog.String("message_id", id),
		slog.String("from", email.From),
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.Int("html_bytes", len(email.HTML)),
	)

	return &mailer.Receipt{ID: id, Message: ConfirmationMessage}, nil
}

// Ping always succeeds.
func (s *Sender) Ping(context.Context) error {
	return nil
}
