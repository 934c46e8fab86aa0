// Package mailgun implements mailer.Sender on top of the Mailgun HTTP API.
package mailgun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

const providerName = "mailgun"

// Sender implements mailer.Sender using the Mailgun API.
type Sender struct {
	mg *mailgun.MailgunImpl
}

// New creates a new Mailgun sender for the configured sending domain.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" || cfg.Domain == "" {
		return nil, fmt.Errorf("mailgun: %w", mailer.ErrMissingCredentials)
	}

	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		mg.SetAPIBase(cfg.APIBase)
	}

	// The SDK only exposes request dumping as a package-level switch.
	if cfg.Debug {
		mailgun.Debug = true
	}

	return &Sender{mg: mg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	msg := s.mg.NewMessage(email.From, email.Subject, "", email.To)
	msg.SetHtml(email.HTML)

	message, id, err := s.mg.Send(ctx, msg)
	if err != nil {
		return nil, toProviderError(err)
	}

	return &mailer.Receipt{
		ID:      id,
		Message: message,
	}, nil
}

// toProviderError lifts Mailgun's HTTP failures into a ProviderError.
// SDK-side rejections (invalid message, transport errors) carry no status.
func toProviderError(err error) error {
	pe := &mailer.ProviderError{
		Provider: providerName,
		Err:      err,
	}

	var ure *mailgun.UnexpectedResponseError
	if errors.As(err, &ure) {
		pe.StatusCode = ure.Actual
		pe.Message = responseMessage(ure.Data)
	}

	return pe
}

// responseMessage extracts the "message" field of a Mailgun error body,
// falling back to the raw body text.
func responseMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(data))
}
