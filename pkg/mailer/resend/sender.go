package resend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

const (
	providerName = "resend"

	// The SDK reports API failures as errors.New(errorPrefix + message).
	errorPrefix  = "[ERROR]: "
	unknownError = "Unknown Error"
)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
}

// New creates a new Resend sender.
// The logger receives round-trip logs when cfg.Debug is set; nil disables them.
func New(cfg Config, logger *slog.Logger) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend: %w", mailer.ErrMissingCredentials)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	httpClient := &http.Client{
		Transport: &recordingTransport{
			next:   http.DefaultTransport,
			logger: logger,
			debug:  cfg.Debug,
		},
	}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)

	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base url: %w", err)
		}
		client.BaseURL = base
	}

	return &Sender{client: client}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	}

	ctx, status := withStatusRecorder(ctx)
	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		pe := &mailer.ProviderError{
			Provider: providerName,
			Err:      err,
		}
		// Transport failures never produced a response.
		if *status >= http.StatusBadRequest {
			pe.StatusCode = *status
			pe.Message = apiMessage(err)
		}
		return nil, pe
	}

	return &mailer.Receipt{
		ID:      sent.Id,
		Message: "Queued. ID: " + sent.Id,
	}, nil
}

// apiMessage returns the API's own error message. Rate-limit failures are
// typed; other API failures are plain errors prefixed by the SDK.
func apiMessage(err error) string {
	var rateLimit *resend.RateLimitError
	if errors.As(err, &rateLimit) {
		return rateLimit.Message
	}

	msg, ok := strings.CutPrefix(err.Error(), errorPrefix)
	if !ok || msg == unknownError {
		return ""
	}
	return msg
}
