// Package relay implements the POST /email endpoint that forwards a message to
// the configured email provider and translates the provider's answer.
package relay

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/mailrelay/internal"
	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

// Handler relays email-send requests to a mailer.Sender.
// It keeps no per-request state and is safe for concurrent use.
type Handler struct {
	sender   mailer.Sender
	logger   *slog.Logger
	validate *validator.Validate
}

// Option configures the Handler.
type Option func(*Handler)

// WithLogger sets the logger used for provider failures.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithStrictValidation rejects requests missing any of from, to, subject or
// html with 422 before calling the provider. Off by default: the provider is
// the only validator.
func WithStrictValidation(enabled bool) Option {
	return func(h *Handler) {
		if enabled {
			h.validate = newValidator()
		} else {
			h.validate = nil
		}
	}
}

// NewHandler creates the relay endpoint around sender.
func NewHandler(sender mailer.Sender, opts ...Option) *Handler {
	h := &Handler{
		sender: sender,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements internal.Handler.
func (h *Handler) Routes(r internal.Router) {
	r.POST("/email", h.sendEmail)
}

// sendEmail makes exactly one provider call and answers with the provider's
// confirmation (200) or its failure.
func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeRequest(r)
	if err != nil {
		return err
	}

	if h.validate != nil {
		if err := validateRequest(h.validate, req); err != nil {
			return err
		}
	}

	receipt, err := h.sender.Send(r.Context(), req.email())
	if err != nil {
		return h.providerFailure(r, err)
	}

	var message string
	if receipt != nil {
		message = receipt.Message
	}
	internal.WriteText(w, http.StatusOK, message)
	return nil
}

// providerFailure maps a provider error to the response: the provider's status
// code or 500, and the provider's message or the raw error text.
func (h *Handler) providerFailure(r *http.Request, err error) error {
	status := mailer.StatusCode(err)
	if status < 100 || status > 599 {
		status = http.StatusInternalServerError
	}

	body := mailer.ErrorMessage(err)
	if body == "" {
		body = mailer.RawError(err)
	}

	h.logger.WarnContext(r.Context(), "provider rejected email",
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)

	return internal.NewHTTPError(status, body, err)
}
