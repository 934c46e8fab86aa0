package mailer

import (
	"context"
	"time"
)

// Sender defines the minimal interface that email providers must implement.
// Implementations must be safe for concurrent use.
type Sender interface {
	// Send delivers an email message with a single provider call.
	// Fields are passed to the provider as-is; no local validation is done.
	Send(ctx context.Context, email *Email) (*Receipt, error)
}

// Pinger is implemented by senders that can verify provider reachability.
// Used for readiness probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SenderFunc adapts an ordinary function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) (*Receipt, error)

// Send calls f(ctx, email).
func (f SenderFunc) Send(ctx context.Context, email *Email) (*Receipt, error) {
	return f(ctx, email)
}

// WithTimeout bounds every Send call of s by d.
// A non-positive d returns s unchanged.
func WithTimeout(s Sender, d time.Duration) Sender {
	if d <= 0 {
		return s
	}
	return &timeoutSender{next: s, timeout: d}
}

type timeoutSender struct {
	next    Sender
	timeout time.Duration
}

func (t *timeoutSender) Send(ctx context.Context, email *Email) (*Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Send(ctx, email)
}

// Ping forwards to the wrapped sender when it supports readiness checks.
func (t *timeoutSender) Ping(ctx context.Context) error {
	if p, ok := t.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Healthcheck returns a readiness check for s.
// Senders that cannot ping their provider are always reported healthy.
func Healthcheck(s Sender) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if p, ok := s.(Pinger); ok {
			return p.Ping(ctx)
		}
		return nil
	}
}
