package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

// sentryFlushTimeout bounds how long Flush waits for buffered Sentry events.
const sentryFlushTimeout = 2 * time.Second

// New creates a stdout logger from cfg with optional context extractors.
// Records are also forwarded to Sentry when cfg.Sentry.DSN is set.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return newLogger(os.Stdout, cfg, extractors...)
}

func newLogger(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	base := newBaseHandler(w, cfg)
	sinks := []slog.Handler{base}

	if sentryHandler := newSentryHandler(cfg.Sentry, base); sentryHandler != nil {
		sinks = append(sinks, sentryHandler)
	}

	return slog.New(newRecordHandler(sinks, extractors))
}

func newBaseHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Flush waits for buffered Sentry events to be delivered.
// It is safe to call when Sentry was never initialized.
// The signature matches shutdown hooks.
func Flush(ctx context.Context) error {
	timeout := sentryFlushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	sentry.Flush(timeout)
	return nil
}
