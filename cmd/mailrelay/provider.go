package main

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/mailrelay/internal/config"
	"github.com/dmitrymomot/mailrelay/pkg/mailer"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/logsender"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/mailgun"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/resend"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/ses"
)

// newSender builds the configured provider once at startup.
func newSender(cfg config.Config, log *slog.Logger) (mailer.Sender, error) {
	switch cfg.Mailer.Provider {
	case mailer.ProviderMailgun:
		return mailgun.New(cfg.Mailgun)
	case mailer.ProviderResend:
		return resend.New(cfg.Resend, log)
	case mailer.ProviderSES:
		return ses.New(cfg.SES, log)
	case mailer.ProviderLog:
		return logsender.New(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", mailer.ErrUnknownProvider, cfg.Mailer.Provider)
	}
}
