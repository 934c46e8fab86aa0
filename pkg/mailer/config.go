package mailer

import (
	"fmt"
	"strings"
	"time"
)

// Provider names a supported email provider.
type Provider string

// Supported providers.
const (
	ProviderMailgun Provider = "mailgun"
	ProviderResend  Provider = "resend"
	ProviderSES     Provider = "ses"
	ProviderLog     Provider = "log"
)

// Config holds provider-independent delivery settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Provider Provider      `env:"MAIL_PROVIDER" envDefault:"mailgun"`
	Timeout  time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"0s"`
	Debug    bool          `env:"PROVIDER_DEBUG" envDefault:"false"`
}

// ParseProvider normalizes a provider name.
func ParseProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case ProviderMailgun, ProviderResend, ProviderSES, ProviderLog:
		return p, nil
	case "":
		return ProviderMailgun, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}
