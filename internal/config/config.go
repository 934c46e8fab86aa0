// Package config loads the relay configuration from environment variables.
// The resulting Config is built once at startup and passed down explicitly.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/mailrelay/pkg/logger"
	"github.com/dmitrymomot/mailrelay/pkg/mailer"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/mailgun"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/resend"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/ses"
)

// Config is the complete relay configuration.
type Config struct {
	Host             string        `env:"HOST" envDefault:"0.0.0.0"`
	Port             int           `env:"PORT" envDefault:"8002"`
	BodyLimit        int64         `env:"BODY_LIMIT" envDefault:"10485760"`
	StrictValidation bool          `env:"STRICT_VALIDATION" envDefault:"false"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Log     logger.Config
	Mailer  mailer.Config
	Mailgun mailgun.Config
	Resend  resend.Config
	SES     ses.Config
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given key/value set instead of the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	provider, err := mailer.ParseProvider(string(cfg.Mailer.Provider))
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.Mailer.Provider = provider

	// The debug toggle is shared by every provider.
	cfg.Mailgun.Debug = cfg.Mailer.Debug
	cfg.Resend.Debug = cfg.Mailer.Debug
	cfg.SES.Debug = cfg.Mailer.Debug

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("config: invalid PORT %d", cfg.Port)
	}

	return cfg, nil
}

// Address returns the host:port the server binds to.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
