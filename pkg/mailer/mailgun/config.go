package mailgun

// Config holds Mailgun email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string `env:"MAILGUN_API_KEY"`
	Domain  string `env:"MAILGUN_DOMAIN"`
	APIBase string `env:"MAILGUN_API_BASE"` // e.g. https://api.eu.mailgun.net/v3
	Debug   bool   `env:"-"`
}
