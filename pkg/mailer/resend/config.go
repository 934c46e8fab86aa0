package resend

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string `env:"RESEND_API_KEY"`
	BaseURL string `env:"RESEND_BASE_URL"` // Override API endpoint (tests, proxies)
	Debug   bool   `env:"-"`               // Log every API round trip at debug level
}
