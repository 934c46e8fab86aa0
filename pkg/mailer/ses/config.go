package ses

// Config holds Amazon SES provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Region    string `env:"SES_REGION" envDefault:"us-east-1"`
	AccessKey string `env:"SES_ACCESS_KEY_ID"`
	SecretKey string `env:"SES_SECRET_ACCESS_KEY"`
	Endpoint  string `env:"SES_ENDPOINT"` // Custom endpoint (LocalStack, tests)
	Debug     bool   `env:"-"`
}
