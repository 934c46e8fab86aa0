// Package mailer defines the contract between the relay and transactional email providers.
//
// A provider adapter implements [Sender]. It receives a fully-prepared [Email],
// performs exactly one delivery call against the provider API and reports either
// a [Receipt] or an error. Adapters live in sub-packages:
//
//   - mailgun: Mailgun HTTP API (default)
//   - resend: Resend HTTP API
//   - ses: Amazon SES
//   - logsender: development sender that only logs
//
// # Usage
//
//	sender := mailgun.New(mailgun.Config{
//		APIKey: os.Getenv("MAILGUN_API_KEY"),
//		Domain: "mg.example.com",
//	})
//
//	receipt, err := sender.Send(ctx, &mailer.Email{
//		From:    "team@example.com",
//		To:      "user@example.com",
//		Subject: "Hi",
//		HTML:    "<p>hi</p>",
//	})
//	if err != nil {
//		code := mailer.StatusCode(err) // 0 when the provider reported none
//		...
//	}
//	fmt.Println(receipt.Message)
//
// # Errors
//
// Adapters report provider failures as [*ProviderError], which carries the
// provider's HTTP status code and message when they are known. Callers inspect
// them with [StatusCode], [ErrorMessage] or errors.As.
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
//		// Send email using your provider's API
//		return &mailer.Receipt{Message: "Queued"}, nil
//	}
package mailer
