// Package ses implements mailer.Sender on top of Amazon Simple Email Service.
package ses

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/logging"

	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

const (
	providerName = "ses"
	charset      = "UTF-8"
)

// Sender implements mailer.Sender using SES SendEmail.
type Sender struct {
	client *ses.Client
}

// New creates a new SES sender with static credentials.
// The logger receives SDK request/response dumps when cfg.Debug is set.
func New(cfg Config, logger *slog.Logger) (*Sender, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("ses: %w", mailer.ErrMissingCredentials)
	}

	opts := ses.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		// One outbound call per relayed request.
		Retryer: aws.NopRetryer{},
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	if cfg.Debug && logger != nil {
		opts.ClientLogMode = aws.LogRequest | aws.LogResponse
		opts.Logger = slogAdapter(logger)
	}

	return &Sender{client: ses.New(opts)}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(email.From),
		Destination: &types.Destination{
			ToAddresses: []string{email.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(email.Subject),
				Charset: aws.String(charset),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(email.HTML),
					Charset: aws.String(charset),
				},
			},
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return nil, toProviderError(err)
	}

	id := aws.ToString(out.MessageId)
	return &mailer.Receipt{
		ID:      id,
		Message: "Queued. ID: " + id,
	}, nil
}

// Ping checks that the credentials can reach SES.
func (s *Sender) Ping(ctx context.Context) error {
	if _, err := s.client.GetSendQuota(ctx, &ses.GetSendQuotaInput{}); err != nil {
		return toProviderError(err)
	}
	return nil
}

func toProviderError(err error) error {
	pe := &mailer.ProviderError{
		Provider: providerName,
		Err:      err,
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		pe.StatusCode = respErr.HTTPStatusCode()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		pe.Message = apiErr.ErrorMessage()
	}

	return pe
}

func slogAdapter(logger *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(classification logging.Classification, format string, v ...any) {
		msg := fmt.Sprintf(format, v...)
		if classification == logging.Warn {
			logger.Warn(msg, slog.String("provider", providerName))
			return
		}
		logger.Debug(msg, slog.String("provider", providerName))
	})
}
