package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider indicates the configured provider name is not supported.
	ErrUnknownProvider = errors.New("unknown mail provider")

	// ErrMissingCredentials indicates a provider was configured without its API credentials.
	ErrMissingCredentials = errors.New("mail provider credentials are missing")
)

// ProviderError is a delivery failure reported by an email provider.
// StatusCode is zero and Message is empty when the provider did not supply them.
type ProviderError struct {
	Err        error  // Underlying SDK or transport error
	Provider   string // Provider name, for logs
	Message    string // Provider-supplied error message
	StatusCode int    // Provider-supplied HTTP status code
}

func (e *ProviderError) Error() string {
	switch {
	case e.Message != "" && e.StatusCode != 0:
		return fmt.Sprintf("%s: %d: %s", e.Provider, e.StatusCode, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Provider + ": send failed"
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// StatusCode returns the provider status code carried by err, or 0 if none.
func StatusCode(err error) int {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.StatusCode
	}
	return 0
}

// ErrorMessage returns the provider message carried by err, or "" if none.
func ErrorMessage(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return ""
}

// RawError returns the text of the underlying provider error, skipping the
// ProviderError decoration.
func RawError(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	return err.Error()
}
