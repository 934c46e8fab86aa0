package internal

import (
	"errors"
	"log/slog"
	"net/http"
)

// HTTPError is an error with the status code and body to send to the client.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is written verbatim as the response body.
	Message string

	// Code is the HTTP status code.
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string, err error) *HTTPError {
	return &HTTPError{Code: code, Message: message, Err: err}
}

func ErrBadRequest(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, err)
}

func ErrRequestTooLarge(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusRequestEntityTooLarge, message, err)
}

func ErrUnprocessable(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, message, err)
}

// AsHTTPError extracts the HTTPError from an error chain, or returns nil.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

// WriteText writes a plain-text response.
func WriteText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

// DefaultErrorHandler renders HTTPError with its own code and message and
// any other error as a bare 500.
func DefaultErrorHandler(logger *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if httpErr := AsHTTPError(err); httpErr != nil {
			WriteText(w, httpErr.Code, httpErr.Message)
			return
		}

		logger.ErrorContext(r.Context(), "unhandled error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		WriteText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// handleError hands err to the configured error handler unless the response
// has already started.
func (a *App) handleError(w *responseWriter, r *http.Request, err error) {
	if w.Written() {
		return
	}
	a.errorHandler(w, r, err)
}
