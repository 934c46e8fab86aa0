package internal

import "net/http"

// Handler declares routes on a router.
//
// Example:
//
//	type RelayHandler struct {
//	    sender mailer.Sender
//	}
//
//	func (h *RelayHandler) Routes(r internal.Router) {
//	    r.POST("/email", h.sendEmail)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the response over to the app's ErrorHandler,
// so every handler has a single exit point for failures.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect or replace the request, short-circuit processing,
// or turn panics into errors.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers and middleware.
// It is only called while the response has not been written yet.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
