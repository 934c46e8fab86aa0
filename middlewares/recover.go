package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/dmitrymomot/mailrelay/internal"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// Recover returns middleware that turns panics into a *PanicError.
// The panic is logged at error level (reaching Sentry when configured) and the
// app's ErrorHandler renders the 500.
func Recover(logger *slog.Logger) internal.Middleware {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// Let net/http abort the connection as it would without us.
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := make([]byte, DefaultStackSize)
				stack = stack[:runtime.Stack(stack, false)]

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(stack)),
				)
				err = &PanicError{Value: rec, Stack: stack}
			}()

			return next(w, r)
		}
	}
}
