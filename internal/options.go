package internal

import (
	"log/slog"

	"github.com/dmitrymomot/mailrelay/pkg/health"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithLogger sets the application logger. Nil keeps the no-op default.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithHealthChecks enables /health/live and /health/ready.
// The readiness probe runs the given checks in parallel.
//
// Example:
//
//	internal.WithHealthChecks(health.Checks{"provider": mailer.Healthcheck(sender)})
func WithHealthChecks(checks health.Checks) Option {
	return func(a *App) {
		a.withHealth = true
		if a.healthChecks == nil {
			a.healthChecks = make(health.Checks, len(checks))
		}
		for name, fn := range checks {
			a.healthChecks[name] = fn
		}
	}
}
