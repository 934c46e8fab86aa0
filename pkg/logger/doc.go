// Package logger builds the service's structured logger on top of log/slog.
//
// Records go to stdout as JSON (or text) and, when a Sentry DSN is configured,
// to Sentry as well: errors become Issues, warnings are stored as logs.
// Context extractors attach request-scoped attributes such as the request ID
// to every record logged with a context:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(r.Context(), "email relayed", slog.Int("status", 200))
//	// {"level":"INFO","msg":"email relayed","status":200,"request_id":"..."}
//
// Without a DSN the logger silently falls back to stdout only, so the same code
// path works in development. Call [Flush] during shutdown to deliver buffered
// Sentry events.
package logger
