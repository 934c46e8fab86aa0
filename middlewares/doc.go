// Package middlewares provides the relay's HTTP middleware.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID / X-Correlation-ID or generates a
// UUID, stores it in the request context and echoes it in X-Request-ID.
// Pair it with RequestIDExtractor so every log line carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover converts panics into *PanicError, logs them with a stack trace and
// lets the app's error handler answer 500.
//
// # Body limit
//
// BodyLimit caps request bodies (10MB by default); JSON decoding past the cap
// fails with *http.MaxBytesError, which handlers report as 413.
//
// Recommended order:
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.Recover(log),
//	    middlewares.BodyLimit(cfg.BodyLimit),
//	)
package middlewares
