package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailrelay/internal"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

// requestIDKey is the context key for storing the request ID.
type requestIDKey struct{}

// requestIDHeaders are checked in order for an upstream request ID.
var requestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// RequestID returns middleware that assigns a request ID to each request.
// An upstream ID from X-Request-ID or X-Correlation-ID wins; otherwise a UUID
// is generated. The ID is stored in the request context and echoed in the
// X-Request-ID response header.
func RequestID() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			var reqID string
			for _, header := range requestIDHeaders {
				if v := r.Header.Get(header); v != "" {
					reqID = v
					break
				}
			}
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", reqID)
			ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
			return next(w, r.WithContext(ctx))
		}
	}
}

// GetRequestID returns the request ID stored in ctx, or "".
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// RequestIDExtractor returns a ContextExtractor for logger.New.
// Adds "request_id" to every record logged with a request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := GetRequestID(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}
