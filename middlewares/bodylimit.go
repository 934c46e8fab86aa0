package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/mailrelay/internal"
)

// DefaultBodyLimit is the largest accepted request body.
const DefaultBodyLimit int64 = 10 << 20 // 10MB

// BodyLimit returns middleware that caps request bodies at limit bytes.
// Reading past the limit fails with *http.MaxBytesError; requests announcing a
// larger Content-Length are rejected with 413 up front.
func BodyLimit(limit int64) internal.Middleware {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			if r.ContentLength > limit {
				return internal.ErrRequestTooLarge("request body too large", &http.MaxBytesError{Limit: limit})
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			return next(w, r)
		}
	}
}
