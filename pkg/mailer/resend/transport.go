package resend

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type statusKey struct{}

// withStatusRecorder returns a context that receives the HTTP status of the
// request made with it.
func withStatusRecorder(ctx context.Context) (context.Context, *int) {
	status := new(int)
	return context.WithValue(ctx, statusKey{}, status), status
}

// recordingTransport stores the response status in the request context so that
// SDK errors, which do not expose it, can be mapped to the provider's status code.
type recordingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
	debug  bool
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		if t.debug {
			t.logger.DebugContext(req.Context(), "resend request failed",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	if status, ok := req.Context().Value(statusKey{}).(*int); ok {
		*status = resp.StatusCode
	}

	if t.debug {
		t.logger.DebugContext(req.Context(), "resend request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)),
		)
	}
	return resp, nil
}
