package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func extractTrace(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("trace", v), true
	}
	return slog.Attr{}, false
}

func TestNewLogger_JSONWithExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, Config{Level: "info", Format: "json"}, extractTrace, nil)

	ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
	log.InfoContext(ctx, "relayed", slog.Int("status", 200))
	log.DebugContext(ctx, "hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "relayed", rec["msg"])
	require.Equal(t, "abc-123", rec["trace"])
	require.EqualValues(t, 200, rec["status"])
	require.NotContains(t, buf.String(), "hidden")
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, Config{Level: "debug", Format: "text"})

	log.Debug("starting", slog.String("address", "0.0.0.0:8002"))

	require.Contains(t, buf.String(), "msg=starting")
	require.Contains(t, buf.String(), "address=0.0.0.0:8002")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestRecordHandler_DeliversDespiteFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	good := slog.NewJSONHandler(&buf, nil)
	bad := failingHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil)}

	h := newRecordHandler([]slog.Handler{bad, good}, []ContextExtractor{extractTrace})
	ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
	err := h.Handle(ctx, slog.NewRecord(time.Time{}, slog.LevelInfo, "hello", 0))

	require.EqualError(t, err, "sink down")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), `"trace":"abc-123"`)
}

func TestRecordHandler_WithAttrsKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, Config{Level: "info", Format: "json"}, extractTrace).
		With(slog.String("provider", "ses"))

	ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
	log.InfoContext(ctx, "sent")

	require.Contains(t, buf.String(), `"provider":"ses"`)
	require.Contains(t, buf.String(), `"trace":"abc-123"`)
}

func TestFlush_WithoutSentry(t *testing.T) {
	t.Parallel()

	require.NoError(t, Flush(context.Background()))
}
