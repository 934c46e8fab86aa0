package logger

import (
	"context"
	"errors"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// recordHandler stamps request-scoped attributes on each record and delivers
// it to every sink (stdout, plus Sentry when enabled). A failing sink does not
// stop delivery to the others.
type recordHandler struct {
	sinks      []slog.Handler
	extractors []ContextExtractor
}

func newRecordHandler(sinks []slog.Handler, extractors []ContextExtractor) *recordHandler {
	h := &recordHandler{sinks: sinks}
	for _, ex := range extractors {
		if ex != nil {
			h.extractors = append(h.extractors, ex)
		}
	}
	return h
}

func (h *recordHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range h.sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *recordHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}

	var errs []error
	for _, sink := range h.sinks {
		if !sink.Enabled(ctx, rec.Level) {
			continue
		}
		if err := sink.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *recordHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.withSinks(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *recordHandler) WithGroup(name string) slog.Handler {
	return h.withSinks(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *recordHandler) withSinks(fn func(slog.Handler) slog.Handler) slog.Handler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = fn(s)
	}
	return &recordHandler{sinks: sinks, extractors: h.extractors}
}
