package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls an attribute out of a request context. Returning
// false leaves the record unchanged.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if a, ok := ex(ctx); ok {
			rec.AddAttrs(a)
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
