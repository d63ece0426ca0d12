package clientip

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/sigkit/pkg/logger"
)

// LoggerExtractor adds "client_ip" to records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
