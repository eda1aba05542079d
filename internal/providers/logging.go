package providers

import (
	"context"
	"log/slog"

	"github.com/Bazz30/NRL/internal/logging"
)

const rateLimiterName = "rate_limiter"

// logFetch logs a provider call tagged with the provider and snapshot kind. A nil logger is a no-op.
func logFetch(ctx context.Context, logger *slog.Logger, level slog.Level, provider, kind, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String(logging.FieldKind, kind),
	)
	logger.Log(ctx, level, msg, args...)
}
