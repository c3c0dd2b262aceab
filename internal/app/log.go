package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/portfolio-service/internal/domain"
)

// logFailure records a failed operation. Caller mistakes (bad input, missing
// entities, disallowed transitions) are logged at WARN; everything else at
// ERROR.
func logFailure(ctx context.Context, logger *slog.Logger, msg, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if isCallerError(err) {
		level = slog.LevelWarn
	}

	all := make([]slog.Attr, 0, len(attrs)+2)
	all = append(all, slog.String("operation", operation))
	all = append(all, attrs...)
	all = append(all, slog.Any("error", err))

	logger.LogAttrs(ctx, level, msg, all...)
}

func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidState) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict)
}
