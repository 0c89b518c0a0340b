package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// WithLogging wraps next so every call is logged with the query name
// and how long it took. Errors are passed through untouched.
//
// Expected outcomes (validation failures, unknown ids, cancelled
// requests) log at INFO; anything else is an ERROR.
func WithLogging[Q, R any](name string, log *slog.Logger, next Handler[Q, R]) Handler[Q, R] {
	return HandlerFunc[Q, R](func(ctx context.Context, q Q) (R, error) {
		start := time.Now()
		res, err := next.Handle(ctx, q)

		attrs := []any{
			slog.String("query", name),
			slog.Duration("duration", time.Since(start)),
		}
		switch {
		case err == nil:
			log.Debug("query handled", attrs...)
		case errors.Is(err, ErrValidation), errors.Is(err, ErrNotFound):
			log.Info("query rejected", append(attrs, slog.String("error", err.Error()))...)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.Info("query cancelled", append(attrs, slog.String("error", err.Error()))...)
		default:
			log.Error("query failed", append(attrs, slog.String("error", err.Error()))...)
		}

		return res, err
	})
}
