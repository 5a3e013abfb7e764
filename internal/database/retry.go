package database

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/logging"
)

// WithRetry runs fn and, when it fails with a transient contention error,
// runs it exactly once more.
func WithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil || !IsRetryable(err) || ctx.Err() != nil {
		return err
	}
	logging.FromContext(ctx).Warn("retrying after transient database error", "error", err)
	return fn(ctx)
}
