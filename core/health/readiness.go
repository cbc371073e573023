package health

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/outputtracker/core/logger"
)

// ErrNotReady is returned when at least one check failed.
var ErrNotReady = errors.New("dependencies are not ready")

// Readiness runs every check in order and returns ErrNotReady joined with
// all failures. Each failure is logged; a nil log discards them.
func Readiness(ctx context.Context, log *slog.Logger, checks ...func(context.Context) error) error {
	if log == nil {
		log = logger.Discard()
	}

	var errs []error
	for i, check := range checks {
		if err := check(ctx); err != nil {
			log.ErrorContext(ctx, "readiness check failed",
				logger.Component("health"),
				logger.Count("check", i),
				logger.Error(err),
			)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrNotReady}, errs...)...)
	}
	return nil
}
