package middlewares

import (
	"context"
	"time"

	"github.com/the127/attestate/internal/logging"
)

func LoggingMiddleware(name string) Middleware {
	return func(next RunFunc) RunFunc {
		return func(ctx context.Context) error {
			start := time.Now()
			logging.Logger.Debugf("command started: %s", name)

			err := next(ctx)
			if err != nil {
				logging.Logger.Warnf("command failed: %s: %s", name, err)
				return err
			}

			logging.Logger.Infof("command finished: %s in %s", name, time.Since(start))
			return nil
		}
	}
}
