package middlewares

import (
	"context"
	"fmt"

	"github.com/the127/attestate/internal/logging"
)

// RecoverMiddleware turns a panic into an error.
func RecoverMiddleware() Middleware {
	return func(next RunFunc) RunFunc {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logging.Logger.Errorf("recovered from panic: %v", r)
					err = fmt.Errorf("internal error: %v", r)
				}
			}()

			return next(ctx)
		}
	}
}
