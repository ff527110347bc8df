package middlewares

import (
	"context"

	"github.com/The127/ioc"
	"github.com/the127/attestate/internal/utils"
)

type scopeKeyType string

// ScopeMiddleware gives every run a fresh dependency scope.
func ScopeMiddleware(root *ioc.DependencyProvider) Middleware {
	return func(next RunFunc) RunFunc {
		return func(ctx context.Context) error {
			scope := root.NewScope()
			defer utils.PanicOnError(scope.Close, "closing scope")

			return next(ContextWithScope(ctx, scope))
		}
	}
}

func ContextWithScope(ctx context.Context, scope *ioc.DependencyProvider) context.Context {
	return context.WithValue(ctx, scopeKeyType("scope"), scope)
}

func GetScope(ctx context.Context) *ioc.DependencyProvider {
	return ctx.Value(scopeKeyType("scope")).(*ioc.DependencyProvider)
}
