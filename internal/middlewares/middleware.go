package middlewares

import "context"

// RunFunc is the body of a cli command.
type RunFunc func(ctx context.Context) error

type Middleware func(next RunFunc) RunFunc

// Chain wraps f so that the first middleware runs outermost.
func Chain(f RunFunc, middlewares ...Middleware) RunFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		f = middlewares[i](f)
	}
	return f
}
