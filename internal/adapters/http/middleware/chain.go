package middleware

import "net/http"

// Chain composes middleware into one, first argument outermost. The router
// uses it to build the stack that wraps rendered pages only:
//
//	Chain(Timeout(d), CacheControl(maxAge, swr))(page)
//
// is equivalent to:
//
//	Timeout(d)(CacheControl(maxAge, swr)(page))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
