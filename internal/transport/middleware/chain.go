package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds mws into one Middleware. The first middleware in the list
// becomes the outermost wrapper and therefore runs first:
// Chain(a, b)(h) == a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		wrapped := h
		for i := len(mws); i > 0; i-- {
			wrapped = mws[i-1](wrapped)
		}
		return wrapped
	}
}
