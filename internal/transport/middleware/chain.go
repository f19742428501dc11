// Package middleware wraps the operator HTTP surface: request IDs, panic
// recovery shared with the gateway handlers, and access logging.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws outermost first: Chain(a, b)(h) is a(b(h)).
// Nil entries are skipped so optional layers can be passed inline.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}
