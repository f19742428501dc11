package middleware

import (
	"net/http"

	"github.com/heartmarshall/watchlist-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

// RequestID reuses a well-formed caller request ID or mints one, stores it
// in the request context and echoes it in the response. The same ID tags
// every log line the request produces.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id := r.Header.Get(RequestIDHeader); validRequestID(id) {
				ctx = ctxutil.WithRequestID(ctx, id)
			} else {
				ctx = ctxutil.WithNewRequestID(ctx)
			}
			w.Header().Set(RequestIDHeader, ctxutil.RequestIDFromCtx(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validRequestID accepts short printable ASCII without spaces, so caller
// IDs cannot forge log fields.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
