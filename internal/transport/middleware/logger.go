package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// pollRoutes are hit by orchestrators and scrapers; successful calls
// are logged at debug.
var pollRoutes = map[string]bool{
	"GET /live":    true,
	"GET /ready":   true,
	"GET /metrics": true,
}

// Logger logs each request with its route, status and duration. Admin
// requests also carry the scope they inspected.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			rt := route(r)
			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case pollRoutes[rt]:
				level = slog.LevelDebug
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("route", rt),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
			}
			if scope := r.PathValue("scope_id"); scope != "" {
				attrs = append(attrs, slog.String("scope_id", scope))
			}
			// request_id is added from the context by the app log handler.
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
