package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/watchlist-backend/internal/metrics"
	"github.com/heartmarshall/watchlist-backend/pkg/ctxutil"
)

// ReportPanic logs a recovered panic with its stack, the request ID from
// ctx and attrs, and counts it under surface and handler. The HTTP and
// gateway surfaces both recover through it.
func ReportPanic(ctx context.Context, logger *slog.Logger, m *metrics.Metrics, surface, handler string, value any, attrs ...slog.Attr) {
	all := []slog.Attr{
		slog.String("surface", surface),
		slog.String("op", handler),
		slog.Any("panic", value),
	}
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		all = append(all, slog.String("request_id", id))
	}
	all = append(all, attrs...)
	all = append(all, slog.String("stack", string(debug.Stack())))

	logger.LogAttrs(ctx, slog.LevelError, "panic recovered", all...)
	m.PanicRecovered(surface, handler)
}

// Recovery turns a panicking request into a JSON 500 carrying the request
// ID, reported through ReportPanic.
func Recovery(logger *slog.Logger, m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				attrs := []slog.Attr{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				if scope := r.PathValue("scope_id"); scope != "" {
					attrs = append(attrs, slog.String("scope_id", scope))
				}
				ReportPanic(r.Context(), logger, m, metrics.SurfaceHTTP, route(r), v, attrs...)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":      "internal server error",
					"request_id": ctxutil.RequestIDFromCtx(r.Context()),
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// route is the matched mux pattern, a low-cardinality label. The mux fills
// r.Pattern and path values in place on the request it is handed, so outer
// layers see them once the handler has run.
func route(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}
	return r.Pattern
}
