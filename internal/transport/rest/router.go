package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/watchlist-backend/internal/metrics"
	"github.com/heartmarshall/watchlist-backend/internal/transport/middleware"
)

// NewRouter mounts the operator endpoints behind the standard middleware
// chain. Metrics are served from gatherer.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, health *HealthHandler, admin *AdminHandler, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if admin != nil {
		mux.HandleFunc("GET /admin/scopes/{scope_id}/policy", admin.ScopePolicy)
		mux.HandleFunc("GET /admin/scopes/{scope_id}/subjects/{subject_id}", admin.SubjectLedger)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger, m),
		middleware.Logger(logger),
	)(mux)
}
