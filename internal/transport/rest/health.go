package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// storagePinger defines the minimal interface for record store health checks.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// gatewayStatus reports whether the platform connection is up.
type gatewayStatus interface {
	Connected() bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	storage storagePinger
	gateway gatewayStatus
	version string
}

// NewHealthHandler creates a HealthHandler. gateway may be nil.
func NewHealthHandler(storage storagePinger, gateway gatewayStatus, version string) *HealthHandler {
	return &HealthHandler{storage: storage, gateway: gateway, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check. Pings storage: 200 if OK, 503 if not.
// The gateway is left out so a reconnecting bot is not restarted.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: storage latency, gateway state and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.storage.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["storage"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["storage"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	if h.gateway != nil {
		if h.gateway.Connected() {
			components["gateway"] = CompStatus{Status: "ok"}
		} else {
			components["gateway"] = CompStatus{Status: "down"}
			overallStatus = "down"
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
