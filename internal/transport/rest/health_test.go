package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type storagePingerMock struct {
	err error
}

func (m *storagePingerMock) Ping(_ context.Context) error {
	return m.err
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{}, nil, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}

	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady_StorageUp(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: nil}, nil, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
}

func TestReady_StorageDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: errors.New("connection refused")}, nil, "test-version")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: nil}, nil, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}

	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}

	storageComp, ok := resp.Components["storage"]
	if !ok {
		t.Fatal("expected 'storage' component in response")
	}

	if storageComp.Status != "ok" {
		t.Errorf("expected storage status 'ok', got %q", storageComp.Status)
	}
}

func TestHealth_StorageDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: errors.New("connection refused")}, nil, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}

	storageComp, ok := resp.Components["storage"]
	if !ok {
		t.Fatal("expected 'storage' component in response")
	}

	if storageComp.Status != "down" {
		t.Errorf("expected storage status 'down', got %q", storageComp.Status)
	}
}

func TestHealth_IncludesLatency(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{err: nil}, nil, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	storageComp, ok := resp.Components["storage"]
	if !ok {
		t.Fatal("expected 'storage' component in response")
	}

	if storageComp.Latency == "" {
		t.Error("expected non-empty latency for storage component")
	}
}

type gatewayStatusMock struct {
	connected bool
}

func (m gatewayStatusMock) Connected() bool { return m.connected }

func TestHealth_GatewayDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{}, gatewayStatusMock{connected: false}, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Components["gateway"].Status != "down" {
		t.Errorf("expected gateway status 'down', got %q", resp.Components["gateway"].Status)
	}
	if resp.Components["storage"].Status != "ok" {
		t.Errorf("expected storage status 'ok', got %q", resp.Components["storage"].Status)
	}
}

func TestHealth_GatewayUp(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{}, gatewayStatusMock{connected: true}, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReady_IgnoresGateway(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storagePingerMock{}, gatewayStatusMock{connected: false}, "v1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
