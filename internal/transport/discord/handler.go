package discord

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/watchlist-backend/internal/config"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/metrics"
	"github.com/heartmarshall/watchlist-backend/internal/service/settings"
	"github.com/heartmarshall/watchlist-backend/internal/service/watchlist"
	"github.com/heartmarshall/watchlist-backend/internal/transport/middleware"
	"github.com/heartmarshall/watchlist-backend/pkg/ctxutil"
)

type evaluator interface {
	Evaluate(ctx context.Context, ev domain.Event) (*watchlist.Outcome, error)
}

type settingsService interface {
	EnsureScope(ctx context.Context, scopeID string) (*domain.Policy, error)
	ResetScope(ctx context.Context, scopeID string) (*settings.ResetScopeResult, error)
	SetAgePolicy(ctx context.Context, input settings.SetAgePolicyInput) (*settings.Confirmation, error)
	SetRejoinPolicy(ctx context.Context, input settings.SetRejoinPolicyInput) (*settings.Confirmation, error)
	SetReportOrder(ctx context.Context, input settings.SetReportOrderInput) (*settings.Confirmation, error)
	ApplyAlertAction(ctx context.Context, input settings.AlertActionInput) (*settings.Confirmation, error)
	TriggerDemoAlert(ctx context.Context, input settings.DemoAlertInput) (*settings.Confirmation, error)
}

// Handler turns gateway events and interactions into service calls.
// Every entry point recovers from panics so one bad event never takes the
// gateway connection down.
type Handler struct {
	sess     session
	engine   evaluator
	settings settingsService
	cfg      config.DiscordConfig
	metrics  *metrics.Metrics
	log      *slog.Logger

	mu    sync.RWMutex
	appID string
}

// NewHandler creates a new Handler.
func NewHandler(
	log *slog.Logger,
	sess session,
	engine evaluator,
	settings settingsService,
	m *metrics.Metrics,
	cfg config.DiscordConfig,
) *Handler {
	return &Handler{
		sess:     sess,
		engine:   engine,
		settings: settings,
		cfg:      cfg,
		metrics:  m,
		appID:    cfg.ApplicationID,
		log:      log.With("handler", "discord"),
	}
}

// SetApplicationID sets the application commands are registered under,
// unless one was configured.
func (h *Handler) SetApplicationID(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.appID == "" {
		h.appID = id
	}
}

func (h *Handler) applicationID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.appID
}

// withTimeout bounds one event or interaction and tags it with a request ID.
func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = ctxutil.WithNewRequestID(ctx)
	if h.cfg.EventTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.cfg.EventTimeout)
}

// recoverPanic reports a panic raised by the handler named where while
// serving scopeID, the same way the HTTP surface does.
func (h *Handler) recoverPanic(ctx context.Context, where, scopeID string, r any) {
	var attrs []slog.Attr
	if scopeID != "" {
		attrs = append(attrs, slog.String("scope_id", scopeID))
	}
	middleware.ReportPanic(ctx, h.log, h.metrics, metrics.SurfaceGateway, where, r, attrs...)
}
