package alert

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/metrics"
)

type directory interface {
	ResolveChannel(ctx context.Context, scopeID, channelID string) (domain.Destination, error)
	ClassifyMentionable(ctx context.Context, scopeID, id string) (domain.MentionKind, error)
}

type sender interface {
	Send(ctx context.Context, dest domain.Destination, msg domain.Message) error
}

// Config controls delivery fan-out.
type Config struct {
	// Concurrency bounds simultaneous deliveries of one dispatch.
	Concurrency int
	// RatePerSecond and Burst throttle all outbound deliveries. Zero disables throttling.
	RatePerSecond float64
	Burst         int
	// SendTimeout bounds a single delivery.
	SendTimeout time.Duration
}

// Dispatcher delivers alerts and notices to a scope's alert channels.
type Dispatcher struct {
	dir     directory
	sender  sender
	metrics *metrics.Metrics
	limiter *rate.Limiter
	cfg     Config
	log     *slog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(
	log *slog.Logger,
	dir directory,
	sender sender,
	m *metrics.Metrics,
	cfg Config,
) *Dispatcher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Dispatcher{
		dir:     dir,
		sender:  sender,
		metrics: m,
		limiter: rate.NewLimiter(limit, burst),
		cfg:     cfg,
		log:     log.With("service", "alert"),
	}
}
