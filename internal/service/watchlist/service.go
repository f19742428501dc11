package watchlist

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/locker"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/metrics"
)

type policyRepo interface {
	GetOrCreate(ctx context.Context, scopeID string) (*domain.Policy, error)
}

type ledgerRepo interface {
	GetOrCreate(ctx context.Context, scopeID, subjectID string) (*domain.LedgerEntry, error)
	Increment(ctx context.Context, scopeID, subjectID string) (*domain.LedgerEntry, error)
}

type keyLocker interface {
	Lock(ctx context.Context, key string) (locker.Unlock, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, policy *domain.Policy, alert *domain.AlertRequest) (*domain.DispatchResult, error)
}

// Config controls which events are evaluated.
type Config struct {
	// IgnoreBots skips events about bot accounts.
	IgnoreBots bool
}

// Service evaluates membership events against the scope's watchlist policy.
type Service struct {
	policies   policyRepo
	ledger     ledgerRepo
	locks      keyLocker
	dispatcher dispatcher
	metrics    *metrics.Metrics
	cfg        Config
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new watchlist Service.
func NewService(
	log *slog.Logger,
	policies policyRepo,
	ledger ledgerRepo,
	locks keyLocker,
	dispatcher dispatcher,
	m *metrics.Metrics,
	cfg Config,
) *Service {
	return &Service{
		policies:   policies,
		ledger:     ledger,
		locks:      locks,
		dispatcher: dispatcher,
		metrics:    m,
		cfg:        cfg,
		now:        time.Now,
		log:        log.With("service", "watchlist"),
	}
}
