package settings

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

type policyRepo interface {
	GetOrCreate(ctx context.Context, scopeID string) (*domain.Policy, error)
	Update(ctx context.Context, scopeID string, u domain.PolicyUpdate) (*domain.Policy, error)
	Reset(ctx context.Context, scopeID string) error
}

type ledgerRepo interface {
	GetOrCreate(ctx context.Context, scopeID, subjectID string) (*domain.LedgerEntry, error)
	ResetAll(ctx context.Context, scopeID string) (int64, error)
}

type announcer interface {
	Broadcast(ctx context.Context, policy *domain.Policy, text, skipChannel string) (*domain.DispatchResult, error)
	Dispatch(ctx context.Context, policy *domain.Policy, alert *domain.AlertRequest) (*domain.DispatchResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies watchlist configuration commands and announces every
// change to the scope's alert channels.
type Service struct {
	policies  policyRepo
	ledger    ledgerRepo
	announcer announcer
	tx        txManager
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new settings Service.
func NewService(
	log *slog.Logger,
	policies policyRepo,
	ledger ledgerRepo,
	announcer announcer,
	tx txManager,
) *Service {
	return &Service{
		policies:  policies,
		ledger:    ledger,
		announcer: announcer,
		tx:        tx,
		now:       time.Now,
		log:       log.With("service", "settings"),
	}
}

// EnsureScope creates the scope's policy rows when missing.
func (s *Service) EnsureScope(ctx context.Context, scopeID string) (*domain.Policy, error) {
	if scopeID == "" {
		return nil, domain.NewValidationError("scope_id", "required")
	}
	return s.policies.GetOrCreate(ctx, scopeID)
}
