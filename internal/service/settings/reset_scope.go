package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// ResetScopeResult reports what a reset touched.
type ResetScopeResult struct {
	LedgerEntries int64
}

// ResetScope restores the scope's policy to defaults and zeroes every
// ledger entry under it, atomically.
func (s *Service) ResetScope(ctx context.Context, scopeID string) (*ResetScopeResult, error) {
	if scopeID == "" {
		return nil, domain.NewValidationError("scope_id", "required")
	}

	var res ResetScopeResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.policies.Reset(txCtx, scopeID); err != nil {
			return fmt.Errorf("reset policy: %w", err)
		}
		n, err := s.ledger.ResetAll(txCtx, scopeID)
		if err != nil {
			return fmt.Errorf("reset ledger: %w", err)
		}
		res.LedgerEntries = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "scope reset",
		slog.String("scope_id", scopeID),
		slog.Int64("ledger_entries", res.LedgerEntries),
	)
	return &res, nil
}
