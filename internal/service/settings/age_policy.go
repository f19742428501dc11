package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// SetAgePolicy flags subjects whose account is younger than the threshold.
// A zero threshold disables the rule.
func (s *Service) SetAgePolicy(ctx context.Context, input SetAgePolicyInput) (*Confirmation, error) {
	unit, err := input.parse()
	if err != nil {
		return nil, err
	}

	p, err := s.update(ctx, input.ScopeID, domain.PolicyUpdate{
		AgeThreshold: &input.Threshold,
		AgeUnit:      &unit,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "age policy updated",
		slog.String("scope_id", input.ScopeID),
		slog.Float64("age_threshold", input.Threshold),
		slog.String("age_unit", unit.String()),
	)

	msg := fmt.Sprintf("- I will begin watching for user accounts younger than %s %s.",
		formatNumber(input.Threshold), unit)
	return s.announce(ctx, p, msg, input.ChannelID)
}

// update applies u to the scope's policy, creating the policy first when
// the scope has never been seen.
func (s *Service) update(ctx context.Context, scopeID string, u domain.PolicyUpdate) (*domain.Policy, error) {
	if _, err := s.policies.GetOrCreate(ctx, scopeID); err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}
	p, err := s.policies.Update(ctx, scopeID, u)
	if err != nil {
		return nil, fmt.Errorf("update policy: %w", err)
	}
	return p, nil
}
