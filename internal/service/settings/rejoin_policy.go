package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// SetRejoinPolicy flags subjects who joined more than threshold times.
// A zero threshold disables the rule.
func (s *Service) SetRejoinPolicy(ctx context.Context, input SetRejoinPolicyInput) (*Confirmation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.update(ctx, input.ScopeID, domain.PolicyUpdate{RejoinThreshold: &input.Threshold})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "rejoin policy updated",
		slog.String("scope_id", input.ScopeID),
		slog.Int("rejoin_threshold", input.Threshold),
	)

	plural := ""
	if input.Threshold > 1 {
		plural = "s"
	}
	msg := fmt.Sprintf("- I will begin watching for users who frequently leave and rejoin more than %d time%s.",
		input.Threshold, plural)
	return s.announce(ctx, p, msg, input.ChannelID)
}
