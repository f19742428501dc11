package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// Broadcast sends a plain text notice to every alert channel of policy
// except skipChannel, which the caller has already answered in place.
func (d *Dispatcher) Broadcast(ctx context.Context, policy *domain.Policy, text, skipChannel string) (*domain.DispatchResult, error) {
	if policy == nil {
		return nil, domain.NewValidationError("policy", "required")
	}

	result := &domain.DispatchResult{}
	if len(policy.AlertChannels) == 0 {
		result.NoChannels = true
		return result, nil
	}

	if err := d.fanOut(ctx, policy.ScopeID, policy.AlertChannels, skipChannel, domain.Message{Content: text}, result); err != nil {
		return result, fmt.Errorf("broadcast: %w", err)
	}

	d.log.DebugContext(ctx, "notice broadcast",
		slog.String("scope_id", policy.ScopeID),
		slog.Int("delivered", len(result.Delivered)),
		slog.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}
