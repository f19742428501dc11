package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/report"
)

// Dispatch renders alert once and delivers the same message to every
// configured alert channel of policy. Unreachable channels are skipped and
// reported in the result; they never fail the dispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, policy *domain.Policy, alert *domain.AlertRequest) (*domain.DispatchResult, error) {
	if policy == nil || alert == nil {
		return nil, domain.NewValidationError("alert", "policy and alert are required")
	}

	result := &domain.DispatchResult{AlertID: alert.ID}
	if len(policy.AlertChannels) == 0 {
		result.NoChannels = true
		d.log.WarnContext(ctx, "no alert channels configured",
			slog.String("scope_id", policy.ScopeID),
			slog.String("alert_id", alert.ID.String()),
		)
		return result, nil
	}

	rep := report.ForAlert(alert)
	msg := domain.Message{
		Content: d.mentions(ctx, policy),
		Report:  &rep,
	}

	if err := d.fanOut(ctx, policy.ScopeID, policy.AlertChannels, "", msg, result); err != nil {
		return result, fmt.Errorf("dispatch alert: %w", err)
	}

	d.log.InfoContext(ctx, "alert dispatched",
		slog.String("scope_id", policy.ScopeID),
		slog.String("subject_id", alert.Subject.ID),
		slog.String("alert_id", alert.ID.String()),
		slog.Int("delivered", len(result.Delivered)),
		slog.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// mentions renders the alert entities of policy as one content line.
// Entities without a stored kind are classified by lookup and fall back to
// the individual form when the lookup fails.
func (d *Dispatcher) mentions(ctx context.Context, policy *domain.Policy) string {
	if len(policy.AlertEntities) == 0 {
		return ""
	}
	parts := make([]string, 0, len(policy.AlertEntities))
	for _, e := range policy.AlertEntities {
		kind := e.Kind
		if kind == domain.MentionUnknown {
			k, err := d.dir.ClassifyMentionable(ctx, policy.ScopeID, e.ID)
			if err != nil {
				d.log.DebugContext(ctx, "classify mentionable",
					slog.String("scope_id", policy.ScopeID),
					slog.String("entity_id", e.ID),
					slog.String("error", err.Error()),
				)
				k = domain.MentionIndividual
			}
			kind = k
		}
		parts = append(parts, domain.MentionFor(e.ID, kind))
	}
	return strings.Join(parts, " ")
}

func unreachable(err error) error {
	if errors.Is(err, domain.ErrDestinationUnreachable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrDestinationUnreachable, err)
}
