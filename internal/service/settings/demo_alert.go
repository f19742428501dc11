package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// TriggerDemoAlert renders a sample report for a member with the scope's
// current policy and delivers it without touching the ledger.
func (s *Service) TriggerDemoAlert(ctx context.Context, input DemoAlertInput) (*Confirmation, error) {
	kind, err := input.parse()
	if err != nil {
		return nil, err
	}

	p, err := s.policies.GetOrCreate(ctx, input.ScopeID)
	if err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}
	entry, err := s.ledger.GetOrCreate(ctx, input.ScopeID, input.Subject.ID)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	target := *p
	if input.TargetChannel != "" {
		target.AlertChannels = []string{input.TargetChannel}
	}

	now := s.now()
	age := now.Sub(input.AccountCreatedAt)
	if input.AccountCreatedAt.IsZero() || age < 0 {
		age = 0
	}

	alert := &domain.AlertRequest{
		ID:          uuid.New(),
		ScopeID:     input.ScopeID,
		Subject:     input.Subject,
		Kind:        kind,
		MetricValue: p.AgeUnit.Convert(age),
		MetricUnit:  p.AgeUnit,
		RejoinCount: entry.RejoinCount,
		FieldOrder:  p.FieldOrder,
		CreatedAt:   now,
	}

	res, err := s.announcer.Dispatch(ctx, &target, alert)
	if err != nil {
		return nil, fmt.Errorf("dispatch demo alert: %w", err)
	}

	s.log.InfoContext(ctx, "demo alert sent",
		slog.String("scope_id", input.ScopeID),
		slog.String("subject_id", input.Subject.ID),
		slog.String("event_kind", kind.String()),
		slog.Int("delivered", res.DeliveredCount()),
	)

	c := &Confirmation{
		Message:     fmt.Sprintf("Sent a demo Watchlist report to %d channel%s.", res.DeliveredCount(), plural(res.DeliveredCount())),
		Unreachable: skippedIDs(res),
	}
	if res.NoChannels {
		c.Message += "\n" + NoChannelsNote
	}
	return c, nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
