package watchlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/locker"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// Outcome is everything Evaluate decided and did for one event.
type Outcome struct {
	Verdict Verdict
	Ledger  *domain.LedgerEntry
	// Alert and Dispatch are nil unless the subject was flagged.
	Alert    *domain.AlertRequest
	Dispatch *domain.DispatchResult
}

// Evaluate records ev in the ledger, applies the scope's policy and
// dispatches an alert when the subject is flagged. A storage failure aborts
// the event before anything is sent.
func (s *Service) Evaluate(ctx context.Context, ev domain.Event) (*Outcome, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	if ev.Subject.Bot && s.cfg.IgnoreBots {
		return nil, domain.ErrIgnoredEvent
	}

	start := s.now()
	log := s.log.With(
		slog.String("scope_id", ev.ScopeID),
		slog.String("subject_id", ev.Subject.ID),
		slog.String("event_kind", ev.Kind.String()),
	)

	policy, entry, err := s.record(ctx, ev)
	if err != nil {
		s.metrics.EventError(ev.Kind.String())
		log.ErrorContext(ctx, "evaluate event", slog.String("error", err.Error()))
		return nil, err
	}

	verdict := Assess(*policy, ev.Kind, entry.RejoinCount, start.Sub(ev.AccountCreatedAt))
	s.metrics.ObserveEvent(ev.Kind.String(), verdict.Flagged, s.now().Sub(start))

	out := &Outcome{Verdict: verdict, Ledger: entry}
	if !verdict.Flagged {
		log.DebugContext(ctx, "event evaluated",
			slog.Int("rejoin_count", entry.RejoinCount),
			slog.Float64("account_age", verdict.AccountAge),
		)
		return out, nil
	}

	out.Alert = &domain.AlertRequest{
		ID:          uuid.New(),
		ScopeID:     ev.ScopeID,
		Subject:     ev.Subject,
		Kind:        ev.Kind,
		MetricValue: verdict.AccountAge,
		MetricUnit:  verdict.AgeUnit,
		RejoinCount: entry.RejoinCount,
		FieldOrder:  policy.FieldOrder,
		CreatedAt:   start,
	}

	out.Dispatch, err = s.dispatcher.Dispatch(ctx, policy, out.Alert)
	if err != nil {
		log.ErrorContext(ctx, "dispatch alert", slog.String("error", err.Error()))
		return out, fmt.Errorf("evaluate %s/%s: %w", ev.ScopeID, ev.Subject.ID, err)
	}

	log.InfoContext(ctx, "subject flagged",
		slog.Any("reasons", verdict.Reasons),
		slog.Int("rejoin_count", entry.RejoinCount),
		slog.Float64("account_age", verdict.AccountAge),
		slog.Int("delivered", out.Dispatch.DeliveredCount()),
		slog.Bool("no_channels", out.Dispatch.NoChannels),
	)
	return out, nil
}

// record loads the policy and updates the ledger under the subject's lock.
func (s *Service) record(ctx context.Context, ev domain.Event) (*domain.Policy, *domain.LedgerEntry, error) {
	unlock, err := s.locks.Lock(ctx, locker.Key(ev.ScopeID, ev.Subject.ID))
	if err != nil {
		return nil, nil, fmt.Errorf("lock subject: %w", err)
	}
	defer unlock()

	policy, err := s.policies.GetOrCreate(ctx, ev.ScopeID)
	if err != nil {
		return nil, nil, fmt.Errorf("load policy: %w", err)
	}

	entry, err := s.ledger.GetOrCreate(ctx, ev.ScopeID, ev.Subject.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load ledger: %w", err)
	}

	if countsEvent(ev.Kind, entry.RejoinCount) {
		entry, err = s.ledger.Increment(ctx, ev.ScopeID, ev.Subject.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("increment ledger: %w", err)
		}
	}

	return policy, entry, nil
}
