package settings

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// ApplyAlertAction runs an Add, List or Remove alert command.
func (s *Service) ApplyAlertAction(ctx context.Context, input AlertActionInput) (*Confirmation, error) {
	action, err := input.parse()
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionAdd:
		return s.AddAlertDestination(ctx, input.ScopeID, input.ChannelID, input.Target)
	case ActionRemove:
		return s.RemoveAlertDestination(ctx, input.ScopeID, input.ChannelID, input.Target)
	default:
		return s.ListAlertDestinations(ctx, input.ScopeID)
	}
}

// AddAlertDestination appends a channel or entity to the scope's alert lists.
func (s *Service) AddAlertDestination(ctx context.Context, scopeID, invokingChannel string, t Target) (*Confirmation, error) {
	return s.changeDestination(ctx, ActionAdd, scopeID, invokingChannel, t)
}

// RemoveAlertDestination drops a channel or entity from the scope's alert lists.
func (s *Service) RemoveAlertDestination(ctx context.Context, scopeID, invokingChannel string, t Target) (*Confirmation, error) {
	return s.changeDestination(ctx, ActionRemove, scopeID, invokingChannel, t)
}

func (s *Service) changeDestination(ctx context.Context, action AlertAction, scopeID, invokingChannel string, t Target) (*Confirmation, error) {
	if scopeID == "" {
		return nil, domain.NewValidationError("scope_id", "required")
	}
	if err := t.validate(); err != nil {
		return nil, err
	}

	// Rows are created outside the transaction: on postgres a lost insert
	// race aborts the enclosing transaction, so the re-read would fail.
	if _, err := s.policies.GetOrCreate(ctx, scopeID); err != nil {
		return nil, fmt.Errorf("ensure policy: %w", err)
	}

	var updated *domain.Policy
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.policies.GetOrCreate(txCtx, scopeID)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}

		u, err := destinationUpdate(p, action, t)
		if err != nil {
			return err
		}

		updated, err = s.policies.Update(txCtx, scopeID, u)
		if err != nil {
			return fmt.Errorf("update policy: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	verb, prep := "Added", "to"
	if action == ActionRemove {
		verb, prep = "Removed", "from"
	}

	s.log.InfoContext(ctx, "alert destination changed",
		slog.String("scope_id", scopeID),
		slog.String("action", string(action)),
		slog.String("type", t.TypeName()),
		slog.String("target", t.Marker()),
	)

	msg := fmt.Sprintf("- %s %s: %s %s Watchlist-Alert list.", verb, t.TypeName(), t.Marker(), prep)
	return s.announce(ctx, updated, msg, invokingChannel)
}

// destinationUpdate computes the new list for action on p.
func destinationUpdate(p *domain.Policy, action AlertAction, t Target) (domain.PolicyUpdate, error) {
	if t.Entity != nil {
		entities := slices.Clone(p.AlertEntities)
		idx := p.EntityIndex(t.Entity.ID)
		switch {
		case action == ActionAdd && idx >= 0:
			return domain.PolicyUpdate{}, alreadyListed(t)
		case action == ActionAdd:
			entities = append(entities, *t.Entity)
		case idx < 0:
			return domain.PolicyUpdate{}, notListed(t)
		default:
			entities = slices.Delete(entities, idx, idx+1)
		}
		return domain.PolicyUpdate{AlertEntities: &entities}, nil
	}

	channels := slices.Clone(p.AlertChannels)
	idx := slices.Index(channels, t.Channel)
	switch {
	case action == ActionAdd && idx >= 0:
		return domain.PolicyUpdate{}, alreadyListed(t)
	case action == ActionAdd:
		channels = append(channels, t.Channel)
	case idx < 0:
		return domain.PolicyUpdate{}, notListed(t)
	default:
		channels = slices.Delete(channels, idx, idx+1)
	}
	return domain.PolicyUpdate{AlertChannels: &channels}, nil
}

func alreadyListed(t Target) error {
	return domain.NewValidationError("target",
		fmt.Sprintf("DuplicateEntryError: The %s %s is already on the Watchlist-Alert list!", t.TypeName(), t.Marker()))
}

func notListed(t Target) error {
	return domain.NewValidationError("target",
		fmt.Sprintf("MissingEntryError: The %s %s is not on the Watchlist-Alert list!", t.TypeName(), t.Marker()))
}

// ListAlertDestinations answers privately with the scope's alert lists.
func (s *Service) ListAlertDestinations(ctx context.Context, scopeID string) (*Confirmation, error) {
	if scopeID == "" {
		return nil, domain.NewValidationError("scope_id", "required")
	}
	p, err := s.policies.GetOrCreate(ctx, scopeID)
	if err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}
	return &Confirmation{Message: DestinationsText(p)}, nil
}

// DestinationsText renders the alert lists of p.
func DestinationsText(p *domain.Policy) string {
	channels := make([]string, len(p.AlertChannels))
	for i, id := range p.AlertChannels {
		channels[i] = domain.ChannelMention(id)
	}
	entities := make([]string, len(p.AlertEntities))
	for i, m := range p.AlertEntities {
		entities[i] = m.Mention()
	}

	var b strings.Builder
	b.WriteString("**Watchlist-Alert list:**")
	b.WriteString("\n- Channels: " + joinOrNone(channels))
	b.WriteString("\n- Entities: " + joinOrNone(entities))
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "_none_"
	}
	return strings.Join(items, ", ")
}
