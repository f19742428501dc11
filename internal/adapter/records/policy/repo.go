// Package policy stores per-scope watchlist policies in the servers and
// alerts tables of the record store.
package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/records"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

const (
	tableServers = "servers"
	tableAlerts  = "alerts"

	colScope       = "server_id"
	colAgeLimit    = "time_limit"
	colAgeUnit     = "time_unit"
	colRejoinLimit = "join_frequency"
	colFieldOrder  = "display_order"
	colEntities    = "entities"
	colChannels    = "channels"
)

// Tables lists the tables the repository reads and writes.
var Tables = []records.Table{
	{Name: tableServers, Columns: []string{colScope, colAgeLimit, colAgeUnit, colRejoinLimit, colFieldOrder}},
	{Name: tableAlerts, Columns: []string{colScope, colEntities, colChannels}},
}

// Repo provides policy persistence.
type Repo struct {
	store *records.Store
	log   *slog.Logger
}

// New creates a new policy repository.
func New(store *records.Store, logger *slog.Logger) *Repo {
	return &Repo{store: store, log: logger.With("repo", "policy")}
}

// GetOrCreate returns the scope's policy, creating it with defaults first
// when the scope has none.
func (r *Repo) GetOrCreate(ctx context.Context, scopeID string) (*domain.Policy, error) {
	def := domain.DefaultPolicy(scopeID)
	key := records.Key{colScope: scopeID}

	srv, err := r.store.FirstOrCreate(ctx, tableServers, key, serverValues(def))
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", scopeID, err)
	}
	al, err := r.store.FirstOrCreate(ctx, tableAlerts, key, alertValues(def))
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", scopeID, err)
	}

	p := r.decode(ctx, scopeID, srv, al)
	return &p, nil
}

// Get returns the scope's policy or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, scopeID string) (*domain.Policy, error) {
	key := records.Key{colScope: scopeID}

	srv, ok, err := r.store.First(ctx, tableServers, key)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", scopeID, err)
	}
	if !ok {
		return nil, fmt.Errorf("policy %s: %w", scopeID, domain.ErrNotFound)
	}
	al, ok, err := r.store.First(ctx, tableAlerts, key)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", scopeID, err)
	}
	if !ok {
		al = records.Record{}
	}

	p := r.decode(ctx, scopeID, srv, al)
	return &p, nil
}

// Update writes the non-nil fields of u and returns the stored policy.
// The policy must already exist.
func (r *Repo) Update(ctx context.Context, scopeID string, u domain.PolicyUpdate) (*domain.Policy, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	key := records.Key{colScope: scopeID}

	if set := serverUpdate(u); len(set) > 0 {
		n, err := r.store.Update(ctx, tableServers, key, set)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", scopeID, err)
		}
		if n == 0 {
			return nil, fmt.Errorf("policy %s: %w", scopeID, domain.ErrNotFound)
		}
	}
	if set := alertUpdate(u); len(set) > 0 {
		n, err := r.store.Update(ctx, tableAlerts, key, set)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", scopeID, err)
		}
		if n == 0 {
			return nil, fmt.Errorf("policy %s: %w", scopeID, domain.ErrNotFound)
		}
	}

	return r.Get(ctx, scopeID)
}

// Reset puts every policy field of the scope back to its default.
// Resetting a scope without a stored policy is a no-op.
func (r *Repo) Reset(ctx context.Context, scopeID string) error {
	def := domain.DefaultPolicy(scopeID)
	key := records.Key{colScope: scopeID}

	if _, err := r.store.Update(ctx, tableServers, key, serverValues(def)); err != nil {
		return fmt.Errorf("reset policy %s: %w", scopeID, err)
	}
	if _, err := r.store.Update(ctx, tableAlerts, key, alertValues(def)); err != nil {
		return fmt.Errorf("reset policy %s: %w", scopeID, err)
	}
	return nil
}

func serverValues(p domain.Policy) records.Values {
	return records.Values{
		colAgeLimit:    p.AgeThreshold,
		colAgeUnit:     p.AgeUnit,
		colRejoinLimit: p.RejoinThreshold,
		colFieldOrder:  p.FieldOrder.Strings(),
	}
}

func alertValues(p domain.Policy) records.Values {
	return records.Values{
		colEntities: p.EntityTokens(),
		colChannels: p.AlertChannels,
	}
}

func serverUpdate(u domain.PolicyUpdate) records.Values {
	set := records.Values{}
	if u.AgeThreshold != nil {
		set[colAgeLimit] = *u.AgeThreshold
	}
	if u.AgeUnit != nil {
		set[colAgeUnit] = *u.AgeUnit
	}
	if u.RejoinThreshold != nil {
		set[colRejoinLimit] = *u.RejoinThreshold
	}
	if u.FieldOrder != nil {
		set[colFieldOrder] = u.FieldOrder.Strings()
	}
	return set
}

func alertUpdate(u domain.PolicyUpdate) records.Values {
	set := records.Values{}
	if u.AlertEntities != nil {
		p := domain.Policy{AlertEntities: *u.AlertEntities}
		set[colEntities] = p.EntityTokens()
	}
	if u.AlertChannels != nil {
		set[colChannels] = *u.AlertChannels
	}
	return set
}

// decode builds a Policy from stored rows. Unreadable values fall back to
// the defaults and are logged.
func (r *Repo) decode(ctx context.Context, scopeID string, srv, al records.Record) domain.Policy {
	p := domain.DefaultPolicy(scopeID)

	if v, ok := srv.Float(colAgeLimit); ok && v >= 0 {
		p.AgeThreshold = v
	} else {
		r.invalid(ctx, scopeID, colAgeLimit, srv.String(colAgeLimit))
	}

	if u, ok := domain.ParseAgeUnit(srv.String(colAgeUnit)); ok {
		p.AgeUnit = u
	} else {
		r.invalid(ctx, scopeID, colAgeUnit, srv.String(colAgeUnit))
	}

	if n, ok := srv.Int(colRejoinLimit); ok && n >= 0 {
		p.RejoinThreshold = n
	} else {
		r.invalid(ctx, scopeID, colRejoinLimit, srv.String(colRejoinLimit))
	}

	if o, err := domain.ParseFieldOrder(srv.List(colFieldOrder)); err == nil {
		p.FieldOrder = o
	} else {
		r.invalid(ctx, scopeID, colFieldOrder, srv.String(colFieldOrder))
	}

	for _, tok := range al.List(colEntities) {
		p.AlertEntities = append(p.AlertEntities, domain.ParseMentionable(tok))
	}
	p.AlertChannels = append(p.AlertChannels, al.List(colChannels)...)

	return p
}

func (r *Repo) invalid(ctx context.Context, scopeID, col, raw string) {
	r.log.WarnContext(ctx, "invalid stored value, using default",
		slog.String("scope_id", scopeID),
		slog.String("column", col),
		slog.String("value", raw),
	)
}
