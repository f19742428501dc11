// Package ledger stores per-(scope, subject) join counters in the users
// table of the record store.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/records"
	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

const (
	tableUsers = "users"

	colScope   = "server_id"
	colSubject = "user_id"
	colCount   = "join_count"
)

// Tables lists the tables the repository reads and writes.
var Tables = []records.Table{
	{Name: tableUsers, Columns: []string{colScope, colSubject, colCount}},
}

// Repo provides ledger persistence.
type Repo struct {
	store *records.Store
	log   *slog.Logger
}

// New creates a new ledger repository.
func New(store *records.Store, logger *slog.Logger) *Repo {
	return &Repo{store: store, log: logger.With("repo", "ledger")}
}

// GetOrCreate returns the subject's entry, creating it with a zero count
// when absent.
func (r *Repo) GetOrCreate(ctx context.Context, scopeID, subjectID string) (*domain.LedgerEntry, error) {
	rec, err := r.store.FirstOrCreate(ctx, tableUsers, key(scopeID, subjectID), records.Values{colCount: 0})
	if err != nil {
		return nil, fmt.Errorf("ledger %s/%s: %w", scopeID, subjectID, err)
	}
	return r.decode(ctx, scopeID, subjectID, rec), nil
}

// Get returns the subject's entry without creating it, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, scopeID, subjectID string) (*domain.LedgerEntry, error) {
	rec, ok, err := r.store.First(ctx, tableUsers, key(scopeID, subjectID))
	if err != nil {
		return nil, fmt.Errorf("ledger %s/%s: %w", scopeID, subjectID, err)
	}
	if !ok {
		return nil, fmt.Errorf("ledger %s/%s: %w", scopeID, subjectID, domain.ErrNotFound)
	}
	return r.decode(ctx, scopeID, subjectID, rec), nil
}

// Increment adds one to the subject's count and returns the re-read entry.
// It is a read-modify-write; callers serialize per (scope, subject).
func (r *Repo) Increment(ctx context.Context, scopeID, subjectID string) (*domain.LedgerEntry, error) {
	entry, err := r.GetOrCreate(ctx, scopeID, subjectID)
	if err != nil {
		return nil, err
	}

	k := key(scopeID, subjectID)
	if _, err := r.store.Update(ctx, tableUsers, k, records.Values{colCount: entry.RejoinCount + 1}); err != nil {
		return nil, fmt.Errorf("ledger %s/%s: increment: %w", scopeID, subjectID, err)
	}

	rec, ok, err := r.store.First(ctx, tableUsers, k)
	if err != nil {
		return nil, fmt.Errorf("ledger %s/%s: %w", scopeID, subjectID, err)
	}
	if !ok {
		return nil, fmt.Errorf("ledger %s/%s: row missing after increment: %w", scopeID, subjectID, domain.ErrStorage)
	}
	return r.decode(ctx, scopeID, subjectID, rec), nil
}

// ResetAll zeroes every entry under the scope and returns how many changed.
func (r *Repo) ResetAll(ctx context.Context, scopeID string) (int64, error) {
	n, err := r.store.Update(ctx, tableUsers, records.Key{colScope: scopeID}, records.Values{colCount: 0})
	if err != nil {
		return 0, fmt.Errorf("ledger %s: reset: %w", scopeID, err)
	}
	return n, nil
}

func key(scopeID, subjectID string) records.Key {
	return records.Key{colScope: scopeID, colSubject: subjectID}
}

func (r *Repo) decode(ctx context.Context, scopeID, subjectID string, rec records.Record) *domain.LedgerEntry {
	n, ok := rec.Int(colCount)
	if !ok || n < 0 {
		r.log.WarnContext(ctx, "invalid join count, treating as zero",
			slog.String("scope_id", scopeID),
			slog.String("subject_id", subjectID),
			slog.String("value", rec.String(colCount)),
		)
		n = 0
	}
	return &domain.LedgerEntry{ScopeID: scopeID, SubjectID: subjectID, RejoinCount: n}
}
