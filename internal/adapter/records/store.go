// Package records is a generic keyed-record store over text-only tables.
// It backs the policy and ledger repositories on either PostgreSQL or SQLite.
package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// conn is the dialect-specific half of the store.
type conn interface {
	exec(ctx context.Context, query string, args []any) (int64, error)
	query(ctx context.Context, query string, args []any) ([]Record, error)
	ping(ctx context.Context) error
	// tableExists is a one-placeholder query returning a row when the table exists.
	tableExists() string
	mapError(err error, table string) error
}

// Store executes keyed reads and writes against text-only tables.
type Store struct {
	conn conn
	sb   sq.StatementBuilderType
	log  *slog.Logger
}

func newStore(c conn, ph sq.PlaceholderFormat, logger *slog.Logger) *Store {
	return &Store{
		conn: c,
		sb:   sq.StatementBuilder.PlaceholderFormat(ph),
		log:  logger.With("adapter", "records"),
	}
}

// Ping checks that the backing database answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.ping(ctx)
}

// EnsureTable creates table with the given text columns if it does not
// exist yet. created reports whether this call created it.
func (s *Store) EnsureTable(ctx context.Context, table string, columns []string) (created bool, err error) {
	if err := checkIdent(table); err != nil {
		return false, err
	}
	if len(columns) == 0 {
		return false, domain.NewValidationError("columns", "at least one column required")
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		if err := checkIdent(col); err != nil {
			return false, err
		}
		defs[i] = quote(col) + " TEXT NOT NULL DEFAULT ''"
	}

	rows, err := s.conn.query(ctx, s.conn.tableExists(), []any{table})
	if err != nil {
		return false, s.conn.mapError(err, table)
	}
	if len(rows) > 0 {
		return false, nil
	}

	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quote(table), strings.Join(defs, ", "))
	if _, err := s.conn.exec(ctx, stmt, nil); err != nil {
		return false, s.conn.mapError(err, table)
	}

	s.log.InfoContext(ctx, "table created", slog.String("table", table))
	return true, nil
}

// Find returns every row of table matching key. An empty projection selects
// all columns; an empty key selects every row.
func (s *Store) Find(ctx context.Context, table string, projection []string, key Key) ([]Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}

	cols := []string{"*"}
	if len(projection) > 0 {
		cols = make([]string, len(projection))
		for i, c := range projection {
			if err := checkIdent(c); err != nil {
				return nil, err
			}
			cols[i] = quote(c)
		}
	}

	b := s.sb.Select(cols...).From(quote(table))
	if len(key) > 0 {
		eq, err := key.eq()
		if err != nil {
			return nil, err
		}
		b = b.Where(eq)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", table, err)
	}

	rows, err := s.conn.query(ctx, query, args)
	if err != nil {
		return nil, s.conn.mapError(err, table)
	}
	return rows, nil
}

// First returns the first row matching key. More than one match is logged
// and the first row wins.
func (s *Store) First(ctx context.Context, table string, key Key) (Record, bool, error) {
	rows, err := s.Find(ctx, table, nil, key)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	if len(rows) > 1 {
		s.log.WarnContext(ctx, "multiple rows for key, using first",
			slog.String("table", table),
			slog.Int("rows", len(rows)),
			slog.Any("key", key),
		)
	}
	return rows[0], true, nil
}

// Insert writes one row. Unknown columns and unique-key collisions fail
// with domain.ErrSchemaViolation.
func (s *Store) Insert(ctx context.Context, table string, values Values) error {
	if err := checkIdent(table); err != nil {
		return err
	}
	if len(values) == 0 {
		return domain.NewValidationError("values", "at least one column required")
	}

	set, err := values.setMap()
	if err != nil {
		return err
	}

	query, args, err := s.sb.Insert(quote(table)).SetMap(set).ToSql()
	if err != nil {
		return fmt.Errorf("%s: build insert: %w", table, err)
	}

	if _, err := s.conn.exec(ctx, query, args); err != nil {
		return s.conn.mapError(err, table)
	}
	return nil
}

// Update sets columns on every row matching key and returns the number of
// rows changed. Zero matches is not an error and never creates a row.
func (s *Store) Update(ctx context.Context, table string, key Key, set Values) (int64, error) {
	if err := checkIdent(table); err != nil {
		return 0, err
	}
	if len(key) == 0 {
		return 0, domain.NewValidationError("key", "update requires a key")
	}
	if len(set) == 0 {
		return 0, domain.NewValidationError("set", "at least one column required")
	}

	eq, err := key.eq()
	if err != nil {
		return 0, err
	}
	setMap, err := set.setMap()
	if err != nil {
		return 0, err
	}

	query, args, err := s.sb.Update(quote(table)).SetMap(setMap).Where(eq).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build update: %w", table, err)
	}

	n, err := s.conn.exec(ctx, query, args)
	if err != nil {
		return 0, s.conn.mapError(err, table)
	}
	return n, nil
}

// Delete removes every row matching key and returns how many were removed.
func (s *Store) Delete(ctx context.Context, table string, key Key) (int64, error) {
	if err := checkIdent(table); err != nil {
		return 0, err
	}
	if len(key) == 0 {
		return 0, domain.NewValidationError("key", "delete requires a key")
	}

	eq, err := key.eq()
	if err != nil {
		return 0, err
	}

	query, args, err := s.sb.Delete(quote(table)).Where(eq).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build delete: %w", table, err)
	}

	n, err := s.conn.exec(ctx, query, args)
	if err != nil {
		return 0, s.conn.mapError(err, table)
	}
	return n, nil
}

// FirstOrCreate reads the row for key, inserting key+defaults when absent.
// The read is retried exactly once after the insert. A schema violation on
// insert is tolerated when the re-read finds the row (another writer got
// there first) and returned otherwise.
func (s *Store) FirstOrCreate(ctx context.Context, table string, key Key, defaults Values) (Record, error) {
	rec, ok, err := s.First(ctx, table, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return rec, nil
	}

	row := make(Values, len(key)+len(defaults))
	for c, v := range defaults {
		row[c] = v
	}
	for c, v := range key {
		row[c] = v
	}

	insertErr := s.Insert(ctx, table, row)
	if insertErr != nil {
		if !errors.Is(insertErr, domain.ErrSchemaViolation) {
			return nil, insertErr
		}
		s.log.DebugContext(ctx, "insert rejected, re-reading",
			slog.String("table", table), slog.String("error", insertErr.Error()))
	}

	rec, ok, err = s.First(ctx, table, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		// No other writer created the row: the schema itself refused it.
		if insertErr != nil {
			return nil, insertErr
		}
		return nil, fmt.Errorf("%s: row missing after insert: %w", table, domain.ErrStorage)
	}
	return rec, nil
}
