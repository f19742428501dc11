package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/watchlist-backend/internal/adapter/records"
	"github.com/heartmarshall/watchlist-backend/internal/adapter/records/ledger"
	"github.com/heartmarshall/watchlist-backend/internal/adapter/records/policy"
	"github.com/heartmarshall/watchlist-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/watchlist-backend/internal/config"
	"github.com/heartmarshall/watchlist-backend/migrations"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage is an open record store with its transaction manager and the
// database/sql handle goose migrates through.
type Storage struct {
	Store *records.Store
	Tx    txManager

	migrator *goose.Provider
	closers  []func()
}

// OpenStorage connects to the configured backend. Nothing is migrated.
func OpenStorage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := postgres.SQLDB(pool)
		s := &Storage{
			Store:   records.NewPostgres(pool, logger),
			Tx:      postgres.NewTxManager(pool),
			closers: []func(){func() { _ = db.Close() }, pool.Close},
		}
		if err := s.initMigrator(goose.DialectPostgres, db); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s := &Storage{
			Store:   records.NewSQLite(db, logger),
			Tx:      sqlite.NewTxManager(db),
			closers: []func(){func() { _ = db.Close() }},
		}
		if err := s.initMigrator(goose.DialectSQLite3, db); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func (s *Storage) initMigrator(dialect goose.Dialect, db *sql.DB) error {
	p, err := goose.NewProvider(dialect, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	s.migrator = p
	return nil
}

// MigrateUp applies every pending migration.
func (s *Storage) MigrateUp(ctx context.Context) ([]*goose.MigrationResult, error) {
	res, err := s.migrator.Up(ctx)
	if err != nil {
		return res, fmt.Errorf("migrate up: %w", err)
	}
	return res, nil
}

// MigrateDown rolls back the most recent migration.
func (s *Storage) MigrateDown(ctx context.Context) (*goose.MigrationResult, error) {
	res, err := s.migrator.Down(ctx)
	if err != nil {
		return res, fmt.Errorf("migrate down: %w", err)
	}
	return res, nil
}

// MigrationStatus lists every known migration and whether it is applied.
func (s *Storage) MigrationStatus(ctx context.Context) ([]*goose.MigrationStatus, error) {
	st, err := s.migrator.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration status: %w", err)
	}
	return st, nil
}

// EnsureSchema creates any repository table missing from the store.
// Migrations normally cover them; this catches databases migrated by hand.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	return s.Store.EnsureTables(ctx, slices.Concat(policy.Tables, ledger.Tables)...)
}

// Ping checks the store connection.
func (s *Storage) Ping(ctx context.Context) error {
	return s.Store.Ping(ctx)
}

// Close releases every connection. Safe to call more than once.
func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
