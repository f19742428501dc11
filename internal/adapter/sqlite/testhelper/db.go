package testhelper

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/watchlist-backend/migrations"
)

// OpenTestDB opens a fresh SQLite file in t.TempDir and applies migrations.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := OpenEmptyDB(t)

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		t.Fatalf("testhelper: goose new provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("testhelper: goose up: %v", err)
	}
	return db
}

// OpenEmptyDB opens a fresh SQLite file without applying migrations.
func OpenEmptyDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "watchlist.db"))
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
