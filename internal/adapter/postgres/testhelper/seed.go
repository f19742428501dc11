package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueScope returns a scope ID no other test uses, so tests sharing the
// container never see each other's rows.
func UniqueScope() string {
	return "scope-" + uuid.New().String()[:8]
}

// CountRows returns the number of rows in table matching server_id.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, scopeID string) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE server_id = $1`, scopeID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
