package records

import (
	"context"
	"fmt"
)

// Table names a table and its text columns.
type Table struct {
	Name    string
	Columns []string
}

// EnsureTables runs EnsureTable for every table in order.
func (s *Store) EnsureTables(ctx context.Context, tables ...Table) error {
	for _, t := range tables {
		if _, err := s.EnsureTable(ctx, t.Name, t.Columns); err != nil {
			return fmt.Errorf("ensure table %s: %w", t.Name, err)
		}
	}
	return nil
}
