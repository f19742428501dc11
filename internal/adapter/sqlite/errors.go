package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// MapError converts driver errors to domain errors.
// Context errors pass through unmapped.
func MapError(err error, table string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", table, err)
	}

	if isSchemaViolation(err) {
		return fmt.Errorf("%s: %w: %w", table, domain.ErrSchemaViolation, err)
	}

	return fmt.Errorf("%s: %w: %w", table, domain.ErrStorage, err)
}

func isSchemaViolation(err error) bool {
	var sqlErr *sqlite.Error
	if errors.As(err, &sqlErr) && sqlErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return true
	}
	// Unknown tables and columns come back as a plain SQLITE_ERROR.
	msg := err.Error()
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "has no column named")
}
