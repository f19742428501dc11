package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, table string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", table, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", // unique_violation
			"23502", // not_null_violation
			"42P01", // undefined_table
			"42703": // undefined_column
			return fmt.Errorf("%s: %w: %w", table, domain.ErrSchemaViolation, err)
		}
	}

	return fmt.Errorf("%s: %w: %w", table, domain.ErrStorage, err)
}
