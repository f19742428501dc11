package records

import (
	"context"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/postgres"
)

// NewPostgres returns a Store backed by a pgx pool. Queries join any
// transaction carried in the context by postgres.TxManager.
func NewPostgres(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return newStore(&pgConn{pool: pool}, sq.Dollar, logger)
}

type pgConn struct {
	pool *pgxpool.Pool
}

func (c *pgConn) exec(ctx context.Context, query string, args []any) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, c.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (c *pgConn) query(ctx context.Context, query string, args []any) ([]Record, error) {
	rows, err := postgres.QuerierFromCtx(ctx, c.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []Record
	for rows.Next() {
		vals := make([]pgtype.Text, len(fields))
		dest := make([]any, len(fields))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		rec := make(Record, len(fields))
		for i, f := range fields {
			rec[f.Name] = vals[i].String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (c *pgConn) ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *pgConn) tableExists() string {
	return `SELECT table_name::text AS name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name::text = $1`
}

func (c *pgConn) mapError(err error, table string) error {
	return postgres.MapError(err, table)
}
