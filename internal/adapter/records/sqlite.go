package records

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/sqlite"
)

// NewSQLite returns a Store backed by a SQLite database. Queries join any
// transaction carried in the context by sqlite.TxManager.
func NewSQLite(db *sql.DB, logger *slog.Logger) *Store {
	return newStore(&sqliteConn{db: db}, sq.Question, logger)
}

type sqliteConn struct {
	db *sql.DB
}

func (c *sqliteConn) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := sqlite.QuerierFromCtx(ctx, c.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c *sqliteConn) query(ctx context.Context, query string, args []any) ([]Record, error) {
	rows, err := sqlite.QuerierFromCtx(ctx, c.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Record
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		rec := make(Record, len(cols))
		for i, col := range cols {
			rec[col] = vals[i].String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (c *sqliteConn) ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *sqliteConn) tableExists() string {
	return `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`
}

func (c *sqliteConn) mapError(err error, table string) error {
	return sqlite.MapError(err, table)
}
