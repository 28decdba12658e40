package db

import (
	"context"
	"database/sql"
)

// DBTX is what the repositories run their queries on. A plain connection and
// a transaction both satisfy it, so the same repository type serves reads
// and the writes made inside WithinTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLite uses these directly. Postgres gets them through Dialect.Wrap.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
