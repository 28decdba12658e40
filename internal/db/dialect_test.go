package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`SELECT 1`, `SELECT 1`},
		{`SELECT * FROM tasks WHERE id = ?`, `SELECT * FROM tasks WHERE id = $1`},
		{`INSERT INTO t (a, b, c) VALUES (?, ?, ?)`, `INSERT INTO t (a, b, c) VALUES ($1, $2, $3)`},
		{`SELECT '?' AS q, id FROM t WHERE id = ?`, `SELECT '?' AS q, id FROM t WHERE id = $1`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Rebind(tc.in))
	}
}

func TestDialect_WrapSQLiteIsIdentity(t *testing.T) {
	conn := openTestDB(t)
	assert.Same(t, conn, DialectSQLite.Wrap(conn))
}

type recordingDBTX struct {
	DBTX
	queries []string
}

func (r *recordingDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return nil, nil
}

func TestDialect_WrapPostgresRewritesPlaceholders(t *testing.T) {
	rec := &recordingDBTX{}
	wrapped := DialectPostgres.Wrap(rec)

	_, err := wrapped.ExecContext(context.Background(), `UPDATE tasks SET title = ? WHERE id = ?`, "x", "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{`UPDATE tasks SET title = $1 WHERE id = $2`}, rec.queries)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("mysql", "x")
	assert.Error(t, err)
}

func TestOpen_SQLiteMemory(t *testing.T) {
	h, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	assert.Equal(t, DialectSQLite, h.Dialect)
	assert.Equal(t, "sqlite", h.Dialect.String())
}

func TestOpenPostgres_EmptyDSN(t *testing.T) {
	_, err := OpenPostgres("")
	assert.Error(t, err)
}
