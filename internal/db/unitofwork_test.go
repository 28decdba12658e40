package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/leten02/TimeGrid/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertBlock = `INSERT INTO schedule_blocks (id, title, start_at, end_at, created_at)
	VALUES (?, ?, '2025-06-16T09:00:00Z', '2025-06-16T10:00:00Z', '2025-06-15T00:00:00Z')`

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func countBlocks(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM schedule_blocks`).Scan(&n))
	return n
}

func TestWithinTx_CommitsEveryWrite(t *testing.T) {
	database := openMigrated(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		for _, id := range []string{"b1", "b2"} {
			if _, err := tx.ExecContext(ctx, insertBlock, id, "Essay"); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countBlocks(t, database))
}

func TestWithinTx_PartialPlanRollsBack(t *testing.T) {
	database := openMigrated(t)
	uow := db.NewSQLiteUnitOfWork(database)
	stop := errors.New("second placement rejected")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertBlock, "b1", "Essay"); err != nil {
			return err
		}
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Zero(t, countBlocks(t, database))
}

func TestWithinTx_ConstraintViolationRollsBack(t *testing.T) {
	database := openMigrated(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertBlock, "dup", "Essay"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertBlock, "dup", "Essay again")
		return err
	})
	require.Error(t, err)
	assert.Zero(t, countBlocks(t, database))
}

func TestWithinTx_PanicRollsBackAndRepanics(t *testing.T) {
	database := openMigrated(t)
	uow := db.NewSQLiteUnitOfWork(database)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertBlock, "b1", "Essay")
			panic("boom")
		})
	})
	assert.Zero(t, countBlocks(t, database))
}

func TestHandle_UnitOfWorkUsesHandleDialect(t *testing.T) {
	h, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	assert.Equal(t, db.DialectSQLite, h.Dialect)

	err = h.UnitOfWork().WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertBlock, "b1", "Lecture")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countBlocks(t, h.DB))
}
