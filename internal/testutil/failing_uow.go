package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leten02/TimeGrid/internal/db"
)

// FailOnNthExecUoW runs transactions on DB but makes the FailOn-th write
// inside each transaction return Err. Writes are counted from 1; reads are
// never failed. Use it to check that a multi-block apply leaves nothing
// behind when one insert fails.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	// Execs is the number of writes attempted in the last transaction.
	Execs int
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	w := &countingTx{DBTX: tx, failOn: u.FailOn, err: u.Err}
	fnErr := fn(ctx, w)
	u.Execs = w.execs
	if fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type countingTx struct {
	db.DBTX
	execs  int
	failOn int
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.execs++
	if c.execs == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
