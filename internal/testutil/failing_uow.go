package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/quadro/internal/db"
)

// FailOnNthExecUoW runs transactions like db.SQLiteUnitOfWork but makes the
// FailOn-th ExecContext call (1-based) return Err, so tests can break a
// multi-write use case at a precise step and assert that nothing persisted.
// Reads are never failed. Execs reports how many writes were attempted in
// the last transaction.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	Execs int
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	u.Execs = 0
	if err := fn(ctx, &failingTx{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow *FailOnNthExecUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.uow.Execs++
	if f.uow.Execs == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
