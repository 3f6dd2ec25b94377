package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/quadro/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

const insertProject = `INSERT INTO projects (id, name, status, color, created_at, updated_at)
	VALUES (?, ?, 'active', '#3b82f6', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`

func projectExists(t *testing.T, database *sql.DB, id string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM projects WHERE id = ?`, id).Scan(&n))
	return n == 1
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertProject, "p1", "Home")
		return err
	})
	require.NoError(t, err)
	assert.True(t, projectExists(t, database, "p1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertProject, "p2", "Home"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, projectExists(t, database, "p2"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertProject, "p3", "Home")
			panic("boom")
		})
	})
	assert.False(t, projectExists(t, database, "p3"))
}

func TestWithinTx_ConstraintViolationRollsBackEarlierWrites(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertProject, "p4", "Home"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO projects (id, name, status, color, created_at, updated_at)
			VALUES ('p5', 'Bad', 'archived', '#000000', '', '')`)
		return err
	})
	require.Error(t, err)
	assert.False(t, projectExists(t, database, "p4"))
}
