package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/clocklog/internal/db"
)

// NewTestDB opens a migrated in-memory database that is closed with the
// test, together with its UnitOfWork.
func NewTestDB(t *testing.T) (*sql.DB, db.UnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

// FailingExecUoW runs transactions like the real UnitOfWork but fails the
// first ExecContext whose SQL contains Match, returning Err. Use it to check
// that a partly applied append is rolled back.
type FailingExecUoW struct {
	DB    *sql.DB
	Match string
	Err   error

	// Failed reports whether the statement was hit.
	Failed bool
}

func (u *FailingExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failingExec{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	uow *FailingExecUoW
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if !f.uow.Failed && strings.Contains(query, f.uow.Match) {
		f.uow.Failed = true
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
