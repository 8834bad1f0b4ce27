package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/wb-go/wbf/retry"
)

// sqlDB adapts a plain *sql.DB to the DB interface without retries.
type sqlDB struct {
	*sql.DB
}

func (d sqlDB) ExecWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (sql.Result, error) {
	return d.ExecContext(ctx, query, args...)
}

func (d sqlDB) QueryWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (*sql.Rows, error) {
	return d.QueryContext(ctx, query, args...)
}

func (d sqlDB) QueryRowWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (*sql.Row, error) {
	return d.QueryRowContext(ctx, query, args...), nil
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}
