package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

// DB is the part of *dbpg.DB the repositories depend on.
type DB interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	ExecWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (sql.Result, error)
	QueryWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (*sql.Row, error)
}

// querier is implemented by *sql.Tx; the ledger only ever runs on one.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func readStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

const pqUniqueViolation = "23505"

func uniqueViolation(err error) (string, bool) {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == pqUniqueViolation {
		return pgErr.Constraint, true
	}
	return "", false
}

type rowScanner interface {
	Scan(dest ...any) error
}
