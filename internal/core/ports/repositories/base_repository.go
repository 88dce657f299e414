package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error

	// RunInTx executes fn inside a transaction, committing on a nil return and
	// rolling back (and re-raising fn's error unchanged) otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error

	// RunInTxWithHandler behaves like RunInTx but invokes onErr after rollback
	// and before re-raising. onErr is for cleanup and logging; it cannot
	// suppress the original error.
	RunInTxWithHandler(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error, onErr func(ctx context.Context, err error, tx pgx.Tx)) error

	// SafeRollback rolls back only if the transaction has not already
	// completed. Errors from the rollback attempt are logged, never returned.
	SafeRollback(ctx context.Context, tx pgx.Tx)

	// SafeCommit commits only if the transaction has not already completed.
	// A failed commit is returned; it is not safe to ignore.
	SafeCommit(ctx context.Context, tx pgx.Tx) error
}

// RepositoryWithTx is a marker interface for repositories that support transactions.
type RepositoryWithTx interface {
	TransactionManager
}
