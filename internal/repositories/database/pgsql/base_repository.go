package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gunarwibowo/erp_backoffice_app/internal/apperrors"
	"github.com/gunarwibowo/erp_backoffice_app/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so query helpers can run
// inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txStarter abstracts the pool's Begin for the transaction helpers.
type txStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BaseRepository provides common transaction management for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back an already-completed
// transaction is not an error.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !txCompleted(err) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// RunInTx executes fn inside a transaction: commit on nil return, rollback and
// re-raise fn's error unchanged otherwise.
func (r *BaseRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return runInTx(ctx, r.Pool, fn, nil)
}

// RunInTxWithHandler behaves like RunInTx but invokes onErr after rollback and
// before re-raising, for custom cleanup or logging. onErr cannot suppress the
// original error.
func (r *BaseRepository) RunInTxWithHandler(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error, onErr func(ctx context.Context, err error, tx pgx.Tx)) error {
	return runInTx(ctx, r.Pool, fn, onErr)
}

// SafeRollback rolls back unless the transaction already completed. Rollback
// failures are logged, never returned, so they cannot mask the error that
// triggered the rollback.
func (r *BaseRepository) SafeRollback(ctx context.Context, tx pgx.Tx) {
	safeRollback(ctx, tx)
}

// SafeCommit commits unless the transaction already completed. A real commit
// failure is returned; it is not safe to ignore.
func (r *BaseRepository) SafeCommit(ctx context.Context, tx pgx.Tx) error {
	err := tx.Commit(ctx)
	if err == nil || txCompleted(err) {
		return nil
	}
	return apperrors.NewAppError(500, "failed to commit transaction", err)
}

func runInTx(ctx context.Context, db txStarter, fn func(ctx context.Context, tx pgx.Tx) error, onErr func(ctx context.Context, err error, tx pgx.Tx)) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// Also rolls back when fn panics; after a commit or an earlier rollback
	// the transaction is completed and this is a no-op.
	defer safeRollback(ctx, tx)

	if err := fn(ctx, tx); err != nil {
		safeRollback(ctx, tx)
		if onErr != nil {
			onErr(ctx, err, tx)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

func safeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !txCompleted(err) {
		// Connectivity failures during rollback are logged here, at the
		// runner boundary, and nowhere else.
		middleware.GetLoggerFromCtx(ctx).Error("transaction rollback failed", slog.String("error", err.Error()))
	}
}

// txCompleted reports whether err indicates the transaction was already
// committed or rolled back.
func txCompleted(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed) || errors.Is(err, sql.ErrTxDone)
}

// mapWriteError converts storage errors from insert/update statements into
// application errors, surfacing unique constraint violations as ErrDuplicate
// so callers can retry generated identifiers.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
	}
	return apperrors.NewAppError(500, msg, err)
}
