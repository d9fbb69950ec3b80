package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/polifund_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/polifund_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewPersistenceError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a committed transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewPersistenceError("failed to rollback transaction", err)
	}
	return nil
}

// queryError wraps a failed read as an internal error.
func queryError(what string, err error) error {
	return apperrors.NewAppError(500, fmt.Sprintf("failed to %s", what), err)
}

// notFoundOr maps pgx.ErrNoRows to a not-found error and anything else to a read failure.
func notFoundOr(err error, notFoundMsg, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	return queryError(what, err)
}
