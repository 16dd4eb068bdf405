package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
)

// BaseRepository provides the shared pool handle and transaction helpers.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// mapWriteError converts driver errors from insert/update statements into
// app errors: unique violations become ErrDuplicate, everything else is
// wrapped with the action description.
func mapWriteError(err error, action string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("failed to %s: %w", action, apperrors.ErrDuplicate)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// requireRow maps a zero-rows-affected mutation to ErrNotFound. An in-scope
// row always matches its ownership predicate, so zero rows means the target
// is missing or belongs to another tenant.
func requireRow(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s not found or out of scope: %w", what, apperrors.ErrNotFound)
	}
	return nil
}
