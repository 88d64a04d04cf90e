package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tasktrack-io/tasktrack/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// mapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for debugging. Constraint
// violations stay store-errors: the caller treats them as fatal for the
// request, never as client input problems.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("unique constraint violation (%s): %w", pgErr.ConstraintName, err)
		case notNullViolationCode:
			return fmt.Errorf("not null violation (%s): %w", pgErr.ColumnName, err)
		}
	}

	return err
}

// checkRowsAffected examines the number of rows affected by a write.
// Zero affected rows on UPDATE and DELETE means the target task does not
// exist, which maps to store.ErrTaskNotFound.
func checkRowsAffected(result sql.Result) error {
	if result == nil {
		return fmt.Errorf("nil result provided to checkRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}
