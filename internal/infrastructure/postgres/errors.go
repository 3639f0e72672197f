package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/users-api/internal/domain/repository"
)

// SQLSTATE class 23: integrity constraint violation
const integrityViolationClass = "23"

// mapError translates driver and pool errors into repository errors.
// Unclassified errors are returned unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	if errors.Is(err, ErrAcquireTimeout) {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityViolationClass) {
		return &constraintError{pg: pgErr}
	}
	return err
}

type constraintError struct {
	pg *pgconn.PgError
}

func (e *constraintError) Error() string {
	if e.pg.ConstraintName != "" {
		return fmt.Sprintf("%s (constraint %s, SQLSTATE %s)", e.pg.Message, e.pg.ConstraintName, e.pg.Code)
	}
	return fmt.Sprintf("%s (SQLSTATE %s)", e.pg.Message, e.pg.Code)
}

func (e *constraintError) Is(target error) bool { return target == repository.ErrConstraint }

func (e *constraintError) Unwrap() error { return e.pg }
