// Package sqlerr maps driver-specific database errors onto a small set of
// sentinel errors so callers do not depend on a particular driver.
package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrUniqueViolation     = errors.New("unique constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
)

// ConstraintError is a constraint violation reported by the database.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v (%s): %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Is(target error) bool {
	return target == e.Kind
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// Classify converts err into one of the sentinel errors of this package when
// it recognises it, and returns it unchanged otherwise.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	code, constraint, ok := sqlState(err)
	if !ok {
		return err
	}

	switch code {
	case codeUniqueViolation:
		return &ConstraintError{Kind: ErrUniqueViolation, Constraint: constraint, Err: err}
	case codeForeignKeyViolation:
		return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: constraint, Err: err}
	}

	return err
}

func sqlState(err error) (code string, constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	return "", "", false
}
