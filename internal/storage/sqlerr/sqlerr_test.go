package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, Classify(nil))
}

func TestClassify_NoRows(t *testing.T) {
	err := Classify(fmt.Errorf("find category: %w", sql.ErrNoRows))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClassify_PqUniqueViolation(t *testing.T) {
	err := Classify(&pq.Error{Code: "23505", Constraint: "categories_name_key"})

	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.NotErrorIs(t, err, ErrForeignKeyViolation)

	var constraintErr *ConstraintError
	assert.True(t, errors.As(err, &constraintErr))
	assert.Equal(t, "categories_name_key", constraintErr.Constraint)
}

func TestClassify_PgxForeignKeyViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert transaction: %w", &pgconn.PgError{Code: "23503", ConstraintName: "transactions_category_id_fkey"})

	err := Classify(wrapped)

	assert.ErrorIs(t, err, ErrForeignKeyViolation)
	var constraintErr *ConstraintError
	assert.True(t, errors.As(err, &constraintErr))
	assert.Equal(t, "transactions_category_id_fkey", constraintErr.Constraint)
}

func TestClassify_OtherDriverError(t *testing.T) {
	original := &pq.Error{Code: "42P01"}

	assert.Same(t, error(original), Classify(original))
}

func TestClassify_UnknownError(t *testing.T) {
	original := errors.New("connection reset")

	assert.Equal(t, original, Classify(original))
}
