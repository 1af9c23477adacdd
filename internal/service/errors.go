package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage/sqlerr"
)

// ErrNotFound is returned when the addressed category or transaction does
// not exist.
var ErrNotFound = errors.New("not found")

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every invalid field of one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// errOrNil returns e as an error only when it holds field errors.
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

const (
	msgRequired       = "This field is required."
	msgBlank          = "This field may not be blank."
	msgCategoryExists = "category with this name already exists."
	msgInvalidDate    = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgInvalidNumber  = "A valid number is required."
	msgFilterDate     = "Enter a valid date."
	msgFilterChoice   = "Select a valid choice. That choice is not one of the available choices."
)

func msgMaxLength(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}

func msgUnknownCategory(id int64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

// translateStorageError maps storage and operator faults onto ErrNotFound and
// ValidationError. Other errors are returned unchanged.
func translateStorageError(err error, categoryID int64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, actions.ErrUnknownCategory), errors.Is(err, sqlerr.ErrForeignKeyViolation):
		return newValidationError("category", msgUnknownCategory(categoryID))
	case errors.Is(err, sqlerr.ErrUniqueViolation):
		return newValidationError("name", msgCategoryExists)
	case errors.Is(err, sqlerr.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	default:
		return err
	}
}
