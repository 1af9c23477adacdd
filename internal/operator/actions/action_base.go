package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/expense-server/internal/storage"
)

// ErrUnknownCategory is returned when a transaction references a category
// that does not exist.
var ErrUnknownCategory = errors.New("unknown category")

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
