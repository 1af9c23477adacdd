package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/transaction"
)

// Finisher ends a database transaction.
type Finisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the table writers that share one database transaction.
type Writer struct {
	tx           Finisher
	Categories   category.IWriter
	Transactions transaction.IWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return ComposeWriter(tx, category.NewWriter(tx), transaction.NewWriter(tx))
}

// ComposeWriter builds a Writer from its parts. Tests use it to substitute
// the transaction and table writers.
func ComposeWriter(tx Finisher, categories category.IWriter, transactions transaction.IWriter) *Writer {
	return &Writer{
		tx:           tx,
		Categories:   categories,
		Transactions: transactions,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
