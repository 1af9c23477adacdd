package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/transaction"
)

type Reader struct {
	Categories   *category.Reader
	Transactions *transaction.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec),
	}
}
