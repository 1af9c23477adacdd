package service

import (
	"context"
	"time"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
)

// Processor runs a write action inside a database transaction.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	Dashboard   *DashboardService
}

// NewService creates a new Service reading from reader and writing through
// processor. Dates default to the server's local calendar day.
func NewService(reader *storage.Reader, processor Processor) *Service {
	return &Service{
		Category:    NewCategoryService(reader.Categories, processor),
		Transaction: NewTransactionService(reader.Transactions, processor, time.Now),
		Dashboard:   NewDashboardService(reader.Transactions, time.Now),
	}
}
