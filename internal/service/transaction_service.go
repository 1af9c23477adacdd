package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	transactions transaction.IReader
	operator     Processor
	now          func() time.Time
}

// NewTransactionService creates a new TransactionService. now supplies the
// default date of transactions created without one.
func NewTransactionService(transactions transaction.IReader, operator Processor, now func() time.Time) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		operator:     operator,
		now:          now,
	}
}

// ParseTransactionQuery validates the raw list filters.
func ParseTransactionQuery(q TransactionQuery) (*transaction.TransactionFilter, error) {
	verr := &ValidationError{}
	filter := &transaction.TransactionFilter{}

	if raw := strings.TrimSpace(q.Category); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr.add("category", msgFilterChoice)
		} else {
			filter.CategoryID = &id
		}
	}

	if raw := strings.TrimSpace(q.StartDate); raw != "" {
		if date, ok := ParseDate(raw); ok {
			filter.StartDate = &date
		} else {
			verr.add("start_date", msgFilterDate)
		}
	}

	if raw := strings.TrimSpace(q.EndDate); raw != "" {
		if date, ok := ParseDate(raw); ok {
			filter.EndDate = &date
		} else {
			verr.add("end_date", msgFilterDate)
		}
	}

	if err := verr.errOrNil(); err != nil {
		return nil, err
	}
	return filter, nil
}

// ListTransactions returns the transactions matching q, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, q TransactionQuery) ([]Transaction, error) {
	filter, err := ParseTransactionQuery(q)
	if err != nil {
		return nil, err
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return []Transaction{}, nil
	}

	rows, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = *transactionFromStorage(row)
	}
	return transactions, nil
}

// GetTransaction returns ErrNotFound if the transaction does not exist.
func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, translateStorageError(err, 0)
	}
	return transactionFromStorage(row), nil
}

// CreateTransaction validates in and stores a new transaction.
func (s *TransactionService) CreateTransaction(ctx context.Context, in TransactionInput) (*Transaction, error) {
	create, err := ValidateTransactionDraft(in, Today(s.now()))
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Create: create}
	if err = s.operator.Process(ctx, action); err != nil {
		return nil, translateStorageError(err, create.CategoryID)
	}
	return transactionFromStorage(action.Result), nil
}

// UpdateTransaction applies in to an existing transaction. A full update
// requires category, title and amount.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, in TransactionInput, full bool) (*Transaction, error) {
	update, err := ValidateTransactionPatch(in, full)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{ID: id, Update: update}
	if err = s.operator.Process(ctx, action); err != nil {
		return nil, translateStorageError(err, update.CategoryID.GetOrZero())
	}
	return transactionFromStorage(action.Result), nil
}

// DeleteTransaction returns ErrNotFound if the transaction does not exist.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	err := s.operator.Process(ctx, &actions.DeleteTransaction{ID: id})
	return translateStorageError(err, 0)
}
