package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/transaction"
)

// Category represents a category in the service layer.
type Category struct {
	ID   int64
	Name string
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID           int64
	CategoryID   int64
	CategoryName string
	Title        string
	Amount       decimal.Decimal
	Date         time.Time
	Notes        string
}

// TransactionQuery holds the raw list filters from the query string. Empty
// strings do not filter.
type TransactionQuery struct {
	Category  string
	StartDate string
	EndDate   string
}

// CategoryTotal is the spending of one category.
type CategoryTotal struct {
	CategoryName string
	Total        decimal.Decimal
}

// MonthTotal is the spending of one calendar month.
type MonthTotal struct {
	Month time.Time
	Total decimal.Decimal
}

// Dashboard summarizes current-month spending and all-time monthly totals.
type Dashboard struct {
	MonthStart time.Time
	Today      time.Time
	TotalSpent decimal.Decimal
	ByCategory []CategoryTotal
	ByMonth    []MonthTotal
}

func categoryFromStorage(row *category.Category) *Category {
	return &Category{ID: row.ID, Name: row.Name}
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	return &Transaction{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Title:        row.Title,
		Amount:       row.Amount,
		Date:         row.Date,
		Notes:        row.Notes,
	}
}
