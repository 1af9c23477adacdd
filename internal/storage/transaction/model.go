package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

const (
	TableName         = "transactions"
	ColumnID          = "id"
	ColumnCategoryID  = "category_id"
	ColumnTitle       = "title"
	ColumnAmount      = "amount"
	ColumnDate        = "date"
	ColumnNotes       = "notes"
	categoryTableName = "categories"
)

// Transaction represents a transaction record joined with its category name.
type Transaction struct {
	ID           int64           `db:"id"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Title        string          `db:"title"`
	Amount       decimal.Decimal `db:"amount"`
	Date         time.Time       `db:"date"`
	Notes        string          `db:"notes"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	CategoryID int64
	Title      string
	Amount     decimal.Decimal
	Date       time.Time
	Notes      string
}

// TransactionUpdate carries the columns to change. Unset values are left alone.
type TransactionUpdate struct {
	CategoryID omit.Val[int64]
	Title      omit.Val[string]
	Amount     omit.Val[decimal.Decimal]
	Date       omit.Val[time.Time]
	Notes      omit.Val[string]
}

// IsEmpty reports whether the update changes nothing.
func (u *TransactionUpdate) IsEmpty() bool {
	return u == nil ||
		(u.CategoryID.IsUnset() &&
			u.Title.IsUnset() &&
			u.Amount.IsUnset() &&
			u.Date.IsUnset() &&
			u.Notes.IsUnset())
}

// TransactionFilter specifies filters for listing transactions. Nil fields
// do not filter; set fields are combined with AND. Dates are inclusive.
type TransactionFilter struct {
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	CategoryName string          `db:"category_name"`
	Total        decimal.Decimal `db:"total"`
}

// MonthTotal is the summed amount of one calendar month. Month is the first
// day of that month.
type MonthTotal struct {
	Month time.Time       `db:"month"`
	Total decimal.Decimal `db:"total"`
}

// IReader defines read access to the transactions table.
type IReader interface {
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	SumBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	SumByCategoryBetween(ctx context.Context, start, end time.Time) ([]CategoryTotal, error)
	SumByMonth(ctx context.Context) ([]MonthTotal, error)
}

// IWriter defines transactional write access to the transactions table.
type IWriter interface {
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) error
	Delete(ctx context.Context, id int64) error
}
