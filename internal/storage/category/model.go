package category

import (
	"context"

	"github.com/aarondl/opt/omit"
)

const (
	TableName  = "categories"
	ColumnID   = "id"
	ColumnName = "name"
)

// Category represents a category record.
type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name string
}

// CategoryUpdate carries the columns to change. Unset values are left alone.
type CategoryUpdate struct {
	Name omit.Val[string]
}

// IsEmpty reports whether the update changes nothing.
func (u *CategoryUpdate) IsEmpty() bool {
	return u == nil || u.Name.IsUnset()
}

// IReader defines read access to the categories table.
type IReader interface {
	List(ctx context.Context) ([]*Category, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
}

// IWriter defines transactional write access to the categories table.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *CategoryCreate) (int64, error)
	Update(ctx context.Context, id int64, update *CategoryUpdate) error
	Delete(ctx context.Context, id int64) error
}
