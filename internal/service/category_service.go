package service

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage/category"
)

// CategoryService handles category business logic.
type CategoryService struct {
	categories category.IReader
	operator   Processor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories category.IReader, operator Processor) *CategoryService {
	return &CategoryService{
		categories: categories,
		operator:   operator,
	}
}

// ListCategories returns every category ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = *categoryFromStorage(row)
	}
	return categories, nil
}

// GetCategory returns ErrNotFound if the category does not exist.
func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*Category, error) {
	row, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, translateStorageError(err, 0)
	}
	return categoryFromStorage(row), nil
}

// CreateCategory validates name and stores a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, name omit.Val[string]) (*Category, error) {
	trimmed, err := ValidateCategoryName(name)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateCategory{Name: trimmed}
	if err = s.operator.Process(ctx, action); err != nil {
		return nil, translateStorageError(err, 0)
	}
	return categoryFromStorage(action.Result), nil
}

// UpdateCategory renames a category. A full update requires name; a partial
// update without name leaves the category unchanged.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, name omit.Val[string], full bool) (*Category, error) {
	update := category.CategoryUpdate{}
	if name.IsValue() || full {
		trimmed, err := ValidateCategoryName(name)
		if err != nil {
			return nil, err
		}
		update.Name = omit.From(trimmed)
	}

	action := &actions.UpdateCategory{ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateStorageError(err, 0)
	}
	return categoryFromStorage(action.Result), nil
}

// DeleteCategory removes a category and, by cascade, its transactions.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	err := s.operator.Process(ctx, &actions.DeleteCategory{ID: id})
	return translateStorageError(err, 0)
}
