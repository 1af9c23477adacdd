package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/category"
)

type CreateCategory struct {
	Name string

	Result *category.Category
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Categories.Insert(ctx, &category.CategoryCreate{Name: c.Name})
	if err != nil {
		return err
	}

	c.Result, err = writer.Categories.FindByID(ctx, id)
	return err
}

type UpdateCategory struct {
	ID     int64
	Update category.CategoryUpdate

	Result *category.Category
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Categories.Update(ctx, u.ID, &u.Update); err != nil {
		return err
	}

	var err error
	u.Result, err = writer.Categories.FindByID(ctx, u.ID)
	return err
}

type DeleteCategory struct {
	ID int64
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Delete(ctx, d.ID)
}
