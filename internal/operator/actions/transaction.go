package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlerr"
	"github.com/carson-networks/expense-server/internal/storage/transaction"
)

type CreateTransaction struct {
	Create transaction.TransactionCreate

	Result *transaction.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := requireCategory(ctx, writer, c.Create.CategoryID); err != nil {
		return err
	}

	id, err := writer.Transactions.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}

	c.Result, err = writer.Transactions.FindByID(ctx, id)
	return err
}

type UpdateTransaction struct {
	ID     int64
	Update transaction.TransactionUpdate

	Result *transaction.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Transactions.FindByID(ctx, u.ID); err != nil {
		return err
	}

	if categoryID, ok := u.Update.CategoryID.Get(); ok {
		if err := requireCategory(ctx, writer, categoryID); err != nil {
			return err
		}
	}

	if err := writer.Transactions.Update(ctx, u.ID, &u.Update); err != nil {
		return err
	}

	var err error
	u.Result, err = writer.Transactions.FindByID(ctx, u.ID)
	return err
}

type DeleteTransaction struct {
	ID int64
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, d.ID)
}

func requireCategory(ctx context.Context, writer *storage.Writer, id int64) error {
	_, err := writer.Categories.FindByID(ctx, id)
	if errors.Is(err, sqlerr.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, id)
	}
	return err
}
