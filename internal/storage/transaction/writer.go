package transaction

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/expense-server/internal/storage/sqlerr"
)

var _ IWriter = (*Writer)(nil)

type Writer struct {
	exec bob.Executor
	Reader
}

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{
		exec: exec,
		Reader: Reader{
			exec: exec,
		},
	}
}

// Insert creates a new transaction and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	query := psql.Insert(
		im.Into(TableName, ColumnCategoryID, ColumnTitle, ColumnAmount, ColumnDate, ColumnNotes),
		im.Values(
			psql.Arg(create.CategoryID),
			psql.Arg(create.Title),
			psql.Arg(create.Amount),
			dateArg(create.Date),
			psql.Arg(create.Notes),
		),
		im.Returning(ColumnID),
	)

	id, err := bob.One(ctx, w.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", sqlerr.Classify(err))
	}
	return id, nil
}

// Update applies the set fields of update. An empty update only checks that
// the row exists.
func (w *Writer) Update(ctx context.Context, id int64, update *TransactionUpdate) error {
	if update.IsEmpty() {
		_, err := w.FindByID(ctx, id)
		return err
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(TableName),
	}
	if categoryID, ok := update.CategoryID.Get(); ok {
		queryMods = append(queryMods, um.SetCol(ColumnCategoryID).ToArg(categoryID))
	}
	if title, ok := update.Title.Get(); ok {
		queryMods = append(queryMods, um.SetCol(ColumnTitle).ToArg(title))
	}
	if amount, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol(ColumnAmount).ToArg(amount))
	}
	if date, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol(ColumnDate).To(dateArg(date)))
	}
	if notes, ok := update.Notes.Get(); ok {
		queryMods = append(queryMods, um.SetCol(ColumnNotes).ToArg(notes))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote(ColumnID).EQ(psql.Arg(id))),
		um.Returning(ColumnID),
	)

	_, err := bob.One(ctx, w.exec, psql.Update(queryMods...), scan.SingleColumnMapper[int64])
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", id, sqlerr.Classify(err))
	}
	return nil
}

// Delete removes the transaction.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	query := psql.Delete(
		dm.From(TableName),
		dm.Where(psql.Quote(ColumnID).EQ(psql.Arg(id))),
		dm.Returning(ColumnID),
	)

	_, err := bob.One(ctx, w.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, sqlerr.Classify(err))
	}
	return nil
}
