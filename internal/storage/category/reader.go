package category

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/expense-server/internal/storage/sqlerr"
)

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every category ordered by name.
func (r *Reader) List(ctx context.Context) ([]*Category, error) {
	query := psql.Select(
		sm.Columns(ColumnID, ColumnName),
		sm.From(TableName),
		sm.OrderBy(psql.Quote(ColumnName)).Asc(),
		sm.OrderBy(psql.Quote(ColumnID)).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Category]())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", sqlerr.Classify(err))
	}

	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// FindByID returns sqlerr.ErrNotFound when no category has the given id.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Category, error) {
	query := psql.Select(
		sm.Columns(ColumnID, ColumnName),
		sm.From(TableName),
		sm.Where(psql.Quote(ColumnID).EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Category]())
	if err != nil {
		return nil, fmt.Errorf("find category %d: %w", id, sqlerr.Classify(err))
	}
	return &row, nil
}
