package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
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

// dateArg binds t as a DATE so comparisons never go through a timestamp
// conversion in the session time zone.
func dateArg(t time.Time) bob.Expression {
	return psql.Raw("?::date", t.Format(time.DateOnly))
}

func col(name string) dialect.Expression {
	return psql.Quote("t", name)
}

// selectJoined selects transaction columns plus the owning category's name.
func selectJoined(queryMods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			col(ColumnID),
			col(ColumnCategoryID),
			psql.Quote("c", "name").As("category_name"),
			col(ColumnTitle),
			col(ColumnAmount),
			col(ColumnDate),
			col(ColumnNotes),
		),
		sm.From(TableName).As("t"),
		sm.InnerJoin(categoryTableName).As("c").On(
			psql.Quote("c", "id").EQ(col(ColumnCategoryID)),
		),
	}
	return psql.Select(append(base, queryMods...)...)
}

// dateRange restricts rows to start <= date <= end.
func dateRange(start, end time.Time) []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Where(col(ColumnDate).GTE(dateArg(start))),
		sm.Where(col(ColumnDate).LTE(dateArg(end))),
	}
}

// List returns transactions matching the filter, newest first. Nil filter
// returns all.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if filter != nil {
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(col(ColumnCategoryID).EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.StartDate != nil {
			queryMods = append(queryMods, sm.Where(col(ColumnDate).GTE(dateArg(*filter.StartDate))))
		}
		if filter.EndDate != nil {
			queryMods = append(queryMods, sm.Where(col(ColumnDate).LTE(dateArg(*filter.EndDate))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(col(ColumnDate)).Desc(),
		sm.OrderBy(col(ColumnID)).Desc(),
	)

	rows, err := bob.All(ctx, r.exec, selectJoined(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", sqlerr.Classify(err))
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// FindByID returns sqlerr.ErrNotFound when no transaction has the given id.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	query := selectJoined(sm.Where(col(ColumnID).EQ(psql.Arg(id))))

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, fmt.Errorf("find transaction %d: %w", id, sqlerr.Classify(err))
	}
	return &row, nil
}
