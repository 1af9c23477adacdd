package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/expense-server/internal/storage/sqlerr"
)

// SumBetween returns the total amount dated within [start, end]. It is zero,
// never NULL, when nothing matches.
func (r *Reader) SumBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("COALESCE(SUM(t.amount), 0)")),
		sm.From(TableName).As("t"),
	}, dateRange(start, end)...)

	total, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum transactions: %w", sqlerr.Classify(err))
	}
	return total, nil
}

// SumByCategoryBetween totals the amounts dated within [start, end] per
// category name, largest first. Categories without matches are absent.
func (r *Reader) SumByCategoryBetween(ctx context.Context, start, end time.Time) ([]CategoryTotal, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("c", "name").As("category_name"),
			psql.Raw("SUM(t.amount)").As("total"),
		),
		sm.From(TableName).As("t"),
		sm.InnerJoin(categoryTableName).As("c").On(
			psql.Quote("c", "id").EQ(col(ColumnCategoryID)),
		),
	}, dateRange(start, end)...)
	queryMods = append(queryMods,
		sm.GroupBy(psql.Quote("c", "name")),
		sm.OrderBy(psql.Quote("total")).Desc(),
		sm.OrderBy(psql.Quote("c", "name")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[CategoryTotal]())
	if err != nil {
		return nil, fmt.Errorf("sum transactions by category: %w", sqlerr.Classify(err))
	}
	return rows, nil
}

// SumByMonth totals every transaction per calendar month, oldest first.
func (r *Reader) SumByMonth(ctx context.Context) ([]MonthTotal, error) {
	month := psql.Raw("date_trunc('month', t.date)::date")

	query := psql.Select(
		sm.Columns(
			month.As("month"),
			psql.Raw("SUM(t.amount)").As("total"),
		),
		sm.From(TableName).As("t"),
		sm.GroupBy(month),
		sm.OrderBy(month).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[MonthTotal]())
	if err != nil {
		return nil, fmt.Errorf("sum transactions by month: %w", sqlerr.Classify(err))
	}
	return rows, nil
}
