package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/storage/transaction"
)

// DashboardService computes spending summaries.
type DashboardService struct {
	transactions transaction.IReader
	now          func() time.Time
}

func NewDashboardService(transactions transaction.IReader, now func() time.Time) *DashboardService {
	return &DashboardService{
		transactions: transactions,
		now:          now,
	}
}

// MonthBounds returns the first day of now's month and now's date.
func MonthBounds(now time.Time) (monthStart, today time.Time) {
	today = Today(now)
	return today.AddDate(0, 0, 1-today.Day()), today
}

// GetDashboard sums spending from the first of the month through today, per
// category for the same window, and per month over all history. The three
// queries run concurrently.
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	monthStart, today := MonthBounds(s.now())

	var (
		total      decimal.Decimal
		byCategory []transaction.CategoryTotal
		byMonth    []transaction.MonthTotal
	)

	done := logging.Time(ctx, "dashboardQueriesMs")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.transactions.SumBetween(gctx, monthStart, today)
		return err
	})
	g.Go(func() (err error) {
		byCategory, err = s.transactions.SumByCategoryBetween(gctx, monthStart, today)
		return err
	})
	g.Go(func() (err error) {
		byMonth, err = s.transactions.SumByMonth(gctx)
		return err
	})
	err := g.Wait()
	done()
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		MonthStart: monthStart,
		Today:      today,
		TotalSpent: total,
		ByCategory: make([]CategoryTotal, len(byCategory)),
		ByMonth:    make([]MonthTotal, len(byMonth)),
	}
	for i, row := range byCategory {
		dashboard.ByCategory[i] = CategoryTotal{CategoryName: row.CategoryName, Total: row.Total}
	}
	for i, row := range byMonth {
		dashboard.ByMonth[i] = MonthTotal{Month: row.Month, Total: row.Total}
	}

	logging.Add(ctx, "dashboardCategories", len(dashboard.ByCategory))
	return dashboard, nil
}
