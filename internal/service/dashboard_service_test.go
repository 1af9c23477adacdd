package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/storage/transaction"
)

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantToday time.Time
	}{
		{name: "mid month", now: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), wantStart: day(2024, 3, 1), wantToday: day(2024, 3, 15)},
		{name: "first of month", now: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), wantStart: day(2024, 3, 1), wantToday: day(2024, 3, 1)},
		{name: "leap day", now: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), wantStart: day(2024, 2, 1), wantToday: day(2024, 2, 29)},
		{name: "year end", now: time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC), wantStart: day(2023, 12, 1), wantToday: day(2023, 12, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, today := MonthBounds(tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantToday, today)
		})
	}
}

func newDashboardTestService(t *testing.T) (*DashboardService, *transaction.MockTable) {
	t.Helper()
	mockTable := transaction.NewMockTable(t)
	now := func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	return NewDashboardService(mockTable, now), mockTable
}

func TestGetDashboard(t *testing.T) {
	svc, mockTable := newDashboardTestService(t)
	start, today := day(2024, 3, 1), day(2024, 3, 15)

	mockTable.On("SumBetween", mock.Anything, start, today).Return(decimal.RequireFromString("32.50"), nil)
	mockTable.On("SumByCategoryBetween", mock.Anything, start, today).Return([]transaction.CategoryTotal{
		{CategoryName: "Food", Total: decimal.RequireFromString("32.50")},
	}, nil)
	mockTable.On("SumByMonth", mock.Anything).Return([]transaction.MonthTotal{
		{Month: day(2024, 3, 1), Total: decimal.RequireFromString("32.50")},
	}, nil)

	dashboard, err := svc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, start, dashboard.MonthStart)
	assert.Equal(t, today, dashboard.Today)
	assert.Equal(t, "32.50", dashboard.TotalSpent.StringFixed(2))
	require.Len(t, dashboard.ByCategory, 1)
	assert.Equal(t, "Food", dashboard.ByCategory[0].CategoryName)
	require.Len(t, dashboard.ByMonth, 1)
	assert.Equal(t, day(2024, 3, 1), dashboard.ByMonth[0].Month)
}

func TestGetDashboard_Empty(t *testing.T) {
	svc, mockTable := newDashboardTestService(t)

	mockTable.On("SumBetween", mock.Anything, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	mockTable.On("SumByCategoryBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mockTable.On("SumByMonth", mock.Anything).Return(nil, nil)

	dashboard, err := svc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0.00", dashboard.TotalSpent.StringFixed(2))
	assert.NotNil(t, dashboard.ByCategory)
	assert.Empty(t, dashboard.ByCategory)
	assert.NotNil(t, dashboard.ByMonth)
	assert.Empty(t, dashboard.ByMonth)
}

func TestGetDashboard_StorageError(t *testing.T) {
	svc, mockTable := newDashboardTestService(t)

	mockTable.On("SumBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("database unavailable"))
	mockTable.On("SumByCategoryBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	mockTable.On("SumByMonth", mock.Anything).Return(nil, nil).Maybe()

	dashboard, err := svc.GetDashboard(context.Background())

	assert.EqualError(t, err, "database unavailable")
	assert.Nil(t, dashboard)
}
