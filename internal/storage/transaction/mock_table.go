package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTable is a testify mock satisfying both IReader and IWriter.
type MockTable struct {
	mock.Mock
}

var (
	_ IReader = (*MockTable)(nil)
	_ IWriter = (*MockTable)(nil)
)

// NewMockTable registers expectation assertions on test cleanup.
func NewMockTable(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTable {
	m := &MockTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*Transaction)
	return rows, args.Error(1)
}

func (m *MockTable) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Transaction)
	return row, args.Error(1)
}

func (m *MockTable) SumBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTable) SumByCategoryBetween(ctx context.Context, start, end time.Time) ([]CategoryTotal, error) {
	args := m.Called(ctx, start, end)
	rows, _ := args.Get(0).([]CategoryTotal)
	return rows, args.Error(1)
}

func (m *MockTable) SumByMonth(ctx context.Context) ([]MonthTotal, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]MonthTotal)
	return rows, args.Error(1)
}

func (m *MockTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTable) Update(ctx context.Context, id int64, update *TransactionUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockTable) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
