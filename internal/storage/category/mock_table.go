package category

import (
	"context"

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

func (m *MockTable) List(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*Category)
	return rows, args.Error(1)
}

func (m *MockTable) FindByID(ctx context.Context, id int64) (*Category, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Category)
	return row, args.Error(1)
}

func (m *MockTable) Insert(ctx context.Context, create *CategoryCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTable) Update(ctx context.Context, id int64, update *CategoryUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockTable) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
