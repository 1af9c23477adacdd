package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, q service.TransactionQuery) ([]service.Transaction, error) {
	args := m.Called(ctx, q)
	transactions, _ := args.Get(0).([]service.Transaction)
	return transactions, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id int64) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, in service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, in)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id int64, in service.TransactionInput, full bool) (*service.Transaction, error) {
	args := m.Called(ctx, id, in, full)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// newTestAPI registers the handlers against a humatest API and returns it.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	apierror.UseBadRequestForValidation()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewCreateTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func lunch() *service.Transaction {
	return &service.Transaction{
		ID:           7,
		CategoryID:   1,
		CategoryName: "Food",
		Title:        "Lunch",
		Amount:       decimal.RequireFromString("12.5"),
		Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

const lunchJSON = `{"id":7,"title":"Lunch","amount":"12.50","date":"2024-03-10","notes":"","category":1,"category_name":"Food"}`

// -- parseTransactionBody unit tests --

func TestParseTransactionBody(t *testing.T) {
	category := int64(3)
	title := "Lunch"
	amount := Amount("12.50")

	in := parseTransactionBody(&TransactionBody{Category: &category, Title: &title, Amount: &amount})

	assert.Equal(t, omit.From(int64(3)), in.CategoryID)
	assert.Equal(t, omit.From("Lunch"), in.Title)
	assert.Equal(t, omit.From("12.50"), in.Amount)
	assert.True(t, in.Date.IsUnset())
	assert.True(t, in.Notes.IsUnset())
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var body TransactionBody
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 12.50}`), &body))
	assert.Equal(t, Amount("12.50"), *body.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "0.1"}`), &body))
	assert.Equal(t, Amount("0.1"), *body.Amount)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_ListTransactions(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("ListTransactions", mock.Anything, service.TransactionQuery{
		Category:  "1",
		StartDate: "2024-03-01",
	}).Return([]service.Transaction{*lunch()}, nil)

	resp := newTestAPI(t, svc).Get("/transactions/?category=1&start_date=2024-03-01")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "["+lunchJSON+"]", resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_BadFilter(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, &service.ValidationError{
		Fields: []service.FieldError{{Field: "start_date", Message: "Enter a valid date."}},
	})

	resp := newTestAPI(t, svc).Get("/transactions/?start_date=nope")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var model huma.ErrorModel
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &model))
	require.Len(t, model.Errors, 1)
	assert.Equal(t, "query.start_date", model.Errors[0].Location)
}

func TestHTTP_GetTransaction(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("GetTransaction", mock.Anything, int64(7)).Return(lunch(), nil)
	svc.On("GetTransaction", mock.Anything, int64(8)).Return(nil, service.ErrNotFound)
	api := newTestAPI(t, svc)

	resp := api.Get("/transactions/7/")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, lunchJSON, resp.Body.String())

	resp = api.Get("/transactions/8/")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.CategoryID.GetOrZero() == 1 &&
			in.Title.GetOrZero() == "Lunch" &&
			in.Amount.GetOrZero() == "12.50" &&
			in.Date.GetOrZero() == "2024-03-10" &&
			in.Notes.IsUnset()
	})).Return(lunch(), nil)

	resp := newTestAPI(t, svc).Post("/transactions/", map[string]any{
		"category": 1,
		"title":    "Lunch",
		"amount":   "12.50",
		"date":     "2024-03-10",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, lunchJSON, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_NumericAmount(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Amount.GetOrZero() == "12.5"
	})).Return(lunch(), nil)

	resp := newTestAPI(t, svc).Post("/transactions/", map[string]any{
		"category": 1,
		"title":    "Lunch",
		"amount":   12.5,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestHTTP_CreateTransaction_UnknownCategory(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, &service.ValidationError{
		Fields: []service.FieldError{{Field: "category", Message: `Invalid pk "999" - object does not exist.`}},
	})

	resp := newTestAPI(t, svc).Post("/transactions/", map[string]any{
		"category": 999,
		"title":    "Lunch",
		"amount":   "12.50",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.category")
}

func TestHTTP_CreateTransaction_SchemaMismatch(t *testing.T) {
	svc := new(mockTransactionService)

	resp := newTestAPI(t, svc).Post("/transactions/", map[string]any{
		"category": "food",
		"title":    "Lunch",
		"amount":   true,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_InternalError(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	resp := newTestAPI(t, svc).Post("/transactions/", map[string]any{
		"category": 1,
		"title":    "Lunch",
		"amount":   "1",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "connection refused")
}

func TestHTTP_UpdateTransaction_PutAndPatch(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("UpdateTransaction", mock.Anything, int64(7), mock.Anything, true).Return(lunch(), nil)
	svc.On("UpdateTransaction", mock.Anything, int64(7), mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Notes.GetOrZero() == "paid cash" && in.Title.IsUnset()
	}), false).Return(lunch(), nil)
	api := newTestAPI(t, svc)

	resp := api.Put("/transactions/7/", map[string]any{"category": 1, "title": "Lunch", "amount": "12.50"})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = api.Patch("/transactions/7/", map[string]any{"notes": "paid cash"})
	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("DeleteTransaction", mock.Anything, int64(7)).Return(nil)
	svc.On("DeleteTransaction", mock.Anything, int64(8)).Return(service.ErrNotFound)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusNoContent, api.Delete("/transactions/7/").Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/transactions/8/").Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/transactions/x/").Code)
}
