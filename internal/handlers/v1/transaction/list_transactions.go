package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions. Filters
// are parsed by the service so malformed values report field errors.
type ListTransactionsInput struct {
	Category  string `query:"category" doc:"Only transactions of this category ID"`
	StartDate string `query:"start_date" doc:"Only transactions on or after this date, YYYY-MM-DD"`
	EndDate   string `query:"end_date" doc:"Only transactions on or before this date, YYYY-MM-DD"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

type transactionLister interface {
	ListTransactions(ctx context.Context, q service.TransactionQuery) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions/.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions/",
		Summary:     "List transactions",
		Description: "Returns transactions newest first, optionally filtered by category and an inclusive date range.",
		Tags:        []string{tags},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) service.TransactionQuery {
	return service.TransactionQuery{
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, parseListTransactionsInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.From(ctx, err, apierror.LocationQuery, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := make([]Transaction, len(transactions))
	for i := range transactions {
		resp[i] = fromService(&transactions[i])
	}
	return &ListTransactionsOutput{Body: resp}, nil
}
