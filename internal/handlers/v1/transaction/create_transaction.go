package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body TransactionBody
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, in service.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions/.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions/",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction. The date defaults to today.",
		Tags:          []string{tags},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*TransactionOutput, error) {
	tx, err := h.TransactionService.CreateTransaction(ctx, parseTransactionBody(&input.Body))
	if err != nil {
		return nil, apierror.From(ctx, err, apierror.LocationBody, "failed to create transaction")
	}
	return &TransactionOutput{Body: fromService(tx)}, nil
}
