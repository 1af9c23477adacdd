package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/service"
)

// UpdateTransactionInput is the Huma input for PUT and PATCH.
type UpdateTransactionInput struct {
	IDPath
	Body TransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id int64, in service.TransactionInput, full bool) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT and PATCH /transactions/{id}/. PUT
// requires category, title and amount; PATCH changes only supplied fields.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "replace-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}/",
		Summary:     "Replace transaction",
		Tags:        []string{tags},
	}, h.handler(true))

	huma.Register(api, huma.Operation{
		OperationID: "patch-transaction",
		Method:      http.MethodPatch,
		Path:        "/transactions/{id}/",
		Summary:     "Patch transaction",
		Tags:        []string{tags},
	}, h.handler(false))
}

func (h *UpdateTransactionHandler) handler(full bool) func(context.Context, *UpdateTransactionInput) (*TransactionOutput, error) {
	return func(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
		id, err := apierror.ParseID(input.ID)
		if err != nil {
			return nil, err
		}

		tx, err := h.TransactionService.UpdateTransaction(ctx, id, parseTransactionBody(&input.Body), full)
		if err != nil {
			return nil, apierror.From(ctx, err, apierror.LocationBody, "failed to update transaction")
		}
		return &TransactionOutput{Body: fromService(tx)}, nil
	}
}
