package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
)

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id int64) error
}

// DeleteTransactionHandler handles DELETE /transactions/{id}/.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/transactions/{id}/",
		Summary:       "Delete transaction",
		Tags:          []string{tags},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *IDPath) (*struct{}, error) {
	id, err := apierror.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err = h.TransactionService.DeleteTransaction(ctx, id); err != nil {
		return nil, apierror.From(ctx, err, apierror.LocationPath, "failed to delete transaction")
	}
	return nil, nil
}
