package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
)

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id int64) error
}

// DeleteCategoryHandler handles DELETE /categories/{id}/.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/categories/{id}/",
		Summary:       "Delete category",
		Description:   "Deletes a category together with all of its transactions.",
		Tags:          []string{tags},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *IDPath) (*struct{}, error) {
	id, err := apierror.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err = h.CategoryService.DeleteCategory(ctx, id); err != nil {
		return nil, apierror.From(ctx, err, apierror.LocationPath, "failed to delete category")
	}
	return nil, nil
}
