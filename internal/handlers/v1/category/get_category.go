package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/service"
)

// CategoryOutput is the Huma output carrying a single category.
type CategoryOutput struct {
	Body Category
}

type categoryGetter interface {
	GetCategory(ctx context.Context, id int64) (*service.Category, error)
}

// GetCategoryHandler handles GET /categories/{id}/.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/categories/{id}/",
		Summary:     "Get category",
		Tags:        []string{tags},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *IDPath) (*CategoryOutput, error) {
	id, err := apierror.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.GetCategory(ctx, id)
	if err != nil {
		return nil, apierror.From(ctx, err, apierror.LocationPath, "failed to get category")
	}
	return &CategoryOutput{Body: fromService(category)}, nil
}
