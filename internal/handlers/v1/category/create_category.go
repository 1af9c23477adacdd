package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/service"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CategoryBody
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, name omit.Val[string]) (*service.Category, error)
}

// CreateCategoryHandler handles POST /categories/.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/categories/",
		Summary:       "Create category",
		Description:   "Creates a category. Names are trimmed and must be unique.",
		Tags:          []string{tags},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	category, err := h.CategoryService.CreateCategory(ctx, omit.FromPtr(input.Body.Name))
	if err != nil {
		return nil, apierror.From(ctx, err, apierror.LocationBody, "failed to create category")
	}
	return &CategoryOutput{Body: fromService(category)}, nil
}
