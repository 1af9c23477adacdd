package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/service"
)

// UpdateCategoryInput is the Huma input for PUT and PATCH.
type UpdateCategoryInput struct {
	IDPath
	Body CategoryBody
}

type categoryUpdater interface {
	UpdateCategory(ctx context.Context, id int64, name omit.Val[string], full bool) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT and PATCH /categories/{id}/. PUT requires
// name, PATCH accepts an empty body.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "replace-category",
		Method:      http.MethodPut,
		Path:        "/categories/{id}/",
		Summary:     "Replace category",
		Tags:        []string{tags},
	}, h.handler(true))

	huma.Register(api, huma.Operation{
		OperationID: "patch-category",
		Method:      http.MethodPatch,
		Path:        "/categories/{id}/",
		Summary:     "Patch category",
		Tags:        []string{tags},
	}, h.handler(false))
}

func (h *UpdateCategoryHandler) handler(full bool) func(context.Context, *UpdateCategoryInput) (*CategoryOutput, error) {
	return func(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
		id, err := apierror.ParseID(input.ID)
		if err != nil {
			return nil, err
		}

		category, err := h.CategoryService.UpdateCategory(ctx, id, omit.FromPtr(input.Body.Name), full)
		if err != nil {
			return nil, apierror.From(ctx, err, apierror.LocationBody, "failed to update category")
		}
		return &CategoryOutput{Body: fromService(category)}, nil
	}
}
