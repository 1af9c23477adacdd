package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []Category
}

type categoryLister interface {
	ListCategories(ctx context.Context) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /categories/.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories/",
		Summary:     "List categories",
		Description: "Returns every category ordered by name.",
		Tags:        []string{tags},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	stopTimer := logging.Time(ctx, "listCategoriesMs")
	categories, err := h.CategoryService.ListCategories(ctx)
	stopTimer()
	if err != nil {
		return nil, apierror.From(ctx, err, apierror.LocationQuery, "failed to list categories")
	}

	logging.Add(ctx, "categoryCount", len(categories))

	resp := make([]Category, len(categories))
	for i := range categories {
		resp[i] = fromService(&categories[i])
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
