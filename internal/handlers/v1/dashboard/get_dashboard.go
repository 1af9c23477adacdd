package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/expense-server/internal/service"
)

// CategoryTotal is the spending of one category in the current month.
type CategoryTotal struct {
	CategoryName string `json:"category_name" doc:"Category name"`
	Total        string `json:"total" doc:"Decimal total with two fractional digits"`
}

// MonthTotal is the spending of one calendar month.
type MonthTotal struct {
	Month string `json:"month" format:"date" doc:"First day of the month, YYYY-MM-DD"`
	Total string `json:"total" doc:"Decimal total with two fractional digits"`
}

// Dashboard is the API response model for the dashboard.
type Dashboard struct {
	MonthStart string          `json:"month_start" format:"date" doc:"First day of the current month"`
	Today      string          `json:"today" format:"date" doc:"Current date"`
	TotalSpent string          `json:"total_spent" doc:"Sum of amounts from month_start through today"`
	ByCategory []CategoryTotal `json:"by_category" doc:"Current month totals per category, largest first"`
	ByMonth    []MonthTotal    `json:"by_month" doc:"All-time totals per month, oldest first"`
}

// GetDashboardOutput is the Huma output for the dashboard.
type GetDashboardOutput struct {
	Body Dashboard
}

type dashboardGetter interface {
	GetDashboard(ctx context.Context) (*service.Dashboard, error)
}

// GetDashboardHandler handles GET /dashboard/.
type GetDashboardHandler struct {
	DashboardService dashboardGetter
}

func NewGetDashboardHandler(svc dashboardGetter) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard/",
		Summary:     "Spending dashboard",
		Description: "Summarizes spending for the current month, per category, and per month over all history.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, _ *struct{}) (*GetDashboardOutput, error) {
	dashboard, err := h.DashboardService.GetDashboard(ctx)
	if err != nil {
		return nil, apierror.From(ctx, err, apierror.LocationQuery, "failed to compute dashboard")
	}
	return &GetDashboardOutput{Body: fromService(dashboard)}, nil
}

func fromService(d *service.Dashboard) Dashboard {
	resp := Dashboard{
		MonthStart: d.MonthStart.Format(time.DateOnly),
		Today:      d.Today.Format(time.DateOnly),
		TotalSpent: d.TotalSpent.StringFixed(2),
		ByCategory: make([]CategoryTotal, len(d.ByCategory)),
		ByMonth:    make([]MonthTotal, len(d.ByMonth)),
	}
	for i, c := range d.ByCategory {
		resp.ByCategory[i] = CategoryTotal{CategoryName: c.CategoryName, Total: c.Total.StringFixed(2)}
	}
	for i, m := range d.ByMonth {
		resp.ByMonth[i] = MonthTotal{Month: m.Month.Format(time.DateOnly), Total: m.Total.StringFixed(2)}
	}
	return resp
}
