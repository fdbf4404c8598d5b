package dto

import (
	"github.com/TomaszGajek/settlements-sub000/internal/models"
)

// DashboardParams selects the dashboard month
type DashboardParams struct {
	Month int `query:"month" json:"month" validate:"required,min=1,max=12"`
	Year  int `query:"year" json:"year" validate:"required,min=1,max=9999"`
}

// TotalsResponse holds month totals formatted with two decimal places
type TotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// DailyBucketResponse holds one day of the breakdown
type DailyBucketResponse struct {
	Date     string `json:"date"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// DashboardResponse represents the monthly dashboard
type DashboardResponse struct {
	Month          int                   `json:"month"`
	Year           int                   `json:"year"`
	Summary        TotalsResponse        `json:"summary"`
	DailyBreakdown []DailyBucketResponse `json:"dailyBreakdown"`
}

// NewDashboardResponse converts a dashboard summary to its API representation
func NewDashboardResponse(summary *models.DashboardSummary) DashboardResponse {
	response := DashboardResponse{
		Month: summary.Month,
		Year:  summary.Year,
		Summary: TotalsResponse{
			Income:   summary.Summary.Income.StringFixed(2),
			Expenses: summary.Summary.Expenses.StringFixed(2),
			Balance:  summary.Summary.Balance.StringFixed(2),
		},
		DailyBreakdown: make([]DailyBucketResponse, 0, len(summary.DailyBreakdown)),
	}
	for _, day := range summary.DailyBreakdown {
		response.DailyBreakdown = append(response.DailyBreakdown, DailyBucketResponse{
			Date:     day.Date,
			Income:   day.Income.StringFixed(2),
			Expenses: day.Expenses.StringFixed(2),
		})
	}
	return response
}
