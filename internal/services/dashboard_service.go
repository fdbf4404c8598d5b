package services

import (
	"log/slog"
	"sort"
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"
	"github.com/TomaszGajek/settlements-sub000/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dashboardService implements DashboardServiceInterface
type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewDashboardService creates a new DashboardServiceInterface instance
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo: transactionRepo,
		metrics:         metricsOrNoop(metrics),
	}
}

// Summarize aggregates every transaction of the owner dated within the month
func (s *dashboardService) Summarize(userID uuid.UUID, month, year int) (*models.DashboardSummary, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	start := time.Now()
	startDate, endDate := models.MonthRange(year, time.Month(month))

	transactions, err := s.transactionRepo.GetByDateRange(userID, startDate, endDate)
	if err != nil {
		return nil, classifyStoreError(s.metrics, scopeRead, "summarize dashboard", err)
	}

	summary := AggregateTransactions(transactions)
	summary.Month = month
	summary.Year = year

	s.metrics.RecordProcessingTime("dashboard_summary", time.Since(start))
	slog.Debug("dashboard summary generated",
		"user_id", userID,
		"month", month,
		"year", year,
		"transaction_count", len(transactions),
		"day_count", len(summary.DailyBreakdown))

	return &summary, nil
}

type dailyTotals struct {
	income   decimal.Decimal
	expenses decimal.Decimal
}

// AggregateTransactions sums income and expenses overall and per calendar date. Sums
// are exact and rounded to 2 places only at the end; the balance is the difference of
// the rounded totals. Dates without transactions are omitted from the breakdown.
func AggregateTransactions(transactions []models.Transaction) models.DashboardSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	days := make(map[string]*dailyTotals)

	for i := range transactions {
		transaction := &transactions[i]
		if !models.IsValidTransactionType(transaction.Type) {
			continue
		}

		key := transaction.DateKey()
		day, ok := days[key]
		if !ok {
			day = &dailyTotals{income: decimal.Zero, expenses: decimal.Zero}
			days[key] = day
		}

		if transaction.IsIncome() {
			income = income.Add(transaction.Amount)
			day.income = day.income.Add(transaction.Amount)
		} else {
			expenses = expenses.Add(transaction.Amount)
			day.expenses = day.expenses.Add(transaction.Amount)
		}
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	breakdown := make([]models.DailyBucket, 0, len(dates))
	for _, date := range dates {
		day := days[date]
		breakdown = append(breakdown, models.DailyBucket{
			Date:     date,
			Income:   day.income.Round(2),
			Expenses: day.expenses.Round(2),
		})
	}

	roundedIncome := income.Round(2)
	roundedExpenses := expenses.Round(2)

	return models.DashboardSummary{
		Summary: models.Totals{
			Income:   roundedIncome,
			Expenses: roundedExpenses,
			Balance:  roundedIncome.Sub(roundedExpenses).Round(2),
		},
		DailyBreakdown: breakdown,
	}
}

func validatePeriod(month, year int) error {
	fields := make(map[string]string)
	if month < 1 || month > 12 {
		fields["month"] = "must be between 1 and 12"
	}
	if year < 1 || year > 9999 {
		fields["year"] = "must be between 1 and 9999"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
