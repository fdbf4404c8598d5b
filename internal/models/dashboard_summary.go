package models

import "github.com/shopspring/decimal"

// DashboardSummary aggregates one month of an owner's transactions
type DashboardSummary struct {
	Month          int           `json:"month"`
	Year           int           `json:"year"`
	Summary        Totals        `json:"summary"`
	DailyBreakdown []DailyBucket `json:"dailyBreakdown"`
}

// Totals holds rounded month totals
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// DailyBucket holds the rounded totals of a single calendar date
type DailyBucket struct {
	Date     string          `json:"date"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
