package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	MaxNoteLength = 500

	// DateLayout is the calendar-date format used on the wire and for daily buckets.
	DateLayout = "2006-01-02"
)

var (
	// MaxTransactionAmount is the largest amount a decimal(12,2) column holds.
	MaxTransactionAmount = decimal.RequireFromString("999999999.99")

	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrAmountTooLarge         = errors.New("transaction amount exceeds 999999999.99")
	ErrAmountPrecision        = errors.New("transaction amount must have at most 2 decimal places")
)

// Transaction is a single income or expense entry of an owner
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date       time.Time       `gorm:"column:transaction_date;type:date;not null;index:idx_transactions_user_date,priority:2" json:"date"`
	Type       string          `gorm:"type:varchar(10);not null" json:"type"`
	Note       *string         `gorm:"type:varchar(500)" json:"note,omitempty"`
	CreatedAt  time.Time       `gorm:"<-:create;not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.Date = NormalizeDate(t.Date)

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if t.Note != nil && len([]rune(*t.Note)) > MaxNoteLength {
		return errors.New("note must be at most 500 characters")
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// DateKey returns the transaction's calendar date as YYYY-MM-DD.
func (t *Transaction) DateKey() string {
	return t.Date.Format(DateLayout)
}

// CategoryName returns the preloaded category name, or "" when the association is not loaded.
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// Helper functions

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// ValidateAmount checks that amount is positive, fits the column and has at most two
// fractional digits.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(MaxTransactionAmount) {
		return ErrAmountTooLarge
	}
	if !amount.Equal(amount.Round(2)) {
		return ErrAmountPrecision
	}
	return nil
}

// NormalizeDate drops the clock part of t, keeping its calendar date at UTC midnight.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// MonthRange returns the first and last calendar day of the given month, both inclusive.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// normalizeNote maps blank notes to nil so they are stored as NULL.
func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
