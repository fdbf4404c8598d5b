package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionInput carries the fields of a new transaction
type TransactionInput struct {
	CategoryID uuid.UUID       `json:"categoryId" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required,ledger_amount"`
	Date       time.Time       `json:"date" validate:"required"`
	Type       string          `json:"type" validate:"required,transaction_type"`
	Note       *string         `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ToTransaction builds the model owned by userID
func (in TransactionInput) ToTransaction(userID uuid.UUID) *Transaction {
	return &Transaction{
		UserID:     userID,
		CategoryID: in.CategoryID,
		Amount:     in.Amount,
		Date:       NormalizeDate(in.Date),
		Type:       in.Type,
		Note:       normalizeNote(in.Note),
	}
}

// TransactionPatch is a partial transaction update; nil fields are left unchanged.
// A Note pointing at an empty string clears the note.
type TransactionPatch struct {
	CategoryID *uuid.UUID       `json:"categoryId,omitempty" validate:"omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,ledger_amount"`
	Date       *time.Time       `json:"date,omitempty" validate:"omitempty"`
	Type       *string          `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Note       *string          `json:"note,omitempty" validate:"omitempty,max=500"`
}

// IsEmpty returns true if the patch changes nothing
func (p TransactionPatch) IsEmpty() bool {
	return p.CategoryID == nil && p.Amount == nil && p.Date == nil && p.Type == nil && p.Note == nil
}

// Changes returns the column updates the patch describes, keyed by column name.
func (p TransactionPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})

	if p.CategoryID != nil {
		changes["category_id"] = *p.CategoryID
	}
	if p.Amount != nil {
		changes["amount"] = *p.Amount
	}
	if p.Date != nil {
		changes["transaction_date"] = NormalizeDate(*p.Date)
	}
	if p.Type != nil {
		changes["type"] = *p.Type
	}
	if p.Note != nil {
		if note := normalizeNote(p.Note); note != nil {
			changes["note"] = *note
		} else {
			changes["note"] = nil
		}
	}

	return changes
}

// TransactionListQuery selects one page of an owner's transactions within a month
type TransactionListQuery struct {
	Month    int `json:"month" validate:"required,min=1,max=12"`
	Year     int `json:"year" validate:"required,min=1,max=9999"`
	Page     int `json:"page" validate:"required,min=1"`
	PageSize int `json:"pageSize" validate:"required,min=1,max=100"`
}

// Offset returns the number of rows preceding the requested page
func (q TransactionListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Pagination describes a page of a larger result set
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes the page count for total items split into pages of pageSize.
func NewPagination(page, pageSize int, total int64) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// TransactionPage is one page of transactions plus its pagination metadata
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
}
