package dto

import (
	"fmt"
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction.
// Amount accepts a JSON number or a decimal string.
type CreateTransactionRequest struct {
	CategoryID string          `json:"categoryId" validate:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" validate:"required,ledger_amount"`
	Date       string          `json:"date" validate:"required,ledger_date"`
	Type       string          `json:"type" validate:"required,transaction_type"`
	Note       *string         `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ToInput converts the validated request to the service input
func (r CreateTransactionRequest) ToInput() (models.TransactionInput, error) {
	categoryID, err := uuid.Parse(r.CategoryID)
	if err != nil {
		return models.TransactionInput{}, fmt.Errorf("invalid category ID: %w", err)
	}

	date, err := models.ParseDate(r.Date)
	if err != nil {
		return models.TransactionInput{}, fmt.Errorf("invalid date: %w", err)
	}

	return models.TransactionInput{
		CategoryID: categoryID,
		Amount:     r.Amount,
		Date:       date,
		Type:       r.Type,
		Note:       r.Note,
	}, nil
}

// UpdateTransactionRequest represents a partial transaction update; omitted fields are
// left unchanged and an empty note clears the stored one
type UpdateTransactionRequest struct {
	CategoryID *string          `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	Amount     *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,ledger_amount"`
	Date       *string          `json:"date,omitempty" validate:"omitempty,ledger_date"`
	Type       *string          `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Note       *string          `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ToPatch converts the validated request to the service patch
func (r UpdateTransactionRequest) ToPatch() (models.TransactionPatch, error) {
	patch := models.TransactionPatch{
		Amount: r.Amount,
		Type:   r.Type,
		Note:   r.Note,
	}

	if r.CategoryID != nil {
		categoryID, err := uuid.Parse(*r.CategoryID)
		if err != nil {
			return models.TransactionPatch{}, fmt.Errorf("invalid category ID: %w", err)
		}
		patch.CategoryID = &categoryID
	}

	if r.Date != nil {
		date, err := models.ParseDate(*r.Date)
		if err != nil {
			return models.TransactionPatch{}, fmt.Errorf("invalid date: %w", err)
		}
		patch.Date = &date
	}

	return patch, nil
}

// ListTransactionsParams contains the month and page of a transaction listing
type ListTransactionsParams struct {
	Month    int `query:"month" json:"month" validate:"required,min=1,max=12"`
	Year     int `query:"year" json:"year" validate:"required,min=1,max=9999"`
	Page     int `query:"page" json:"page" validate:"min=1"`
	PageSize int `query:"pageSize" json:"pageSize" validate:"min=1,max=100"`
}

// ToQuery converts the params to the service query
func (p ListTransactionsParams) ToQuery() models.TransactionListQuery {
	return models.TransactionListQuery{
		Month:    p.Month,
		Year:     p.Year,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	Amount       string    `json:"amount"`
	Date         string    `json:"date"`
	Type         string    `json:"type"`
	Note         *string   `json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListTransactionsResponse represents one page of transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   models.Pagination     `json:"pagination"`
}

// NewTransactionResponse converts a transaction model to its API representation
func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           transaction.ID,
		CategoryID:   transaction.CategoryID,
		CategoryName: transaction.CategoryName(),
		Amount:       transaction.Amount.StringFixed(2),
		Date:         transaction.DateKey(),
		Type:         transaction.Type,
		Note:         transaction.Note,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}

// NewListTransactionsResponse converts a transaction page to its API representation
func NewListTransactionsResponse(page *models.TransactionPage) ListTransactionsResponse {
	response := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, 0, len(page.Transactions)),
		Pagination:   page.Pagination,
	}
	for i := range page.Transactions {
		response.Transactions = append(response.Transactions, NewTransactionResponse(&page.Transactions[i]))
	}
	return response
}
