package handlers

import (
	"net/http"

	"github.com/TomaszGajek/settlements-sub000/internal/dto"
	"github.com/TomaszGajek/settlements-sub000/internal/errors"
	"github.com/TomaszGajek/settlements-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions retrieves one page of a month's transactions
// @Summary List transactions
// @Description Retrieve the user's transactions dated within a month, newest date first, with offset pagination
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	params := dto.ListTransactionsParams{
		Page:     defaultPage,
		PageSize: defaultPageSize,
	}
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(params); err != nil {
		return SendValidationError(c, validationDetails(err))
	}

	page, err := h.transactionService.List(userID, params.ToQuery())
	if err != nil {
		return SendServiceError(c, ResourceTransaction, err)
	}

	c.Response().Header().Set("Cache-Control", "private, no-cache")

	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(page))
}

// CreateTransaction records a transaction
// @Summary Create transaction
// @Description Record an income or expense in one of the user's categories
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003 - Category missing or owned by another user"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, validationDetails(err))
	}

	input, err := req.ToInput()
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.Create(userID, input)
	if err != nil {
		return SendServiceError(c, ResourceTransaction, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// GetTransaction retrieves a transaction
// @Summary Get transaction
// @Description Retrieve one of the user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid ID"
// @Failure 403 {object} errors.ErrorResponse "TRANSACTION_002 - Transaction belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.Get(userID, transactionID)
	if err != nil {
		return SendServiceError(c, ResourceTransaction, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction applies a partial update
// @Summary Update transaction
// @Description Change any subset of a transaction's fields. An empty note clears it
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse "Transaction updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid body or VALIDATION_003 - Invalid ID"
// @Failure 403 {object} errors.ErrorResponse "TRANSACTION_002 - Transaction belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003 - Category missing or owned by another user"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, validationDetails(err))
	}

	patch, err := req.ToPatch()
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.Update(userID, transactionID, patch)
	if err != nil {
		return SendServiceError(c, ResourceTransaction, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Description Delete one of the user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid ID"
// @Failure 403 {object} errors.ErrorResponse "TRANSACTION_002 - Transaction belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.Delete(userID, transactionID); err != nil {
		return SendServiceError(c, ResourceTransaction, err)
	}

	return c.NoContent(http.StatusNoContent)
}
