package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/TomaszGajek/settlements-sub000/internal/errors"
	"github.com/TomaszGajek/settlements-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers answer with the helpers below only:
//
// 1. SendError - client and business rule errors (4xx)
//    - Validation errors: SendValidationError(c, fields)
//    - Authentication errors: SendError(c, errors.AuthMissingToken)
//    - Not found errors: SendError(c, errors.CategoryNotFound)
//
// 2. SendServiceError - errors returned by the ledger services, mapped per resource
//
// 3. SendSystemError - internal errors (500); the cause is logged, never returned

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// Resource selects the resource specific codes of a service error
type Resource int

const (
	ResourceCategory Resource = iota
	ResourceTransaction
)

// MessageResponse represents a plain confirmation response
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError sends field level validation failures
func SendValidationError(c echo.Context, fields map[string]string) error {
	errorResponse := errors.NewValidationError(fields, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.Error("request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a ledger service error to its API error code
func SendServiceError(c echo.Context, res Resource, err error) error {
	var validationErr *services.ValidationError
	if stderrors.As(err, &validationErr) {
		return SendValidationError(c, validationErr.Fields)
	}

	switch {
	case stderrors.Is(err, services.ErrNotFound):
		if res == ResourceTransaction {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrForbidden):
		if res == ResourceTransaction {
			return SendError(c, errors.TransactionForbidden)
		}
		return SendError(c, errors.CategoryForbidden)
	case stderrors.Is(err, services.ErrInvalidName):
		return SendError(c, errors.CategoryInvalidName, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrDuplicateName):
		return SendError(c, errors.CategoryDuplicateName)
	case stderrors.Is(err, services.ErrNotEditable):
		return SendError(c, errors.CategoryNotEditable)
	case stderrors.Is(err, services.ErrNotDeletable):
		return SendError(c, errors.CategoryNotDeletable)
	case stderrors.Is(err, services.ErrInvalidCategory):
		return SendError(c, errors.TransactionInvalidCategory)
	case stderrors.Is(err, services.ErrPersistenceFailure):
		errorResponse, internal := errors.WrapDatabaseError(err, getTraceID(c))
		slog.Error("persistence failure",
			"trace_id", errorResponse.Error.TraceID,
			"path", c.Path(),
			"error", internal)
		return c.JSON(http.StatusInternalServerError, errorResponse)
	}

	return SendSystemError(c, err)
}
