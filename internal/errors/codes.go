package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthInvalidToken       ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_002"
	ValidationInvalidID     ErrorCode = "VALIDATION_003"
	ValidationInvalidPeriod ErrorCode = "VALIDATION_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryForbidden     ErrorCode = "CATEGORY_002"
	CategoryInvalidName   ErrorCode = "CATEGORY_003"
	CategoryDuplicateName ErrorCode = "CATEGORY_004"
	CategoryNotEditable   ErrorCode = "CATEGORY_005"
	CategoryNotDeletable  ErrorCode = "CATEGORY_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound        ErrorCode = "TRANSACTION_001"
	TransactionForbidden       ErrorCode = "TRANSACTION_002"
	TransactionInvalidCategory ErrorCode = "TRANSACTION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRouteNotFound      ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthInvalidToken:       "Invalid authorization token",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Malformed request body",
	ValidationInvalidID:     "Invalid identifier format",
	ValidationInvalidPeriod: "Invalid month or year",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryForbidden:     "Category belongs to another user",
	CategoryInvalidName:   "Invalid category name",
	CategoryDuplicateName: "A category with this name already exists",
	CategoryNotEditable:   "The default category cannot be edited",
	CategoryNotDeletable:  "The default category cannot be deleted",

	// Transaction errors
	TransactionNotFound:        "Transaction not found",
	TransactionForbidden:       "Transaction belongs to another user",
	TransactionInvalidCategory: "Category does not exist or belongs to another user",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database error. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
