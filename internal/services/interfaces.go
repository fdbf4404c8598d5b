package services

import (
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/google/uuid"
)

// CategoryServiceInterface defines category lifecycle operations of an owner
type CategoryServiceInterface interface {
	List(userID uuid.UUID) ([]models.Category, error)
	Create(userID uuid.UUID, name string) (*models.Category, error)
	Update(userID, categoryID uuid.UUID, name string) (*models.Category, error)
	// Delete moves the category's transactions to the owner's default category before
	// removing it.
	Delete(userID, categoryID uuid.UUID) error
	EnsureDefaultCategory(userID uuid.UUID) (*models.Category, error)
}

// TransactionServiceInterface defines transaction operations of an owner
type TransactionServiceInterface interface {
	Create(userID uuid.UUID, input models.TransactionInput) (*models.Transaction, error)
	Get(userID, transactionID uuid.UUID) (*models.Transaction, error)
	Update(userID, transactionID uuid.UUID, patch models.TransactionPatch) (*models.Transaction, error)
	Delete(userID, transactionID uuid.UUID) error
	List(userID uuid.UUID, query models.TransactionListQuery) (*models.TransactionPage, error)
}

// DashboardServiceInterface provides the monthly dashboard
type DashboardServiceInterface interface {
	Summarize(userID uuid.UUID, month, year int) (*models.DashboardSummary, error)
}

// AuditLoggerInterface records ledger mutations and ownership violations
type AuditLoggerInterface interface {
	LogCategoryCreated(userID, categoryID uuid.UUID, name string)
	LogCategoryRenamed(userID, categoryID uuid.UUID)
	LogCategoryDeleted(userID, categoryID uuid.UUID, reassigned int64)
	LogTransactionChanged(userID, transactionID uuid.UUID, operation string)
	LogOwnershipViolation(userID, resourceID uuid.UUID, resource, operation string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TokenServiceInterface verifies bearer tokens issued by the identity provider
type TokenServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.AccessClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}
