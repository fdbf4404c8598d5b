package repositories

import (
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/google/uuid"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	// GetByID looks the category up without owner scoping, so callers can tell a missing
	// row from another owner's row.
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	ExistsByName(userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	UpdateName(category *models.Category, name string) error
	DeleteWithReassignment(userID, categoryID uuid.UUID) (int64, error)
	CountTransactions(categoryID uuid.UUID) (int64, error)
	FirstOrCreateDefault(userID uuid.UUID) (*models.Category, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	// GetByID looks the transaction up without owner scoping.
	GetByID(id uuid.UUID) (*models.Transaction, error)
	Update(userID, id uuid.UUID, changes map[string]interface{}) (*models.Transaction, error)
	Delete(userID, id uuid.UUID) error
	GetPageByDateRange(userID uuid.UUID, startDate, endDate time.Time, offset, limit int) ([]models.Transaction, int64, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
}
