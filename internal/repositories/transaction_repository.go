package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotOwned    = errors.New("category does not exist or belongs to another user")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a transaction after checking, in the same database transaction, that its
// category belongs to the same owner
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryOwned(tx, transaction.UserID, transaction.CategoryID); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID regardless of owner
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Category").Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Update applies column changes to an owner's transaction and returns the stored row.
// A category change is checked for ownership inside the same database transaction.
func (r *transactionRepository) Update(userID, id uuid.UUID, changes map[string]interface{}) (*models.Transaction, error) {
	var updated models.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if categoryID, ok := changes["category_id"].(uuid.UUID); ok {
			if err := ensureCategoryOwned(tx, userID, categoryID); err != nil {
				return err
			}
		}

		values := make(map[string]interface{}, len(changes)+1)
		for column, value := range changes {
			values[column] = value
		}
		values["updated_at"] = time.Now()

		result := tx.Model(&models.Transaction{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(values)
		if result.Error != nil {
			return fmt.Errorf("failed to update transaction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTransactionNotFound
		}

		if err := tx.Preload("Category").Where("id = ?", id).First(&updated).Error; err != nil {
			return fmt.Errorf("failed to reload transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes an owner's transaction
func (r *transactionRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetPageByDateRange retrieves one page of an owner's transactions dated within
// [startDate, endDate], newest date first, together with the total row count
func (r *transactionRepository) GetPageByDateRange(userID uuid.UUID, startDate, endDate time.Time, offset, limit int) ([]models.Transaction, int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).
		Scopes(ownedWithin(userID, startDate, endDate)).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	transactions := make([]models.Transaction, 0, limit)
	if total == 0 {
		return transactions, 0, nil
	}

	if err := r.db.Preload("Category").
		Scopes(ownedWithin(userID, startDate, endDate), newestFirst).
		Offset(offset).Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByDateRange retrieves all of an owner's transactions dated within [startDate, endDate]
func (r *transactionRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := r.db.Scopes(ownedWithin(userID, startDate, endDate)).
		Order("transaction_date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

func ownedWithin(userID uuid.UUID, startDate, endDate time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND transaction_date BETWEEN ? AND ?",
			userID, models.NormalizeDate(startDate), models.NormalizeDate(endDate))
	}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("transaction_date DESC").Order("created_at DESC").Order("id DESC")
}

func ensureCategoryOwned(db *gorm.DB, userID, categoryID uuid.UUID) error {
	var count int64
	if err := db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check category ownership: %w", err)
	}
	if count == 0 {
		return ErrCategoryNotOwned
	}
	return nil
}
