package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound       = errors.New("category not found")
	ErrDefaultCategoryMissing = errors.New("default category missing")
	ErrDanglingReferences     = errors.New("transactions still reference category")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID regardless of owner
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByUserID retrieves all categories of an owner ordered by name
func (r *categoryRepository) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// ExistsByName reports whether the owner has a category with exactly this name.
// excludeID skips one category, used when renaming.
func (r *categoryRepository) ExistsByName(userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

// UpdateName renames a deletable category of its owner
func (r *categoryRepository) UpdateName(category *models.Category, name string) error {
	now := time.Now()
	result := r.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ? AND is_deletable = ?", category.ID, category.UserID, true).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	category.Name = name
	category.UpdatedAt = now
	return nil
}

// DeleteWithReassignment moves the owner's transactions from categoryID to the default
// category and then removes the category, all in one database transaction. It returns
// the number of reassigned transactions.
func (r *categoryRepository) DeleteWithReassignment(userID, categoryID uuid.UUID) (int64, error) {
	var reassigned int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		fallback, err := findDefault(tx, userID)
		if err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return ErrDefaultCategoryMissing
			}
			return err
		}

		result := tx.Model(&models.Transaction{}).
			Where("user_id = ? AND category_id = ?", userID, categoryID).
			Updates(map[string]interface{}{
				"category_id": fallback.ID,
				"updated_at":  time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to reassign transactions: %w", result.Error)
		}
		reassigned = result.RowsAffected

		if err := ensureNoReferences(tx, categoryID); err != nil {
			return err
		}

		result = tx.Where("id = ? AND user_id = ? AND is_deletable = ?", categoryID, userID, true).
			Delete(&models.Category{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}

		return ensureNoReferences(tx, categoryID)
	})
	if err != nil {
		return 0, err
	}

	return reassigned, nil
}

// CountTransactions counts transactions of any owner that reference the category
func (r *categoryRepository) CountTransactions(categoryID uuid.UUID) (int64, error) {
	return countReferences(r.db, categoryID)
}

// FirstOrCreateDefault returns the owner's default category, creating it on first use.
// A concurrent creation losing on the unique index re-reads the winner's row.
func (r *categoryRepository) FirstOrCreateDefault(userID uuid.UUID) (*models.Category, error) {
	category, err := findDefault(r.db, userID)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return nil, err
	}

	category = models.NewDefaultCategory(userID)
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return findDefault(r.db, userID)
		}
		return nil, fmt.Errorf("failed to create default category: %w", err)
	}

	return category, nil
}

func findDefault(db *gorm.DB, userID uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := db.Where("user_id = ? AND is_deletable = ?", userID, false).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get default category: %w", err)
	}
	return &category, nil
}

func countReferences(db *gorm.DB, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count category transactions: %w", err)
	}
	return count, nil
}

func ensureNoReferences(db *gorm.DB, categoryID uuid.UUID) error {
	count, err := countReferences(db, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d remaining", ErrDanglingReferences, count)
	}
	return nil
}
