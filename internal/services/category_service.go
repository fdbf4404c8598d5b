package services

import (
	"fmt"
	"log/slog"

	"github.com/TomaszGajek/settlements-sub000/internal/models"
	"github.com/TomaszGajek/settlements-sub000/internal/repositories"

	"github.com/google/uuid"
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	auditLogger  AuditLoggerInterface
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		metrics:      metricsOrNoop(metrics),
		auditLogger:  auditOrDefault(auditLogger),
	}
}

// List returns the owner's categories ordered by name
func (s *categoryService) List(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, classifyStoreError(s.metrics, scopeRead, "list categories", err)
	}
	return categories, nil
}

// Create adds a deletable category. Duplicate detection is case-sensitive while the
// reserved default name is rejected in any case.
func (s *categoryService) Create(userID uuid.UUID, name string) (*models.Category, error) {
	normalized, err := normalizeCategoryName(name)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(userID, normalized, uuid.Nil); err != nil {
		return nil, err
	}

	category := &models.Category{
		UserID:      userID,
		Name:        normalized,
		IsDeletable: true,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		s.recordOperation("create", "failed")
		return nil, classifyStoreError(s.metrics, scopeCategoryWrite, "create category", err)
	}

	s.recordOperation("create", "success")
	s.auditLogger.LogCategoryCreated(userID, category.ID, category.Name)

	return category, nil
}

// Update renames one of the owner's deletable categories
func (s *categoryService) Update(userID, categoryID uuid.UUID, name string) (*models.Category, error) {
	category, err := s.loadOwned(userID, categoryID, "update category")
	if err != nil {
		return nil, err
	}

	if category.IsDefault() {
		return nil, ErrNotEditable
	}

	normalized, err := normalizeCategoryName(name)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(userID, normalized, category.ID); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.UpdateName(category, normalized); err != nil {
		s.recordOperation("update", "failed")
		return nil, classifyStoreError(s.metrics, scopeCategoryWrite, "update category", err)
	}

	s.recordOperation("update", "success")
	s.auditLogger.LogCategoryRenamed(userID, category.ID)

	return category, nil
}

// Delete reassigns the category's transactions to the owner's default category and
// removes it in one database transaction, then verifies that nothing still points at it.
func (s *categoryService) Delete(userID, categoryID uuid.UUID) error {
	category, err := s.loadOwned(userID, categoryID, "delete category")
	if err != nil {
		return err
	}

	if category.IsDefault() {
		return ErrNotDeletable
	}

	reassigned, err := s.categoryRepo.DeleteWithReassignment(userID, categoryID)
	if err != nil {
		s.recordOperation("delete", "failed")
		return classifyStoreError(s.metrics, scopeCategoryWrite, "delete category", err)
	}

	remaining, err := s.categoryRepo.CountTransactions(categoryID)
	if err != nil {
		s.recordOperation("delete", "failed")
		return classifyStoreError(s.metrics, scopeRead, "verify category deletion", err)
	}
	if remaining > 0 {
		slog.Error("transactions reference deleted category",
			"category_id", categoryID,
			"user_id", userID,
			"remaining", remaining)
		s.recordOperation("delete", "failed")
		return fmt.Errorf("%w: %d transactions still reference deleted category %s",
			ErrPersistenceFailure, remaining, categoryID)
	}

	s.recordOperation("delete", "success")
	s.metrics.RecordGauge("category_reassigned_transactions", float64(reassigned), nil)
	s.auditLogger.LogCategoryDeleted(userID, categoryID, reassigned)

	return nil
}

// EnsureDefaultCategory returns the owner's default category, creating it when the owner
// has none yet
func (s *categoryService) EnsureDefaultCategory(userID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.FirstOrCreateDefault(userID)
	if err != nil {
		return nil, classifyStoreError(s.metrics, scopeRead, "ensure default category", err)
	}
	return category, nil
}

// loadOwned distinguishes a missing category from another owner's category
func (s *categoryService) loadOwned(userID, categoryID uuid.UUID, op string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, classifyStoreError(s.metrics, scopeRead, op, err)
	}

	if !category.BelongsTo(userID) {
		s.auditLogger.LogOwnershipViolation(userID, categoryID, "category", op)
		s.metrics.IncrementCounter("ownership_violation", map[string]string{"resource": "category"})
		return nil, ErrForbidden
	}

	return category, nil
}

func (s *categoryService) ensureNameAvailable(userID uuid.UUID, name string, excludeID uuid.UUID) error {
	exists, err := s.categoryRepo.ExistsByName(userID, name, excludeID)
	if err != nil {
		return classifyStoreError(s.metrics, scopeRead, "check category name", err)
	}
	if exists {
		return ErrDuplicateName
	}
	return nil
}

func (s *categoryService) recordOperation(operation, status string) {
	s.metrics.IncrementCounter("category_operation", map[string]string{
		"operation": operation,
		"status":    status,
	})
}

func normalizeCategoryName(name string) (string, error) {
	normalized, err := models.NormalizeCategoryName(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	return normalized, nil
}
