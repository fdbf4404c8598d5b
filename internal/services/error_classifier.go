package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/TomaszGajek/settlements-sub000/internal/repositories"

	"gorm.io/gorm"
)

// storeScope tells the classifier which constraint violations are meaningful for the
// failed operation
type storeScope int

const (
	scopeRead storeScope = iota
	scopeCategoryWrite
	scopeTransactionWrite
)

// classifyStoreError maps a repository error to the domain error taxonomy. Anything it
// does not recognise becomes ErrPersistenceFailure with the store error kept in the chain.
func classifyStoreError(metrics MetricsRecorderInterface, scope storeScope, op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repositories.ErrCategoryNotOwned):
		return ErrInvalidCategory
	case errors.Is(err, repositories.ErrCategoryNotFound),
		errors.Is(err, repositories.ErrTransactionNotFound):
		return ErrNotFound
	case scope == scopeTransactionWrite && errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidCategory
	case scope == scopeCategoryWrite && errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateName
	}

	slog.Error("persistence failure",
		"operation", op,
		"error", err)
	metrics.IncrementCounter("persistence_failure", map[string]string{"operation": op})

	return fmt.Errorf("%w: %s: %w", ErrPersistenceFailure, op, err)
}
