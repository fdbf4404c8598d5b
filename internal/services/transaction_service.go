package services

import (
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"
	"github.com/TomaszGajek/settlements-sub000/internal/repositories"
	"github.com/TomaszGajek/settlements-sub000/internal/validation"

	"github.com/google/uuid"
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	validator       *validation.Validator
	metrics         MetricsRecorderInterface
	auditLogger     AuditLoggerInterface
}

// NewTransactionService creates a new TransactionServiceInterface instance
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		validator:       validation.GetValidator(),
		metrics:         metricsOrNoop(metrics),
		auditLogger:     auditOrDefault(auditLogger),
	}
}

// Create validates and stores a transaction. A category that is missing or owned by
// someone else yields ErrInvalidCategory.
func (s *transactionService) Create(userID uuid.UUID, input models.TransactionInput) (*models.Transaction, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	transaction := input.ToTransaction(userID)
	if err := s.transactionRepo.Create(transaction); err != nil {
		s.recordOperation("create", "failed")
		return nil, classifyStoreError(s.metrics, scopeTransactionWrite, "create transaction", err)
	}

	s.recordOperation("create", "success")
	s.auditLogger.LogTransactionChanged(userID, transaction.ID, "create")

	return transaction, nil
}

// Get returns one of the owner's transactions
func (s *transactionService) Get(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	return s.loadOwned(userID, transactionID, "get transaction")
}

// Update applies a partial update. Existence is checked before ownership so that a
// missing row and another owner's row produce different errors.
func (s *transactionService) Update(userID, transactionID uuid.UUID, patch models.TransactionPatch) (*models.Transaction, error) {
	if patch.IsEmpty() {
		return nil, NewValidationError("body", "at least one field must be provided")
	}
	if err := s.validate(patch); err != nil {
		return nil, err
	}

	if _, err := s.loadOwned(userID, transactionID, "update transaction"); err != nil {
		return nil, err
	}

	updated, err := s.transactionRepo.Update(userID, transactionID, patch.Changes())
	if err != nil {
		s.recordOperation("update", "failed")
		return nil, classifyStoreError(s.metrics, scopeTransactionWrite, "update transaction", err)
	}

	s.recordOperation("update", "success")
	s.auditLogger.LogTransactionChanged(userID, transactionID, "update")

	return updated, nil
}

// Delete removes one of the owner's transactions
func (s *transactionService) Delete(userID, transactionID uuid.UUID) error {
	if _, err := s.loadOwned(userID, transactionID, "delete transaction"); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(userID, transactionID); err != nil {
		s.recordOperation("delete", "failed")
		return classifyStoreError(s.metrics, scopeTransactionWrite, "delete transaction", err)
	}

	s.recordOperation("delete", "success")
	s.auditLogger.LogTransactionChanged(userID, transactionID, "delete")

	return nil
}

// List returns one page of the owner's transactions dated within the requested month,
// newest first
func (s *transactionService) List(userID uuid.UUID, query models.TransactionListQuery) (*models.TransactionPage, error) {
	if err := s.validate(query); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("transaction_list", time.Since(start))
	}()

	startDate, endDate := models.MonthRange(query.Year, time.Month(query.Month))
	transactions, total, err := s.transactionRepo.GetPageByDateRange(userID, startDate, endDate, query.Offset(), query.PageSize)
	if err != nil {
		return nil, classifyStoreError(s.metrics, scopeRead, "list transactions", err)
	}

	return &models.TransactionPage{
		Transactions: transactions,
		Pagination:   models.NewPagination(query.Page, query.PageSize, total),
	}, nil
}

func (s *transactionService) loadOwned(userID, transactionID uuid.UUID, op string) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		return nil, classifyStoreError(s.metrics, scopeRead, op, err)
	}

	if transaction.UserID != userID {
		s.auditLogger.LogOwnershipViolation(userID, transactionID, "transaction", op)
		s.metrics.IncrementCounter("ownership_violation", map[string]string{"resource": "transaction"})
		return nil, ErrForbidden
	}

	return transaction, nil
}

func (s *transactionService) validate(input interface{}) error {
	fields, err := s.validator.FieldErrors(input)
	if err != nil {
		return NewValidationError("body", err.Error())
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *transactionService) recordOperation(operation, status string) {
	s.metrics.IncrementCounter("transaction_operation", map[string]string{
		"operation": operation,
		"status":    status,
	})
}
