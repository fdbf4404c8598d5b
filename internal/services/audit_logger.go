package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// AuditLogger writes ledger mutations as structured events
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger creates an audit logger writing to logger, or to the default logger when nil
func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogCategoryCreated(userID, categoryID uuid.UUID, name string) {
	al.log(slog.LevelInfo, "category created",
		slog.String("event_type", "category_created"),
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.Int("name_length", len([]rune(name))),
	)
}

func (al *AuditLogger) LogCategoryRenamed(userID, categoryID uuid.UUID) {
	al.log(slog.LevelInfo, "category renamed",
		slog.String("event_type", "category_renamed"),
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
	)
}

func (al *AuditLogger) LogCategoryDeleted(userID, categoryID uuid.UUID, reassigned int64) {
	al.log(slog.LevelInfo, "category deleted",
		slog.String("event_type", "category_deleted"),
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.Int64("reassigned_count", reassigned),
	)
}

// LogTransactionChanged records a create, update or delete of a transaction
func (al *AuditLogger) LogTransactionChanged(userID, transactionID uuid.UUID, operation string) {
	al.log(slog.LevelInfo, "transaction "+operation+"d",
		slog.String("event_type", "transaction_"+operation),
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", transactionID.String()),
	)
}

func (al *AuditLogger) LogOwnershipViolation(userID, resourceID uuid.UUID, resource, operation string) {
	al.log(slog.LevelWarn, resource+" ownership violation",
		slog.String("event_type", "ownership_violation"),
		slog.String("user_id", userID.String()),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID.String()),
		slog.String("operation", operation),
	)
}

func (al *AuditLogger) log(level slog.Level, msg string, attrs ...slog.Attr) {
	attrs = append(attrs, slog.Time("timestamp", time.Now().UTC()))
	al.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

func auditOrDefault(auditLogger AuditLoggerInterface) AuditLoggerInterface {
	if auditLogger == nil {
		return NewAuditLogger(nil)
	}
	return auditLogger
}
