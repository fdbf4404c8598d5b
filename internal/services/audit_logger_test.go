package services

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuditLoggerTestSuite struct {
	suite.Suite
	buf    *bytes.Buffer
	logger AuditLoggerInterface
}

func (s *AuditLoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.logger = NewAuditLogger(slog.New(slog.NewJSONHandler(s.buf, nil)))
}

func TestAuditLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLoggerTestSuite))
}

func (s *AuditLoggerTestSuite) entry() map[string]interface{} {
	var entry map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &entry))
	return entry
}

func (s *AuditLoggerTestSuite) TestLogCategoryCreated_OmitsName() {
	userID, categoryID := uuid.New(), uuid.New()

	s.logger.LogCategoryCreated(userID, categoryID, "Zdrowie")

	entry := s.entry()
	s.Equal("category_created", entry["event_type"])
	s.Equal(userID.String(), entry["user_id"])
	s.Equal(categoryID.String(), entry["category_id"])
	s.Equal(float64(7), entry["name_length"])
	s.NotContains(s.buf.String(), "Zdrowie")
	s.Contains(entry, "timestamp")
}

func (s *AuditLoggerTestSuite) TestLogCategoryDeleted() {
	s.logger.LogCategoryDeleted(uuid.New(), uuid.New(), 12)

	entry := s.entry()
	s.Equal("category deleted", entry["msg"])
	s.Equal(float64(12), entry["reassigned_count"])
}

func (s *AuditLoggerTestSuite) TestLogTransactionChanged() {
	for _, operation := range []string{"create", "update", "delete"} {
		s.buf.Reset()
		s.logger.LogTransactionChanged(uuid.New(), uuid.New(), operation)

		entry := s.entry()
		s.Equal("transaction_"+operation, entry["event_type"])
		s.Equal("transaction "+operation+"d", entry["msg"])
	}
}

func (s *AuditLoggerTestSuite) TestLogOwnershipViolation_IsWarning() {
	s.logger.LogOwnershipViolation(uuid.New(), uuid.New(), "category", "delete category")

	entry := s.entry()
	s.Equal("WARN", entry["level"])
	s.Equal("category ownership violation", entry["msg"])
	s.Equal("delete category", entry["operation"])
}
