package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(CategoryNotFound, s.traceID)

	s.Equal("CATEGORY_001", response.Error.Code)
	s.Equal("Category not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		CategoryInvalidName,
		s.traceID,
		WithMessage("Category name is reserved"),
		WithDetails("name: reserved"),
	)

	s.Equal("Category name is reserved", response.Error.Message)
	s.Equal([]string{"name: reserved"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"type":   "must be a valid transaction type (income, expense)",
		"amount": "is required",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{
		"amount: is required",
		"type: must be a valid transaction type (income, expense)",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalError() {
	internal := errors.New("pq: relation \"categories\" does not exist")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "categories")
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	response, err := WrapDatabaseError(errors.New("timeout"), s.traceID)

	s.Error(err)
	s.Equal(string(SystemDatabaseError), response.Error.Code)
	s.True(response.IsServerError())
}

func (s *ResponseTestSuite) TestToJSON() {
	data, err := NewErrorResponse(TransactionForbidden, s.traceID).ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("TRANSACTION_002", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{CategoryInvalidName, http.StatusBadRequest},
		{AuthExpiredToken, http.StatusUnauthorized},
		{CategoryForbidden, http.StatusForbidden},
		{TransactionForbidden, http.StatusForbidden},
		{CategoryNotFound, http.StatusNotFound},
		{TransactionNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{CategoryDuplicateName, http.StatusConflict},
		{CategoryNotEditable, http.StatusConflict},
		{CategoryNotDeletable, http.StatusConflict},
		{TransactionInvalidCategory, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerClassification() {
	s.True(NewErrorResponse(CategoryNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(CategoryNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemInternalError, s.traceID).IsServerError())
	s.Equal("[CATEGORY_001] Category not found (trace: "+s.traceID+")", NewErrorResponse(CategoryNotFound, s.traceID).String())
}
