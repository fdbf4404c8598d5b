package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/dto"
	"github.com/TomaszGajek/settlements-sub000/internal/errors"
	"github.com/TomaszGajek/settlements-sub000/internal/models"
	"github.com/TomaszGajek/settlements-sub000/internal/services"
	"github.com/TomaszGajek/settlements-sub000/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// CategoryHandlerSuite defines the test suite for CategoryHandler
type CategoryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestCategoryHandlerSuite runs the test suite
func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

// newAuthContext builds an authenticated request context with a raw JSON body
func newAuthContext(e *echo.Echo, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set(TraceIDContextKey, "test-trace-id")

	return c, rec
}

func decodeErrorResponse(s suite.TestingSuite, rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var response errors.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		s.T().Fatalf("decode error response: %v", err)
	}
	return response
}

func (s *CategoryHandlerSuite) category(name string, deletable bool) *models.Category {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.Category{
		ID:          uuid.New(),
		UserID:      s.testUserID,
		Name:        name,
		IsDeletable: deletable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *CategoryHandlerSuite) TestListCategories_Success() {
	categories := []models.Category{*s.category("Inne", false), *s.category("Jedzenie", true)}
	s.mockService.EXPECT().List(s.testUserID).Return(categories, nil)

	c, rec := newAuthContext(s.echo, http.MethodGet, "/api/v1/categories", "", s.testUserID)

	s.NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategoryListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Categories, 2)
	s.Equal("Inne", response.Categories[0].Name)
	s.False(response.Categories[0].IsDeletable)
	s.True(response.Categories[1].IsDeletable)
	s.Contains(rec.Body.String(), `"isDeletable"`)
}

func (s *CategoryHandlerSuite) TestListCategories_Unauthenticated() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), decodeErrorResponse(s, rec).Error.Code)
}

func (s *CategoryHandlerSuite) TestListCategories_PersistenceFailure() {
	s.mockService.EXPECT().
		List(s.testUserID).
		Return(nil, fmt.Errorf("%w: list categories: connection reset", services.ErrPersistenceFailure))

	c, rec := newAuthContext(s.echo, http.MethodGet, "/api/v1/categories", "", s.testUserID)

	s.NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	response := decodeErrorResponse(s, rec)
	s.Equal(string(errors.SystemDatabaseError), response.Error.Code)
	s.Equal("test-trace-id", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "connection reset")
}

func (s *CategoryHandlerSuite) TestCreateCategory_Success() {
	created := s.category("Transport", true)
	s.mockService.EXPECT().Create(s.testUserID, "  Transport ").Return(created, nil)

	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/categories", `{"name":"  Transport "}`, s.testUserID)

	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.CategoryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(created.ID, response.ID)
	s.Equal("Transport", response.Name)
	s.True(response.IsDeletable)
}

func (s *CategoryHandlerSuite) TestCreateCategory_MissingName() {
	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/categories", `{}`, s.testUserID)

	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	response := decodeErrorResponse(s, rec)
	s.Equal(string(errors.ValidationGeneral), response.Error.Code)
	s.Require().Len(response.Error.Details, 1)
	s.True(strings.HasPrefix(response.Error.Details[0], "name: "))
}

func (s *CategoryHandlerSuite) TestCreateCategory_MalformedBody() {
	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/categories", `{"name":`, s.testUserID)

	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationInvalidFormat), decodeErrorResponse(s, rec).Error.Code)
}

func (s *CategoryHandlerSuite) TestCreateCategory_ServiceErrors() {
	testCases := []struct {
		name         string
		err          error
		expectedCode errors.ErrorCode
		status       int
	}{
		{"reserved name", fmt.Errorf("%w: %v", services.ErrInvalidName, models.ErrCategoryNameReserved), errors.CategoryInvalidName, http.StatusBadRequest},
		{"duplicate", services.ErrDuplicateName, errors.CategoryDuplicateName, http.StatusConflict},
		{"unexpected", fmt.Errorf("boom"), errors.SystemInternalError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().Create(s.testUserID, "Inne").Return(nil, tc.err)

			c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/categories", `{"name":"Inne"}`, s.testUserID)

			s.NoError(s.handler.CreateCategory(c))
			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.expectedCode), decodeErrorResponse(s, rec).Error.Code)
		})
	}
}

func (s *CategoryHandlerSuite) TestUpdateCategory_Success() {
	existing := s.category("Rachunki", true)
	s.mockService.EXPECT().Update(s.testUserID, existing.ID, "Rachunki").Return(existing, nil)

	c, rec := newAuthContext(s.echo, http.MethodPatch, "/api/v1/categories/"+existing.ID.String(), `{"name":"Rachunki"}`, s.testUserID)
	c.SetParamNames("id")
	c.SetParamValues(existing.ID.String())

	s.NoError(s.handler.UpdateCategory(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"name":"Rachunki"`)
}

func (s *CategoryHandlerSuite) TestUpdateCategory_InvalidID() {
	c, rec := newAuthContext(s.echo, http.MethodPatch, "/api/v1/categories/not-a-uuid", `{"name":"X"}`, s.testUserID)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.UpdateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationInvalidID), decodeErrorResponse(s, rec).Error.Code)
}

func (s *CategoryHandlerSuite) TestUpdateCategory_ServiceErrors() {
	testCases := []struct {
		name         string
		err          error
		expectedCode errors.ErrorCode
		status       int
	}{
		{"not found", services.ErrNotFound, errors.CategoryNotFound, http.StatusNotFound},
		{"forbidden", services.ErrForbidden, errors.CategoryForbidden, http.StatusForbidden},
		{"default category", services.ErrNotEditable, errors.CategoryNotEditable, http.StatusConflict},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			categoryID := uuid.New()
			s.mockService.EXPECT().Update(s.testUserID, categoryID, "Nowa").Return(nil, tc.err)

			c, rec := newAuthContext(s.echo, http.MethodPatch, "/api/v1/categories/"+categoryID.String(), `{"name":"Nowa"}`, s.testUserID)
			c.SetParamNames("id")
			c.SetParamValues(categoryID.String())

			s.NoError(s.handler.UpdateCategory(c))
			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.expectedCode), decodeErrorResponse(s, rec).Error.Code)
		})
	}
}

func (s *CategoryHandlerSuite) TestDeleteCategory_Success() {
	categoryID := uuid.New()
	s.mockService.EXPECT().Delete(s.testUserID, categoryID).Return(nil)

	c, rec := newAuthContext(s.echo, http.MethodDelete, "/api/v1/categories/"+categoryID.String(), "", s.testUserID)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.NoError(s.handler.DeleteCategory(c))
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *CategoryHandlerSuite) TestDeleteCategory_DefaultCategory() {
	categoryID := uuid.New()
	s.mockService.EXPECT().Delete(s.testUserID, categoryID).Return(services.ErrNotDeletable)

	c, rec := newAuthContext(s.echo, http.MethodDelete, "/api/v1/categories/"+categoryID.String(), "", s.testUserID)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.NoError(s.handler.DeleteCategory(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(string(errors.CategoryNotDeletable), decodeErrorResponse(s, rec).Error.Code)
}
