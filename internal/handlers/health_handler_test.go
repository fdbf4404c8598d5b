package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TomaszGajek/settlements-sub000/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type HealthHandlerSuite struct {
	suite.Suite
	mock    sqlmock.Sqlmock
	handler *HealthCheckHandler
	echo    *echo.Echo
}

func (s *HealthHandlerSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)
	s.mock = mock

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	s.Require().NoError(err)

	s.handler = NewHealthCheckHandler(db)
	s.echo = echo.New()
}

func (s *HealthHandlerSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerSuite))
}

func (s *HealthHandlerSuite) TestHealthCheck_Healthy() {
	s.mock.ExpectPing()

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	s.NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var response HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("healthy", response.Status)
	s.Equal("up", response.Database)
	s.NotEmpty(response.Time)
}

func (s *HealthHandlerSuite) TestHealthCheck_DatabaseDown() {
	s.mock.ExpectPing().WillReturnError(fmt.Errorf("connection refused"))

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	s.NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.SystemServiceUnavailable), response.Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}
