package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := Handlers{
		Category:    NewCategoryHandler(nil),
		Transaction: NewTransactionHandler(nil),
		Dashboard:   NewDashboardHandler(nil),
		Health:      NewHealthCheckHandler(nil),
	}

	blocked := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return c.NoContent(http.StatusTeapot)
		}
	}
	RegisterRoutes(e, h, blocked)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"GET /health",
		"GET /api/v1/categories",
		"POST /api/v1/categories",
		"PATCH /api/v1/categories/:id",
		"DELETE /api/v1/categories/:id",
		"GET /api/v1/transactions",
		"POST /api/v1/transactions",
		"GET /api/v1/transactions/:id",
		"PATCH /api/v1/transactions/:id",
		"DELETE /api/v1/transactions/:id",
		"GET /api/v1/dashboard",
	} {
		assert.True(t, registered[route], route)
	}

	for _, path := range []string{"/api/v1/categories", "/api/v1/transactions/abc", "/api/v1/dashboard?month=1&year=2024"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code, path)
	}
}
