package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the ledger HTTP handlers
type Handlers struct {
	Category    *CategoryHandler
	Transaction *TransactionHandler
	Dashboard   *DashboardHandler
	Health      *HealthCheckHandler
}

// RegisterRoutes mounts the health check on e and the ledger API under /api/v1.
// protected runs before every ledger route, typically authentication and rate limiting.
func RegisterRoutes(e *echo.Echo, h Handlers, protected ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api/v1", protected...)

	categories := api.Group("/categories")
	categories.GET("", h.Category.ListCategories)
	categories.POST("", h.Category.CreateCategory)
	categories.PATCH("/:id", h.Category.UpdateCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)

	transactions := api.Group("/transactions")
	transactions.GET("", h.Transaction.ListTransactions)
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.GET("/:id", h.Transaction.GetTransaction)
	transactions.PATCH("/:id", h.Transaction.UpdateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)

	api.GET("/dashboard", h.Dashboard.GetDashboard)
}
