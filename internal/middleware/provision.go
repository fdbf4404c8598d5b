package middleware

import (
	"log/slog"
	"sync"

	"github.com/TomaszGajek/settlements-sub000/internal/handlers"
	"github.com/TomaszGajek/settlements-sub000/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProvisionOwner makes sure the authenticated owner has a default category before any
// ledger operation runs. Owners are remembered once provisioned, so the store is hit on
// the first request per owner and process only. Must run after RequireAuth.
func ProvisionOwner(categoryService services.CategoryServiceInterface) echo.MiddlewareFunc {
	var provisioned sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
			if !ok {
				return next(c)
			}

			if _, done := provisioned.Load(userID); !done {
				category, err := categoryService.EnsureDefaultCategory(userID)
				if err != nil {
					slog.Error("failed to provision owner",
						"user_id", userID,
						"trace_id", GetTraceID(c),
						"error", err)
					return handlers.SendServiceError(c, handlers.ResourceCategory, err)
				}
				provisioned.Store(userID, category.ID)
			}

			return next(c)
		}
	}
}
