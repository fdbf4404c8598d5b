package handlers

import (
	"net/http"

	"github.com/TomaszGajek/settlements-sub000/internal/dto"
	"github.com/TomaszGajek/settlements-sub000/internal/errors"
	"github.com/TomaszGajek/settlements-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the monthly dashboard
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns month totals and the daily breakdown
// @Summary Monthly dashboard
// @Description Income, expenses and balance of a month plus per-day totals for days with transactions
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} dto.DashboardResponse "Dashboard summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid month or year"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var params dto.DashboardParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(params); err != nil {
		return SendValidationError(c, validationDetails(err))
	}

	summary, err := h.dashboardService.Summarize(userID, params.Month, params.Year)
	if err != nil {
		return SendServiceError(c, ResourceTransaction, err)
	}

	return c.JSON(http.StatusOK, dto.NewDashboardResponse(summary))
}
