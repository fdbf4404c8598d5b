package handlers

import (
	"net/http"

	"github.com/TomaszGajek/settlements-sub000/internal/dto"
	"github.com/TomaszGajek/settlements-sub000/internal/errors"
	"github.com/TomaszGajek/settlements-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories returns the owner's categories
// @Summary List categories
// @Description Retrieve all categories of the authenticated user ordered by name, including the default category
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CategoryListResponse "Categories of the user"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.categoryService.List(userID)
	if err != nil {
		return SendServiceError(c, ResourceCategory, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryListResponse(categories))
}

// CreateCategory adds a category
// @Summary Create category
// @Description Create a deletable category. Names are trimmed; the default category name is reserved in any letter case
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category name"
// @Success 201 {object} dto.CategoryResponse "Category created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid body or CATEGORY_003 - Invalid or reserved name"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_004 - Name already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, validationDetails(err))
	}

	category, err := h.categoryService.Create(userID, req.Name)
	if err != nil {
		return SendServiceError(c, ResourceCategory, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// UpdateCategory renames a category
// @Summary Rename category
// @Description Rename one of the user's deletable categories
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param request body dto.UpdateCategoryRequest true "New name"
// @Success 200 {object} dto.CategoryResponse "Category renamed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid ID or CATEGORY_003 - Invalid name"
// @Failure 403 {object} errors.ErrorResponse "CATEGORY_002 - Category belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_004 - Name already exists or CATEGORY_005 - Default category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, validationDetails(err))
	}

	category, err := h.categoryService.Update(userID, categoryID, req.Name)
	if err != nil {
		return SendServiceError(c, ResourceCategory, err)
	}

	return c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// DeleteCategory deletes a category and moves its transactions to the default category
// @Summary Delete category
// @Description Delete one of the user's deletable categories. Its transactions are reassigned to the default category
// @Tags Categories
// @Security BearerAuth
// @Param id path string true "Category ID (UUID)"
// @Success 204 "Category deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid ID"
// @Failure 403 {object} errors.ErrorResponse "CATEGORY_002 - Category belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_006 - Default category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.Delete(userID, categoryID); err != nil {
		return SendServiceError(c, ResourceCategory, err)
	}

	return c.NoContent(http.StatusNoContent)
}
