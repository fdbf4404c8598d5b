package dto

import (
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/google/uuid"
)

// Category Request DTOs

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,category_name"`
}

// UpdateCategoryRequest represents the request payload for renaming a category
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,category_name"`
}

// Category Response DTOs

// CategoryResponse represents a single category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IsDeletable bool      `json:"isDeletable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryListResponse represents the owner's categories
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// NewCategoryResponse converts a category model to its API representation
func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		IsDeletable: category.IsDeletable,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// NewCategoryListResponse converts category models to their API representation
func NewCategoryListResponse(categories []models.Category) CategoryListResponse {
	response := CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for i := range categories {
		response.Categories = append(response.Categories, NewCategoryResponse(&categories[i]))
	}
	return response
}
