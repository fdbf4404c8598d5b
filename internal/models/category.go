package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultCategoryName is the fallback category every owner has exactly one of.
	DefaultCategoryName = "Inne"

	MaxCategoryNameLength = 100
)

var (
	ErrCategoryNameEmpty    = errors.New("category name is required")
	ErrCategoryNameTooLong  = errors.New("category name must be at most 100 characters")
	ErrCategoryNameReserved = errors.New("category name is reserved")
)

// Category groups an owner's transactions. The default category (IsDeletable=false)
// receives the transactions of deleted categories.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name,priority:1" json:"user_id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name,priority:2" json:"name"`
	IsDeletable bool      `gorm:"not null" json:"is_deletable"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsDefault reports whether c is the owner's fallback category.
func (c *Category) IsDefault() bool {
	return !c.IsDeletable
}

// BelongsTo returns true if the category is owned by userID
func (c *Category) BelongsTo(userID uuid.UUID) bool {
	return c.UserID == userID
}

// NewDefaultCategory builds the non-deletable fallback category for an owner.
func NewDefaultCategory(userID uuid.UUID) *Category {
	return &Category{
		UserID:      userID,
		Name:        DefaultCategoryName,
		IsDeletable: false,
	}
}

// IsReservedCategoryName matches the default category name in any letter case.
// Substrings do not count: "Różne inne wydatki" is an ordinary name.
func IsReservedCategoryName(name string) bool {
	return strings.EqualFold(name, DefaultCategoryName)
}

// NormalizeCategoryName trims name and checks it against the naming rules shared by
// create and rename. Length is counted in characters, not bytes.
func NormalizeCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	switch {
	case trimmed == "":
		return "", ErrCategoryNameEmpty
	case utf8.RuneCountInString(trimmed) > MaxCategoryNameLength:
		return "", ErrCategoryNameTooLong
	case IsReservedCategoryName(trimmed):
		return "", ErrCategoryNameReserved
	}

	return trimmed, nil
}
