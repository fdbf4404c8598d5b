package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategoryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "Transport", want: "Transport"},
		{name: "trimmed", input: "  Jedzenie \t", want: "Jedzenie"},
		{name: "contains reserved word", input: "Różne inne wydatki", want: "Różne inne wydatki"},
		{name: "multibyte at limit", input: strings.Repeat("ą", MaxCategoryNameLength), want: strings.Repeat("ą", MaxCategoryNameLength)},
		{name: "empty", input: "", wantErr: ErrCategoryNameEmpty},
		{name: "whitespace only", input: "   ", wantErr: ErrCategoryNameEmpty},
		{name: "too long", input: strings.Repeat("a", MaxCategoryNameLength+1), wantErr: ErrCategoryNameTooLong},
		{name: "reserved", input: "Inne", wantErr: ErrCategoryNameReserved},
		{name: "reserved lowercase", input: "inne", wantErr: ErrCategoryNameReserved},
		{name: "reserved uppercase", input: "INNE", wantErr: ErrCategoryNameReserved},
		{name: "reserved mixed case", input: "InNe", wantErr: ErrCategoryNameReserved},
		{name: "reserved padded", input: " inne ", wantErr: ErrCategoryNameReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCategoryName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDefaultCategory(t *testing.T) {
	userID := uuid.New()

	category := NewDefaultCategory(userID)

	assert.Equal(t, DefaultCategoryName, category.Name)
	assert.True(t, category.IsDefault())
	assert.True(t, category.BelongsTo(userID))
	assert.False(t, category.BelongsTo(uuid.New()))
}
