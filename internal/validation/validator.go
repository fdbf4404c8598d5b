package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with ledger rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// Decimals, ids and dates are validated through their string forms. Zero ids and
	// dates become "" so that `required` rejects them.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(uuidValue, uuid.UUID{})
	v.RegisterCustomTypeFunc(timeValue, time.Time{})

	_ = v.RegisterValidation("ledger_amount", validateLedgerAmount)
	_ = v.RegisterValidation("ledger_date", validateLedgerDate)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_name", validateCategoryName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors validates s and returns a field name to message map, or nil when s is valid.
// Errors other than field failures are returned as is.
func (v *Validator) FieldErrors(s interface{}) (map[string]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return fields, nil
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return ""
	}
	return d.String()
}

func uuidValue(field reflect.Value) interface{} {
	id, ok := field.Interface().(uuid.UUID)
	if !ok || id == uuid.Nil {
		return ""
	}
	return id.String()
}

func timeValue(field reflect.Value) interface{} {
	t, ok := field.Interface().(time.Time)
	if !ok || t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

// Custom validation functions

// validateLedgerAmount accepts a positive decimal string with at most 2 decimal places
// that fits decimal(12,2)
func validateLedgerAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return models.ValidateAmount(amount) == nil
}

// validateLedgerDate accepts a YYYY-MM-DD calendar date
func validateLedgerDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// validateTransactionType validates that transaction type is income or expense
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateCategoryName checks the trimmed name length. The reserved name is a domain
// rule and is left to the category service.
func validateCategoryName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	n := len([]rune(name))
	return n > 0 && n <= models.MaxCategoryNameLength
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "ledger_amount":
		return "must be a positive amount with up to 2 decimal places, at most 999999999.99"
	case "ledger_date":
		return "must be a date in YYYY-MM-DD format"
	case "transaction_type":
		return "must be a valid transaction type (income, expense)"
	case "category_name":
		return "must be between 1 and 100 characters"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
