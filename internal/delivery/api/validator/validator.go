// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"market/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError lists the failing fields keyed by their JSON names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator that reports JSON field names and knows the money rule.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	// Decimal fields are validated through their own rule, so expose them as values.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}

		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("money", validateMoney)

	return &CustomValidator{validate: v}
}

// Validate runs struct validation and converts failures to a ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = describe(fe)
	}

	return &ValidationError{Fields: fields}
}

// validateMoney accepts positive amounts with at most two decimal places.
func validateMoney(fl playground.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return d.IsPositive() && d.Equal(d.Round(2))
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + lengthUnit(fe)
	case "max":
		return "must be at most " + fe.Param() + lengthUnit(fe)
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "money":
		return "must be a positive amount with at most 2 decimal places"
	case "url":
		return "must be a valid URL"
	default:
		return "failed on " + fe.Tag()
	}
}

func lengthUnit(fe playground.FieldError) string {
	switch fe.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return " characters"
	default:
		return ""
	}
}
