// Package validator adapts go-playground/validator to echo's Validator
// interface, turning tag failures into the API's per-field error list.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	domainerrors "innkeeper/internal/domain/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a RequestValidator with json-tag field names.
func New() *RequestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Report fields under their json names so errors match the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks the struct and converts failures into a ValidationError
// carrying one entry per failed field, in declaration order.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	invalid, ok := err.(playground.ValidationErrors)
	if !ok {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "",
			Message: "Invalid input",
		})
	}

	fields := make([]domainerrors.FieldError, 0, len(invalid))
	for _, fe := range invalid {
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// messageFor renders a human-readable message for a single failed rule.
func messageFor(fe playground.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, fe.Param())
	case "email":
		return "Please provide a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid ID", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return "Input"
	}

	return strings.ToUpper(field[:1]) + field[1:]
}
