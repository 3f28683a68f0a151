// Package validator adapts go-playground/validator to Echo's Validator
// interface and turns tag failures into user-facing messages.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "quill/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request payloads against their struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator. Field names in error messages come from the
// json tag, so they match what the client actually sent.
func New() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. The first failed rule wins; clients get
// one actionable message at a time.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return domainerrors.ErrValidationFailed
	}

	return domainerrors.ErrValidationFailed.WithMessage(fieldMessage(validationErrs[0]))
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := titleCase(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func titleCase(name string) string {
	if name == "" {
		return name
	}

	return strings.ToUpper(name[:1]) + name[1:]
}
