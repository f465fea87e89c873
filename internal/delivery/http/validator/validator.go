// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request bodies against their `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Failures are ErrValidationFailed with
// one "field: reason" entry per violated rule.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid email address"
	case "eqfield":
		return fmt.Sprintf("%s: must match %s", field, jsonName(fe))
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s: must contain at least %s items", field, fe.Param())
		}

		return fmt.Sprintf("%s: must be at least %s characters", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s: must contain at most %s items", field, fe.Param())
		}

		return fmt.Sprintf("%s: must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s: failed %q rule", field, fe.Tag())
	}
}

// jsonName maps the eqfield parameter (a Go field name) to its JSON name.
func jsonName(fe validator.FieldError) string {
	return strings.ToLower(fe.Param())
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}
