// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

// Package validation wraps go-playground/validator v10 with a shared
// instance and two menu validators:
//
//	menutag=<facet>  value is a controlled tag or step option of the facet
//	facet            value is the ID of a question step
//
// Field names in errors are JSON names. ValidateStruct returns a
// *RequestValidationError that converts to the VALIDATION_ERROR envelope:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/what2eat/internal/menu"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is one failed field.
type ValidationError struct {
	field   string
	tag     string
	value   interface{}
	message string
}

// Field returns the struct field name that failed validation.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError collects the failed fields of one struct.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	var messages []string
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

// APIError mirrors models.APIError so models tests can import this package.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the errors to a VALIDATION_ERROR. A single failure
// carries its field, tag and value; several are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	if len(ve.errors) == 0 {
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
		}
	}

	if len(ve.errors) == 1 {
		err := ve.errors[0]
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: err.message,
			Details: map[string]interface{}{
				"field": err.field,
				"tag":   err.tag,
				"value": err.value,
			},
		}
	}

	fields := make([]map[string]interface{}, len(ve.errors))
	var messages []string

	for i, err := range ve.errors {
		fields[i] = map[string]interface{}{
			"field":   err.field,
			"tag":     err.tag,
			"message": err.message,
		}
		messages = append(messages, fmt.Sprintf("%s: %s", err.field, err.message))
	}

	return &APIError{
		Code:    "VALIDATION_ERROR",
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{
			"fields": fields,
		},
	}
}

// GetValidator returns the shared validator, registering the menu
// validators on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation("menutag", validateMenuTag)
		_ = validate.RegisterValidation("facet", validateFacet)

		// Report JSON field names instead of Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})

	return validate
}

// ValidateStruct validates s and returns nil when it passes.
func ValidateStruct(s interface{}) *RequestValidationError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// InvalidValidationError: s was not a struct.
		return &RequestValidationError{
			errors: []ValidationError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
				},
			},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// translateError renders a field error in the VALIDATION_ERROR message
// style. Only the tags used by request and config structs are covered.
func translateError(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_without":
		return fmt.Sprintf("%s is required when %s is empty", field, param)
	case "excluded_with":
		return fmt.Sprintf("%s must not be combined with %s", field, param)
	case "facet":
		return field + " must be a question step id"
	case "menutag":
		return fmt.Sprintf("%s must be a known %s option", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "latitude":
		return field + " must be a valid latitude (-90 to 90)"
	case "longitude":
		return field + " must be a valid longitude (-180 to 180)"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "min", "max":
		return boundMessage(fe, field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// boundMessage words min/max by kind: characters for strings, items for
// slices.
func boundMessage(fe validator.FieldError, field, param string) string {
	bound := "at least"
	if fe.Tag() == "max" {
		bound = "at most"
	}
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("%s must be %s %s characters", field, bound, param)
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("%s must have %s %s items", field, bound, param)
	default:
		return fmt.Sprintf("%s must be %s %s", field, bound, param)
	}
}

// validateMenuTag accepts a controlled tag of the facet named by the
// parameter, or one of that facet's step option IDs (which adds the
// sentinels).
func validateMenuTag(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	facet := menu.Facet(fl.Param())
	if menu.InVocabulary(facet, value) {
		return true
	}
	step, _, ok := menu.StepByID(facet)
	return ok && step.HasOption(value)
}

// validateFacet accepts the ID of a question step.
func validateFacet(fl validator.FieldLevel) bool {
	_, _, ok := menu.StepByID(menu.Facet(fl.Field().String()))
	return ok
}
