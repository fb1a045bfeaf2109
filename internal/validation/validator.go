// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

// Package validation provides struct validation using go-playground/validator v10.
// It exposes a thread-safe singleton validator with a custom "notblank" rule and
// translates field errors into the aggregated, human-readable messages the API
// returns to clients.
//
// Every field is evaluated independently (no cross-field short-circuit), so a
// caller sees all problems in one response:
//
//	req := models.CreateBookRequest{...}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Message == "Validation Error: Title cannot be empty, Author cannot exceed 255 characters"
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ErrorCode is the machine-readable code carried by validation failures.
const ErrorCode = "VALIDATION_ERROR"

// messagePrefix is prepended to the aggregated field messages.
const messagePrefix = "Validation Error: "

// FieldError represents a single field validation error.
type FieldError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the struct field name that failed validation.
func (e *FieldError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string {
	return e.tag
}

// Error returns the human-readable message for this field.
func (e *FieldError) Error() string {
	return e.message
}

// RequestValidationError is the aggregated result of one validation pass.
// All applicable field checks run; the per-field messages are collected in
// field-declaration order.
type RequestValidationError struct {
	errors []FieldError
}

// NewRequestValidationError builds a validation error from raw messages.
// Used by parameter parsing where no struct tags are involved.
func NewRequestValidationError(messages ...string) *RequestValidationError {
	fieldErrors := make([]FieldError, len(messages))
	for i, msg := range messages {
		fieldErrors[i] = FieldError{message: msg}
	}
	return &RequestValidationError{errors: fieldErrors}
}

// Errors returns the individual field errors.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.errors
}

// Messages returns the per-field messages in declaration order.
func (ve *RequestValidationError) Messages() []string {
	messages := make([]string, len(ve.errors))
	for i, err := range ve.errors {
		messages[i] = err.message
	}
	return messages
}

// Error implements the error interface, returning the aggregated message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return messagePrefix + "invalid input"
	}
	return messagePrefix + strings.Join(ve.Messages(), ", ")
}

// APIError mirrors models.APIError to avoid an import cycle.
type APIError struct {
	Message string
	Code    string
}

// ToAPIError converts the aggregated validation error to the API error shape.
func (ve *RequestValidationError) ToAPIError() *APIError {
	return &APIError{
		Code:    ErrorCode,
		Message: ve.Error(),
	}
}

// GetValidator returns the singleton validator instance with the custom
// "notblank" rule registered. Thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// notblank fails on strings that are empty after trimming. Distinct
		// from required so a present-but-empty field reports "cannot be empty"
		// while a missing field reports "is required".
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})

	return validate
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError otherwise.
func ValidateStruct(s interface{}) *RequestValidationError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Unexpected error type - wrap it
		return &RequestValidationError{
			errors: []FieldError{{field: "unknown", tag: "unknown", message: err.Error()}},
		}
	}

	fieldErrors := make([]FieldError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = FieldError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// errorMessageTemplates maps validation tags to message templates without a
// parameter. %s is the field name.
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"notblank": "%s cannot be empty",
	"email":    "%s must be a valid email address",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s cannot exceed %s characters", field, param)
		}
		return fmt.Sprintf("%s cannot exceed %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
