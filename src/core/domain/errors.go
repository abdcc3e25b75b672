// Package domain holds the entities, rule functions, and error taxonomy
// for the joke application. It depends on nothing outside the standard
// library so the rules stay testable in isolation.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error categories the HTTP layer knows how to map.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// DomainError attaches a message, and optionally the offending field,
// to one of the sentinel errors above.
type DomainError struct {
	Base    error
	Message string
	Field   string
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: resource}
}

// NewValidationError creates a validation error naming the failing field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrInvalidInput, Message: message, Field: field}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Base: ErrConflict, Message: message}
}

func NewAlreadyExistsError(message string) *DomainError {
	return &DomainError{Base: ErrAlreadyExists, Message: message}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{Base: ErrForbidden, Message: message}
}

func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{Base: ErrUnauthorized, Message: message}
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }

func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }
