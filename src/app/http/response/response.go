// Package response defines the JSON envelope shared by every endpoint
// and the mapping from domain errors to HTTP status codes.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokebox/src/core/domain"
)

// Success wraps successful payloads.
type Success struct {
	Data any `json:"data"`
}

// Error wraps error payloads.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code, a human-readable message,
// the offending field for validation errors, and the request id.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Data: data})
}

// NoContent sends a 204 response with no body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message, requestID string) {
	fail(c, http.StatusBadRequest, "BAD_REQUEST", message, "", requestID)
}

// ValidationError sends a 400 response naming the failing field.
func ValidationError(c *gin.Context, field, message, requestID string) {
	fail(c, http.StatusBadRequest, "VALIDATION_ERROR", message, field, requestID)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	fail(c, http.StatusNotFound, "NOT_FOUND", message, "", requestID)
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message, requestID string) {
	fail(c, http.StatusConflict, "CONFLICT", message, "", requestID)
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message, requestID string) {
	fail(c, http.StatusForbidden, "FORBIDDEN", message, "", requestID)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message, requestID string) {
	fail(c, http.StatusUnauthorized, "UNAUTHORIZED", message, "", requestID)
}

// InternalError sends a 500 response without internal detail.
func InternalError(c *gin.Context, requestID string) {
	fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", "", requestID)
}

func fail(c *gin.Context, status int, code, message, field, requestID string) {
	c.JSON(status, Error{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Field:     field,
			RequestID: requestID,
		},
	})
}

// FromDomainError maps a domain error to the matching HTTP response.
// Unknown errors become a generic 500 so storage detail never leaks.
func FromDomainError(c *gin.Context, err error, requestID string) {
	switch {
	case domain.IsNotFound(err):
		NotFound(c, err.Error(), requestID)
	case domain.IsValidationError(err):
		if domainErr, ok := err.(*domain.DomainError); ok {
			ValidationError(c, domainErr.Field, domainErr.Message, requestID)
		} else {
			BadRequest(c, err.Error(), requestID)
		}
	case domain.IsConflict(err), domain.IsAlreadyExists(err):
		Conflict(c, err.Error(), requestID)
	case domain.IsForbidden(err):
		Forbidden(c, err.Error(), requestID)
	case domain.IsUnauthorized(err):
		Unauthorized(c, err.Error(), requestID)
	default:
		InternalError(c, requestID)
	}
}
