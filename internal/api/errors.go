package api

import (
	"errors"
	"net/http"

	"github.com/tasktrack-io/tasktrack/internal/domain"
	"github.com/tasktrack-io/tasktrack/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Default: internal server error. Store and cache failures both land
	// here; the client is never told which of the two backends failed.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTitleRequired):
		return "Title is required"

	case store.IsNotFoundError(err):
		return "Task not found"

	default:
		return "Server error"
	}
}
