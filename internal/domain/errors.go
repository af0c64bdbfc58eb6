package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrProductNotFound is raised when a product can't be found in the store
var ErrProductNotFound = errors.New("product not found")

// APIError is a failure that maps directly onto an HTTP response. Handlers
// construct one at the point a rule is violated and return it immediately;
// the transport layer's error writer is the single consumer.
type APIError struct {
	Status  int
	Message string
	Details []string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
}

// NewAPIError creates a generic error with an arbitrary status code.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// NewNotFoundError creates a 404 error. An empty message falls back to
// "Resource not found".
func NewNotFoundError(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// NewValidationError creates a 400 error carrying the validator's messages.
func NewValidationError(details []string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: "Invalid data",
		Details: details,
	}
}

// NewUnauthorizedError creates a 401 error. An empty message falls back to
// "Invalid or missing API key".
func NewUnauthorizedError(message string) *APIError {
	if message == "" {
		message = "Invalid or missing API key"
	}
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}
