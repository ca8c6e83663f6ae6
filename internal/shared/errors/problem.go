// Package errors renders RFC 7807 style problem bodies for the HTTP API.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail is the failure body. Message carries the human readable reason and
// Status always equals the HTTP status code of the response.
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Message  string `json:"message"`
	Instance string `json:"instance,omitempty"`
}

// Error implements the error interface.
func (p ProblemDetail) Error() string {
	if p.Message != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Message)
	}
	return p.Title
}

// WithMessage returns a copy with the given message.
func (p ProblemDetail) WithMessage(message string) ProblemDetail {
	p.Message = message
	return p
}

// WithInstance returns a copy with the given instance URI.
func (p ProblemDetail) WithInstance(instance string) ProblemDetail {
	p.Instance = instance
	return p
}

const (
	TypeValidation       = "/problems/validation-error"
	TypeNotFound         = "/problems/not-found"
	TypeBadRequest       = "/problems/bad-request"
	TypeMethodNotAllowed = "/problems/method-not-allowed"
	TypeInternal         = "/problems/internal-error"
)

var (
	// ErrNotFound indicates the requested resource or path was not found.
	ErrNotFound = ProblemDetail{
		Type:   TypeNotFound,
		Title:  "Resource Not Found",
		Status: http.StatusNotFound,
	}

	// ErrValidation indicates the payload failed a validation step.
	ErrValidation = ProblemDetail{
		Type:   TypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
	}

	// ErrBadRequest indicates the request body could not be read at all.
	ErrBadRequest = ProblemDetail{
		Type:   TypeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
	}

	ErrMethodNotAllowed = ProblemDetail{
		Type:   TypeMethodNotAllowed,
		Title:  "Method Not Allowed",
		Status: http.StatusMethodNotAllowed,
	}

	// ErrInternal indicates an unexpected server error.
	ErrInternal = ProblemDetail{
		Type:    TypeInternal,
		Title:   "Internal Server Error",
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong!",
	}
)
