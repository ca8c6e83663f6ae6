package pipeline

import (
	"errors"
	"fmt"
	"net/http"
)

// Rejection is the structured failure a step returns to halt a pipeline.
// Status maps directly onto the HTTP status code surfaced to the caller.
type Rejection struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	if r == nil {
		return ""
	}
	return r.Message
}

// BadRequest builds a 400 rejection for malformed, missing or inconsistent fields
// and for illegal state transitions.
func BadRequest(format string, args ...any) *Rejection {
	return &Rejection{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a 404 rejection for identifiers that do not resolve.
func NotFound(format string, args ...any) *Rejection {
	return &Rejection{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// AsRejection reports whether err carries a Rejection anywhere in its chain.
func AsRejection(err error) (*Rejection, bool) {
	var rejection *Rejection
	if errors.As(err, &rejection) && rejection != nil {
		return rejection, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 rejection.
func IsNotFound(err error) bool {
	rejection, ok := AsRejection(err)
	return ok && rejection.Status == http.StatusNotFound
}
