// Package apperr defines the single application error kind used by every route.
// An *Error carries a human-readable message and the HTTP status it renders with.
// Anything that is not an *Error is unclassified and renders as a 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// MsgRequiredFields is returned whenever a write is missing one of its required fields.
const MsgRequiredFields = "Please make sure you filled in the required fields"

// MsgInvalidFields is returned when a field is present but holds a value of the wrong kind.
const MsgInvalidFields = "Please make sure the fields have valid values"

// RouteNotFound is rendered for requests that match no registered route.
var RouteNotFound = New("Not Found", http.StatusNotFound)

// Error is an application-raised failure with a fixed HTTP status.
type Error struct {
	Message string
	Status  int
}

// New creates an Error with the given message and status.
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

// BadInput reports a missing or blank required field.
func BadInput() *Error {
	return New(MsgRequiredFields, http.StatusBadRequest)
}

// InvalidInput reports a body whose fields do not have the expected JSON types.
func InvalidInput() *Error {
	return New(MsgInvalidFields, http.StatusBadRequest)
}

// NotFound reports that no row exists for the given entity label, e.g. "Company".
func NotFound(label string) *Error {
	return New(fmt.Sprintf("%s not found", label), http.StatusNotFound)
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches another *Error with the same message and status.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Message == t.Message && e.Status == t.Status
}

// StatusOf returns the HTTP status err renders with, or 500 when err is unclassified.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
