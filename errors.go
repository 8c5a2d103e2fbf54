// Package apierror translates domain errors into structured API error
// responses.
//
// Domain code signals a failure by returning one of the error types in this
// package, or any error type registered with a Responder. It never formats
// a response itself. A single Responder, invoked at the request boundary,
// converts the error into an APIError and a Status so that every caller
// receives the same response shape. Errors without a registered mapping
// are answered with a generic internal error that does not expose the
// original error text.
package apierror

import (
	"fmt"
	"strings"
)

// NotFoundError represents a failed lookup for a resource. The message is
// stored verbatim and is safe to return to clients.
type NotFoundError struct {
	message string
}

// NewNotFoundError creates a NotFoundError with the given message.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{message: message}
}

// Message returns the message exactly as it was given.
func (e *NotFoundError) Message() string {
	return e.message
}

func (e *NotFoundError) Error() string {
	return e.message
}

// ValidationError represents input that was rejected. Each violation
// describes a single problem with the input.
type ValidationError struct {
	message    string
	violations []string
}

// NewValidationError creates a ValidationError with the given message and
// optional list of violations.
func NewValidationError(message string, violations ...string) *ValidationError {
	return &ValidationError{
		message:    message,
		violations: append([]string(nil), violations...),
	}
}

// Message returns the summary message.
func (e *ValidationError) Message() string {
	return e.message
}

// Violations returns a copy of the individual violations.
func (e *ValidationError) Violations() []string {
	return append([]string{}, e.violations...)
}

func (e *ValidationError) Error() string {
	if len(e.violations) == 0 {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.message, strings.Join(e.violations, "; "))
}

// ConflictError represents a request that collides with the current state
// of a resource, such as creating a resource that already exists.
type ConflictError struct {
	message string
}

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{message: message}
}

// Message returns the message exactly as it was given.
func (e *ConflictError) Message() string {
	return e.message
}

func (e *ConflictError) Error() string {
	return e.message
}

// MethodNotAllowedError represents a request for a known resource with a
// method the resource does not support.
type MethodNotAllowedError struct {
	message string
}

// NewMethodNotAllowedError creates a MethodNotAllowedError with the given
// message.
func NewMethodNotAllowedError(message string) *MethodNotAllowedError {
	return &MethodNotAllowedError{message: message}
}

// Message returns the message exactly as it was given.
func (e *MethodNotAllowedError) Message() string {
	return e.message
}

func (e *MethodNotAllowedError) Error() string {
	return e.message
}

// InvalidStatusError is returned when a status outside of the recognized
// set is used to build or decode an APIError.
type InvalidStatusError struct {
	// Status is the rejected numeric status. It is zero when the
	// rejected value was a name.
	Status Status
	// Name is the rejected status name, if any.
	Name string
}

func (e *InvalidStatusError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("status (%s) is not a recognized API status", e.Name)
	}
	return fmt.Sprintf("status (%d) is not a recognized API status", int(e.Status))
}
