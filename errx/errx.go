package errx

import (
	"fmt"
)

// Type classifies an error into a broad category used for transport mapping
// (HTTP status, CLI exit code) and handling decisions.
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeBadRequest    Type = "BAD_REQUEST"
	TypeNotFound      Type = "NOT_FOUND"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeTimeout       Type = "TIMEOUT"
	TypeSystem        Type = "SYSTEM"
	TypeInternal      Type = "INTERNAL"
)

// Code identifies a registered error within a Registry.
type Code string

// Error is a structured error with a stable code, a category, an optional
// cause and free-form details for context.
type Error struct {
	Code       Code
	Type       Type
	Message    string
	HTTPStatus int
	Details    map[string]any
	Cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a single key/value detail to the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches multiple details to the error
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// New creates an unregistered ad-hoc error with the given message and type
func New(message string, typ Type) *Error {
	return &Error{
		Code:    "UNREGISTERED",
		Type:    typ,
		Message: message,
	}
}

// Wrap wraps an existing error with a message and type, preserving it as the cause
func Wrap(err error, message string, typ Type) *Error {
	return &Error{
		Code:    "WRAPPED",
		Type:    typ,
		Message: message,
		Cause:   err,
	}
}
