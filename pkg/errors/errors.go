// Package errors provides the coded error type shared by the editor, the
// settings stores, the HTTP API and the CLI.
//
// Every failure a caller may want to act on carries a [Code]. Codes are
// stable strings so they can travel over the wire unchanged:
//   - INVALID_*: a request argument was rejected
//   - NO_SELECTION, NOT_EDITING: the session is in the wrong state
//   - NOT_FOUND, SESSION_NOT_FOUND: the target does not exist
//   - STORAGE_ERROR: a settings backend failed
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidWidget, "unknown widget %q", id)
//	if errors.Is(err, errors.ErrCodeInvalidWidget) {
//	    // reject the request
//	}
//
//	err = errors.Wrap(errors.ErrCodeStorage, cause, "write %s", key)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidWidget  Code = "INVALID_WIDGET"
	ErrCodeInvalidDensity Code = "INVALID_DENSITY"
	ErrCodeInvalidAxis    Code = "INVALID_AXIS"
	ErrCodeInvalidAlign   Code = "INVALID_ALIGN"
	ErrCodeMalformedGrid  Code = "MALFORMED_GRID"

	// Session state errors
	ErrCodeNoSelection Code = "NO_SELECTION"
	ErrCodeNotEditing  Code = "NOT_EDITING"

	// Resource not found errors
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	// Storage errors
	ErrCodeStorage Code = "STORAGE_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// Only the outermost *Error in the chain is consulted.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_* codes or
// MALFORMED_GRID.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidWidget, ErrCodeInvalidDensity,
		ErrCodeInvalidAxis, ErrCodeInvalidAlign, ErrCodeMalformedGrid:
		return true
	}
	return false
}
