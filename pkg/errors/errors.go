// Package errors provides structured error types for the arbor library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across all mutating operations
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (bad traces, bad arguments)
//   - MISSING_CAPABILITY: A value's type does not supply a required capability
//   - CLONE_FAILED: A user-supplied clone capability reported failure
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTrace, "index %d out of range", i)
//	if errors.Is(err, errors.ErrCodeInvalidTrace) {
//	    // Handle addressing error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCloneFailed, origErr, "rebuilding %T", n)
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
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidTrace Code = "INVALID_TRACE"

	// Capability errors. Mutating operations fail loudly when a value's
	// type has not supplied the capability they need, rather than risk
	// silent structural corruption.
	ErrCodeMissingCapability Code = "MISSING_CAPABILITY"
	ErrCodeCloneFailed       Code = "CLONE_FAILED"
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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
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
