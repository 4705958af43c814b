// Package errors provides structured error types for the columns layout
// engine and the surfaces built around it.
//
// Every error carries a machine-readable [Code] and a human-readable
// message. The layout message protocol relies on this split: the message is
// what a window manager prints back to the user verbatim, while the code lets
// the HTTP control socket pick a status without string matching.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - NO_* / NOT_TRACKED: missing layout context or focus
//   - INVALID_* / UNKNOWN_*: malformed input
//   - NOT_FOUND: unknown window or resource
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArg, "invalid arg, use +1 or -1")
//	if errors.Is(err, errors.ErrCodeInvalidArg) {
//	    // Handle malformed command
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Missing layout context
	ErrCodeNoParent   Code = "NO_PARENT"
	ErrCodeNoSpace    Code = "NO_SPACE"
	ErrCodeNoFocus    Code = "NO_FOCUS"
	ErrCodeNotTracked Code = "NOT_TRACKED"

	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidArg       Code = "INVALID_ARG"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeUnknownCommand   Code = "UNKNOWN_COMMAND"
	ErrCodeUnknownAlgorithm Code = "UNKNOWN_ALGORITHM"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

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
