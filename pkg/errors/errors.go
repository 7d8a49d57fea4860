// Package errors provides structured error types for ghfinder.
//
// Every failure that can reach a user carries a machine-readable [Code] and a
// fixed, user-facing message. The underlying transport error, if any, is kept
// as the Cause so it can be logged for diagnostics, but it is never part of
// the message shown to users.
//
// # Error Codes
//
//   - INVALID_INPUT: input rejected before any network call
//   - SEARCH_FAILED, USER_FETCH_FAILED, REPO_FETCH_FAILED: GitHub API failures
//   - NOT_FOUND, NETWORK_ERROR: transport-level failures
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeSearchFailed, cause, "Failed to search users")
//	if errors.Is(err, errors.ErrCodeSearchFailed) {
//	    fmt.Println(errors.UserMessage(err)) // "Failed to search users"
//	}
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

	// GitHub API errors
	ErrCodeSearchFailed    Code = "SEARCH_FAILED"
	ErrCodeUserFetchFailed Code = "USER_FETCH_FAILED"
	ErrCodeRepoFetchFailed Code = "REPO_FETCH_FAILED"

	// Transport errors
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNetwork  Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// For *Error types, returns the message without the code prefix or cause.
// For other errors, returns the error string as-is. A nil error yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
