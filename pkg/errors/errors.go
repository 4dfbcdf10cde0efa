// Package errors provides structured error types for autoreadme.
//
// Every failure the resolver, renderer or CLI reports carries a [Code] so
// that callers can tell a missing manifest from a malformed one without
// matching on message text:
//   - MANIFEST_NOT_FOUND: no package.json in the working directory
//   - INVALID_MANIFEST: package.json could not be decoded
//   - REMOTE_LOOKUP_FAILED: the git origin remote could not be read
//   - INVALID_*: bad user input (template names, config files)
//   - WRITE_FAILED / INTERNAL_ERROR: output and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTemplate, "unknown template %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidTemplate) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidManifest, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Manifest errors
	ErrCodeManifestNotFound Code = "MANIFEST_NOT_FOUND"
	ErrCodeInvalidManifest  Code = "INVALID_MANIFEST"

	// Version-control errors
	ErrCodeRemoteLookup Code = "REMOTE_LOOKUP_FAILED"

	// Input validation errors
	ErrCodeInvalidTemplate Code = "INVALID_TEMPLATE"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Output and internal errors
	ErrCodeWriteFailed Code = "WRITE_FAILED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsDomain reports whether err is one the CLI reports to the user and then
// exits cleanly, rather than failing the process.
func IsDomain(err error) bool {
	switch GetCode(err) {
	case ErrCodeManifestNotFound, ErrCodeInvalidManifest, ErrCodeInvalidTemplate:
		return true
	}
	return false
}
