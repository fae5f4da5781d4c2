package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrProtocol = "PROTOCOL"
	ErrIO       = "IO"
	ErrRender   = "RENDER"
)

// Exit codes returned by the process for each error code.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitConfig   = 2
	ExitProtocol = 3
	ExitIO       = 4
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Printed as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrIO code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrIO,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var indErr *Error
	if errors.As(err, &indErr) {
		return indErr.Code == code
	}
	return false
}

// ExitCode maps an error to the process exit status. Unstructured errors
// exit with ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var indErr *Error
	if !errors.As(err, &indErr) {
		return ExitFailure
	}
	switch indErr.Code {
	case ErrConfig:
		return ExitConfig
	case ErrProtocol:
		return ExitProtocol
	case ErrIO:
		return ExitIO
	default:
		return ExitFailure
	}
}
