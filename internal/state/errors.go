package state

import (
	"errors"
	"fmt"
)

// ErrInputClosed is returned when the live input stream reaches its end.
// The overlay has nothing left to follow at that point, so callers treat it
// like any other read failure.
var ErrInputClosed = errors.New("input stream closed")

// LineError ties a parse or read failure to its position in a source.
type LineError struct {
	Source string // "stdin", a file path, or a flag name
	Line   int    // 1-based; 0 when no line was read
	Err    error
}

func (e *LineError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadError wraps an I/O failure on the input stream.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "read input: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// IsReadFailure reports whether err came from the input stream rather than
// from a malformed line.
func IsReadFailure(err error) bool {
	var readErr *ReadError
	return errors.Is(err, ErrInputClosed) || errors.As(err, &readErr)
}
