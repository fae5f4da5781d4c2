package protocol

import (
	"errors"
	"fmt"

	"github.com/rileyhilliard/indicate/internal/color"
)

// ErrorKind classifies a rejected protocol line.
type ErrorKind int

const (
	KindMissingValue ErrorKind = iota
	KindUnknownAttribute
	KindInvalidProgressMode
	KindInvalidNumber
	KindInvalidColor
)

// Sentinels for errors.Is. A color failure matches color.ErrInvalidColor.
var (
	ErrMissingValue        = errors.New("missing value")
	ErrUnknownAttribute    = errors.New("unknown attribute")
	ErrInvalidProgressMode = errors.New("invalid progress mode")
	ErrInvalidNumber       = errors.New("invalid number")
)

// ProtocolError reports why a line could not be turned into a Command.
type ProtocolError struct {
	Kind  ErrorKind
	Key   string
	Value string
	Cause error
}

func (e *ProtocolError) Error() string {
	switch e.Kind {
	case KindMissingValue:
		return fmt.Sprintf("no value given for %q", e.Key)
	case KindUnknownAttribute:
		return fmt.Sprintf("unknown attribute %q", e.Key)
	case KindInvalidProgressMode:
		return fmt.Sprintf("invalid progress type %q (want indeterminate, determinate or none)", e.Value)
	case KindInvalidNumber:
		if e.Cause != nil {
			return fmt.Sprintf("invalid number %q for %q: %v", e.Value, e.Key, e.Cause)
		}
		return fmt.Sprintf("invalid number %q for %q", e.Value, e.Key)
	case KindInvalidColor:
		return e.Cause.Error()
	default:
		return "protocol error"
	}
}

// Is maps the kind onto the package sentinels.
func (e *ProtocolError) Is(target error) bool {
	switch e.Kind {
	case KindMissingValue:
		return target == ErrMissingValue
	case KindUnknownAttribute:
		return target == ErrUnknownAttribute
	case KindInvalidProgressMode:
		return target == ErrInvalidProgressMode
	case KindInvalidNumber:
		return target == ErrInvalidNumber
	case KindInvalidColor:
		return target == color.ErrInvalidColor
	}
	return false
}

// Unwrap exposes the underlying strconv or color error.
func (e *ProtocolError) Unwrap() error {
	return e.Cause
}
