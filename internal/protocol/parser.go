// Package protocol implements the line-oriented update protocol that drives
// the overlay.
//
// A line beginning with a backslash is an attribute assignment:
//
//	\font=Sans 12
//	\color=#ff8800
//	\progress=indeterminate|determinate|none
//	\indeterminate_speed=2
//	\progress_current=30
//	\progress_max=100
//
// Any other line, including an empty one, replaces the label text verbatim.
package protocol

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rileyhilliard/indicate/internal/color"
)

// CommandPrefix marks an attribute line.
const CommandPrefix = '\\'

// Attribute keys.
const (
	KeyFont               = "font"
	KeyColor              = "color"
	KeyProgress           = "progress"
	KeyIndeterminateSpeed = "indeterminate_speed"
	KeyProgressCurrent    = "progress_current"
	KeyProgressMax        = "progress_max"
)

// Keys lists every attribute key in protocol order.
var Keys = []string{
	KeyFont,
	KeyColor,
	KeyProgress,
	KeyIndeterminateSpeed,
	KeyProgressCurrent,
	KeyProgressMax,
}

// Parse turns one line (without its line terminator) into a Command.
func Parse(line string) (Command, error) {
	if !IsCommandLine(line) {
		return SetText{Text: line}, nil
	}

	key, value, found := strings.Cut(line[1:], "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if !found {
		return nil, &ProtocolError{Kind: KindMissingValue, Key: key}
	}

	switch key {
	case KeyFont:
		return SetFont{Font: value}, nil

	case KeyColor:
		if value == "" {
			return nil, &ProtocolError{Kind: KindMissingValue, Key: key}
		}
		c, err := color.Parse(value)
		if err != nil {
			return nil, &ProtocolError{Kind: KindInvalidColor, Key: key, Value: value, Cause: err}
		}
		return SetColor{Color: c}, nil

	case KeyProgress:
		if value == "" {
			return nil, &ProtocolError{Kind: KindMissingValue, Key: key}
		}
		mode, err := ParseProgressKind(value)
		if err != nil {
			return nil, err
		}
		return SetProgressMode{Mode: mode}, nil

	case KeyIndeterminateSpeed:
		n, err := parseUint(key, value, 32)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, &ProtocolError{
				Kind:  KindInvalidNumber,
				Key:   key,
				Value: value,
				Cause: errors.New("speed must be at least 1"),
			}
		}
		return SetIndeterminateSpeed{Speed: uint32(n)}, nil

	case KeyProgressCurrent:
		n, err := parseUint(key, value, 64)
		if err != nil {
			return nil, err
		}
		return SetProgressCurrent{Current: n}, nil

	case KeyProgressMax:
		n, err := parseUint(key, value, 64)
		if err != nil {
			return nil, err
		}
		return SetProgressMax{Max: n}, nil

	default:
		return nil, &ProtocolError{Kind: KindUnknownAttribute, Key: key, Value: value}
	}
}

// ParseProgressKind matches a progress mode name. Matching is case-sensitive.
func ParseProgressKind(s string) (ProgressKind, error) {
	switch s {
	case "indeterminate":
		return ProgressIndeterminate, nil
	case "determinate":
		return ProgressDeterminate, nil
	case "none":
		return ProgressNone, nil
	default:
		return 0, &ProtocolError{Kind: KindInvalidProgressMode, Key: KeyProgress, Value: s}
	}
}

// IsCommandLine reports whether line is an attribute assignment rather than
// label text.
func IsCommandLine(line string) bool {
	return len(line) > 0 && line[0] == CommandPrefix
}

func parseUint(key, value string, bits int) (uint64, error) {
	if value == "" {
		return 0, &ProtocolError{Kind: KindMissingValue, Key: key}
	}
	n, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ProtocolError{Kind: KindInvalidNumber, Key: key, Value: value, Cause: err}
	}
	return n, nil
}
