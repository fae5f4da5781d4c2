// Package color parses and formats the hex color literals used by the
// indicate line protocol.
//
// Accepted input is "#rrggbb" or "#rrggbbaa" with the leading '#' optional
// and hex digits in either case. Each byte is normalized to [0, 1] by
// dividing by 255. When the alpha pair is omitted the color is fully opaque.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidColor is matched by every error returned from Parse.
var ErrInvalidColor = errors.New("invalid color")

// Color is a straight (non-premultiplied) RGBA value with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{A: 1}
)

// ParseError describes why a color literal was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Is reports ErrInvalidColor so callers can use errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidColor
}

// Parse reads a color literal of the form [#]RRGGBB[AA].
func Parse(s string) (Color, error) {
	rest := strings.TrimPrefix(s, "#")

	var channels [4]uint8
	channels[3] = 0xff

	names := [...]string{"red", "green", "blue", "alpha"}
	for i := 0; i < 4; i++ {
		// Alpha is optional: stop once the RGB triple is complete and
		// nothing is left.
		if i == 3 && rest == "" {
			break
		}
		if len(rest) < 2 {
			return Color{}, &ParseError{Input: s, Reason: "missing " + names[i] + " digits"}
		}
		hi, ok1 := hexDigit(rest[0])
		lo, ok2 := hexDigit(rest[1])
		if !ok1 || !ok2 {
			return Color{}, &ParseError{Input: s, Reason: "bad " + names[i] + " digit"}
		}
		channels[i] = hi<<4 | lo
		rest = rest[2:]
	}

	if rest != "" {
		return Color{}, &ParseError{Input: s, Reason: "color is too long"}
	}

	return FromBytes(channels[0], channels[1], channels[2], channels[3]), nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromBytes builds a Color from 8-bit channel values.
func FromBytes(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// Bytes converts each channel back to 8 bits, rounding to nearest and
// clamping out-of-range values.
func (c Color) Bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

// Hex formats the color as "#rrggbbaa". Parse(c.Hex()) round-trips any
// color that came from Parse.
func (c Color) Hex() string {
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// RGBHex formats only the color channels as "#rrggbb", the form terminal
// styling libraries expect.
func (c Color) RGBHex() string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText lets the color appear as a hex literal in YAML and JSON dumps.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts the same literals as Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 255.0))
}
