package protocol

import (
	"strconv"

	"github.com/rileyhilliard/indicate/internal/color"
)

// ProgressKind selects which progress bar the overlay draws.
type ProgressKind int

const (
	ProgressIndeterminate ProgressKind = iota
	ProgressDeterminate
	ProgressNone
)

// String returns the protocol spelling of the kind.
func (k ProgressKind) String() string {
	switch k {
	case ProgressIndeterminate:
		return "indeterminate"
	case ProgressDeterminate:
		return "determinate"
	case ProgressNone:
		return "none"
	default:
		return "unknown"
	}
}

// MarshalText writes the protocol spelling, used by state dumps.
func (k ProgressKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Command is one parsed protocol line. The set of implementations is closed;
// consumers type-switch over them.
type Command interface {
	// String renders the command back into its protocol line.
	String() string
	command()
}

// SetText replaces the label.
type SetText struct{ Text string }

// SetFont replaces the font description. The value is passed through to the
// text renderer untouched.
type SetFont struct{ Font string }

// SetColor replaces the text color. The progress bar reuses its RGB channels.
type SetColor struct{ Color color.Color }

// SetProgressMode switches the bar kind. It does not touch the speed or the
// current/max values.
type SetProgressMode struct{ Mode ProgressKind }

// SetIndeterminateSpeed scales the pulse rate of the indeterminate bar.
type SetIndeterminateSpeed struct{ Speed uint32 }

// SetProgressCurrent sets the numerator of the determinate fill.
type SetProgressCurrent struct{ Current uint64 }

// SetProgressMax sets the denominator of the determinate fill.
type SetProgressMax struct{ Max uint64 }

func (SetText) command()               {}
func (SetFont) command()               {}
func (SetColor) command()              {}
func (SetProgressMode) command()       {}
func (SetIndeterminateSpeed) command() {}
func (SetProgressCurrent) command()    {}
func (SetProgressMax) command()        {}

func (c SetText) String() string { return c.Text }

func (c SetFont) String() string { return line(KeyFont, c.Font) }

func (c SetColor) String() string { return line(KeyColor, c.Color.Hex()) }

func (c SetProgressMode) String() string { return line(KeyProgress, c.Mode.String()) }

func (c SetIndeterminateSpeed) String() string {
	return line(KeyIndeterminateSpeed, strconv.FormatUint(uint64(c.Speed), 10))
}

func (c SetProgressCurrent) String() string {
	return line(KeyProgressCurrent, strconv.FormatUint(c.Current, 10))
}

func (c SetProgressMax) String() string {
	return line(KeyProgressMax, strconv.FormatUint(c.Max, 10))
}

func line(key, value string) string {
	return string(CommandPrefix) + key + "=" + value
}
