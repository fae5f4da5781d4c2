package state

import (
	"errors"
	"io"

	"github.com/rileyhilliard/indicate/internal/protocol"
)

// Initialize builds the default state and replays bootstrap over it. A nil
// bootstrap means there is no bootstrap source, which is not an error.
func Initialize(bootstrap io.Reader, source string) (DisplayState, error) {
	s := Default()
	if bootstrap == nil {
		return s, nil
	}
	if err := Replay(bootstrap, source, &s); err != nil {
		return DisplayState{}, err
	}
	return s, nil
}

// Replay applies every line of r to s in order. It stops at the first
// malformed line and returns it as a *LineError; reaching the end of r is
// the normal way out.
func Replay(r io.Reader, source string, s *DisplayState) error {
	f := NewFeeder(r, WithSource(source))
	for {
		cmd, err := f.Next()
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return nil
			}
			return err
		}
		s.Apply(cmd)
	}
}

// ReplayLines applies pre-split lines, such as ones built from command-line
// flags, naming each failure after source.
func ReplayLines(lines []string, source string, s *DisplayState) error {
	for i, line := range lines {
		cmd, err := protocol.Parse(line)
		if err != nil {
			return &LineError{Source: source, Line: i + 1, Err: err}
		}
		s.Apply(cmd)
	}
	return nil
}
