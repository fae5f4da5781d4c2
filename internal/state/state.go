// Package state holds the overlay's display state and the machinery that
// keeps it current: bootstrap replay, the locked Store shared with the render
// tick, and the Feeder that reads protocol lines into it.
package state

import (
	"fmt"

	"github.com/rileyhilliard/indicate/internal/color"
	"github.com/rileyhilliard/indicate/internal/protocol"
)

// Defaults applied before any bootstrap or live input.
const (
	DefaultFont               = "Sans 12"
	DefaultIndeterminateSpeed = 1
	DefaultProgressCurrent    = 0
	DefaultProgressMax        = 100
)

// DisplayState is everything the overlay needs to draw a frame.
//
// The progress parameters live beside the mode so that switching modes keeps
// whatever speed or current/max was sent earlier. Use Mode to get the
// variant the renderer should draw.
type DisplayState struct {
	Text               string                `yaml:"text"`
	Font               string                `yaml:"font"`
	Color              color.Color           `yaml:"color"`
	RightAligned       bool                  `yaml:"right_aligned"`
	Progress           protocol.ProgressKind `yaml:"progress"`
	IndeterminateSpeed uint32                `yaml:"indeterminate_speed"`
	ProgressCurrent    uint64                `yaml:"progress_current"`
	ProgressMax        uint64                `yaml:"progress_max"`
}

// Default returns the startup state: no text, white, right aligned and an
// indeterminate bar at speed 1.
func Default() DisplayState {
	return DisplayState{
		Text:               "",
		Font:               DefaultFont,
		Color:              color.White,
		RightAligned:       true,
		Progress:           protocol.ProgressIndeterminate,
		IndeterminateSpeed: DefaultIndeterminateSpeed,
		ProgressCurrent:    DefaultProgressCurrent,
		ProgressMax:        DefaultProgressMax,
	}
}

// Apply overwrites the field named by cmd. No other field changes and no
// validation beyond the parser's is performed, so current > max is accepted.
func (s *DisplayState) Apply(cmd protocol.Command) {
	switch c := cmd.(type) {
	case protocol.SetText:
		s.Text = c.Text
	case protocol.SetFont:
		s.Font = c.Font
	case protocol.SetColor:
		s.Color = c.Color
	case protocol.SetProgressMode:
		s.Progress = c.Mode
	case protocol.SetIndeterminateSpeed:
		s.IndeterminateSpeed = c.Speed
	case protocol.SetProgressCurrent:
		s.ProgressCurrent = c.Current
	case protocol.SetProgressMax:
		s.ProgressMax = c.Max
	default:
		panic(fmt.Sprintf("state: unhandled command %T", cmd))
	}
}

// Mode returns the progress variant selected by Progress, carrying the
// parameters that variant needs.
func (s DisplayState) Mode() ProgressMode {
	switch s.Progress {
	case protocol.ProgressIndeterminate:
		return Indeterminate{Speed: s.IndeterminateSpeed}
	case protocol.ProgressDeterminate:
		return Determinate{Current: s.ProgressCurrent, Max: s.ProgressMax}
	default:
		return NoProgress{}
	}
}

// ProgressMode is one of Indeterminate, Determinate or NoProgress.
type ProgressMode interface {
	progressMode()
}

// Indeterminate is a full-width bar whose opacity pulses over time.
type Indeterminate struct {
	Speed uint32
}

// Determinate is a bar filled in proportion to Current/Max.
type Determinate struct {
	Current uint64
	Max     uint64
}

// NoProgress draws no bar.
type NoProgress struct{}

func (Indeterminate) progressMode() {}
func (Determinate) progressMode()   {}
func (NoProgress) progressMode()    {}
