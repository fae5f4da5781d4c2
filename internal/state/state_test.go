package state

import (
	"testing"

	"github.com/rileyhilliard/indicate/internal/color"
	"github.com/rileyhilliard/indicate/internal/protocol"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "", s.Text)
	assert.Equal(t, "Sans 12", s.Font)
	assert.Equal(t, color.White, s.Color)
	assert.True(t, s.RightAligned)
	assert.Equal(t, protocol.ProgressIndeterminate, s.Progress)
	assert.Equal(t, Indeterminate{Speed: 1}, s.Mode())
	assert.Equal(t, uint64(0), s.ProgressCurrent)
	assert.Equal(t, uint64(100), s.ProgressMax)
}

func TestApply_TouchesOnlyNamedField(t *testing.T) {
	red := color.MustParse("#ff0000")

	tests := []struct {
		name   string
		cmd    protocol.Command
		mutate func(*DisplayState)
	}{
		{
			name:   "text",
			cmd:    protocol.SetText{Text: "Building"},
			mutate: func(s *DisplayState) { s.Text = "Building" },
		},
		{
			name:   "font",
			cmd:    protocol.SetFont{Font: "Mono 9"},
			mutate: func(s *DisplayState) { s.Font = "Mono 9" },
		},
		{
			name:   "color",
			cmd:    protocol.SetColor{Color: red},
			mutate: func(s *DisplayState) { s.Color = red },
		},
		{
			name:   "progress mode",
			cmd:    protocol.SetProgressMode{Mode: protocol.ProgressNone},
			mutate: func(s *DisplayState) { s.Progress = protocol.ProgressNone },
		},
		{
			name:   "speed",
			cmd:    protocol.SetIndeterminateSpeed{Speed: 7},
			mutate: func(s *DisplayState) { s.IndeterminateSpeed = 7 },
		},
		{
			name:   "current",
			cmd:    protocol.SetProgressCurrent{Current: 12},
			mutate: func(s *DisplayState) { s.ProgressCurrent = 12 },
		},
		{
			name:   "max",
			cmd:    protocol.SetProgressMax{Max: 0},
			mutate: func(s *DisplayState) { s.ProgressMax = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Default()
			got.Apply(tt.cmd)

			want := Default()
			tt.mutate(&want)

			assert.Equal(t, want, got)
		})
	}
}

func TestApply_AcceptsCurrentAboveMax(t *testing.T) {
	s := Default()
	s.Apply(protocol.SetProgressMax{Max: 5})
	s.Apply(protocol.SetProgressCurrent{Current: 9})

	assert.Equal(t, uint64(9), s.ProgressCurrent)
	assert.Equal(t, uint64(5), s.ProgressMax)
}

func TestMode(t *testing.T) {
	s := Default()
	s.ProgressCurrent = 3
	s.ProgressMax = 10
	s.IndeterminateSpeed = 4

	s.Progress = protocol.ProgressIndeterminate
	assert.Equal(t, Indeterminate{Speed: 4}, s.Mode())

	s.Progress = protocol.ProgressDeterminate
	assert.Equal(t, Determinate{Current: 3, Max: 10}, s.Mode())

	s.Progress = protocol.ProgressNone
	assert.Equal(t, NoProgress{}, s.Mode())
}

func TestMode_SwitchKeepsEarlierParameters(t *testing.T) {
	s := Default()
	s.Apply(protocol.SetProgressMax{Max: 40})
	s.Apply(protocol.SetProgressCurrent{Current: 10})
	s.Apply(protocol.SetProgressMode{Mode: protocol.ProgressNone})
	s.Apply(protocol.SetProgressMode{Mode: protocol.ProgressDeterminate})

	assert.Equal(t, Determinate{Current: 10, Max: 40}, s.Mode())
}

func TestMode_DeterminateBeforeValuesUsesDefaults(t *testing.T) {
	s := Default()
	s.Apply(protocol.SetProgressMode{Mode: protocol.ProgressDeterminate})

	assert.Equal(t, Determinate{Current: 0, Max: 100}, s.Mode())
}
