package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/indicate/internal/config"
	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCmd(flags *OverlayFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "indicate", RunE: func(*cobra.Command, []string) error { return nil }}
	AddOverlayFlags(cmd, flags)
	return cmd
}

func TestAttributeLines(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "nothing set",
			args: nil,
			want: nil,
		},
		{
			name: "protocol order regardless of flag order",
			args: []string{"--max", "10", "--color", "ff0000", "--font", "Sans Bold 12"},
			want: []string{`\font=Sans Bold 12`, `\color=ff0000`, `\progress_max=10`},
		},
		{
			name: "every attribute",
			args: []string{"--progress", "determinate", "--speed", "3", "--current", "4", "--max", "8"},
			want: []string{`\progress=determinate`, `\indeterminate_speed=3`, `\progress_current=4`, `\progress_max=8`},
		},
		{
			name: "explicit empty value is kept",
			args: []string{"--color", ""},
			want: []string{`\color=`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flags OverlayFlags
			cmd := newFlagCmd(&flags)
			require.NoError(t, cmd.ParseFlags(tt.args))

			assert.Equal(t, tt.want, attributeLines(cmd, &flags))
		})
	}
}

func TestApplyFlags(t *testing.T) {
	home := isolate(t)

	var flags OverlayFlags
	cmd := newFlagCmd(&flags)
	require.NoError(t, cmd.ParseFlags([]string{
		"--lenient",
		"--interval", "50ms",
		"--bootstrap", "~/boot.rc",
		"--log-file", "/tmp/indicate.log",
	}))

	s := config.DefaultSettings()
	require.NoError(t, applyFlags(cmd, &flags, s))

	assert.True(t, s.Lenient)
	assert.Equal(t, 50*time.Millisecond, s.Interval)
	assert.Equal(t, home+"/boot.rc", s.Bootstrap)
	assert.Equal(t, "/tmp/indicate.log", s.LogFile)
}

func TestApplyFlags_UnsetFlagsKeepSettings(t *testing.T) {
	var flags OverlayFlags
	cmd := newFlagCmd(&flags)
	require.NoError(t, cmd.ParseFlags(nil))

	s := config.DefaultSettings()
	s.Lenient = true
	s.Interval = 40 * time.Millisecond
	require.NoError(t, applyFlags(cmd, &flags, s))

	assert.True(t, s.Lenient)
	assert.Equal(t, 40*time.Millisecond, s.Interval)
}

func TestApplyFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unparseable interval", []string{"--interval", "fast"}},
		{"interval too short", []string{"--interval", "1ms"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flags OverlayFlags
			cmd := newFlagCmd(&flags)
			require.NoError(t, cmd.ParseFlags(tt.args))

			err := applyFlags(cmd, &flags, config.DefaultSettings())
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{flag: "20ms", want: 20 * time.Millisecond},
		{flag: "1s", want: time.Second},
		{flag: "20", wantErr: true},
		{flag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := ParseInterval(tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid interval")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
