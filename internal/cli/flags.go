package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/indicate/internal/config"
	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/rileyhilliard/indicate/internal/protocol"
	"github.com/spf13/cobra"
)

// OverlayFlags holds the root command's flags.
type OverlayFlags struct {
	Bootstrap string
	Lenient   bool
	Interval  string
	LogFile   string

	// Initial attribute values, passed through the protocol parser.
	Font     string
	Color    string
	Progress string
	Speed    string
	Current  string
	Max      string
}

// attributeFlags maps flag names to the protocol key each one sets, in the
// order they are applied.
var attributeFlags = []struct {
	flag string
	key  string
}{
	{"font", protocol.KeyFont},
	{"color", protocol.KeyColor},
	{"progress", protocol.KeyProgress},
	{"speed", protocol.KeyIndeterminateSpeed},
	{"current", protocol.KeyProgressCurrent},
	{"max", protocol.KeyProgressMax},
}

// AddOverlayFlags registers the overlay flags on a command.
func AddOverlayFlags(cmd *cobra.Command, flags *OverlayFlags) {
	cmd.Flags().StringVar(&flags.Bootstrap, "bootstrap", "", "bootstrap file of protocol lines (default $INDICATE_CONFIG or ~/.config/indicate/config.rc)")
	cmd.Flags().BoolVar(&flags.Lenient, "lenient", false, "log and skip malformed lines on stdin instead of exiting")
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "redraw interval (e.g., 20ms, 50ms)")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs here while the overlay is shown")

	cmd.Flags().StringVar(&flags.Font, "font", "", "initial font, e.g. \"Sans Bold 12\"")
	cmd.Flags().StringVar(&flags.Color, "color", "", "initial color as rrggbb or rrggbbaa")
	cmd.Flags().StringVar(&flags.Progress, "progress", "", "initial progress mode: indeterminate, determinate or none")
	cmd.Flags().StringVar(&flags.Speed, "speed", "", "initial indeterminate pulse speed")
	cmd.Flags().StringVar(&flags.Current, "current", "", "initial determinate progress value")
	cmd.Flags().StringVar(&flags.Max, "max", "", "initial determinate progress maximum")
}

// attributeLines turns the attribute flags that were set into protocol
// lines. Unset flags produce nothing, so an explicit empty value still
// reaches the parser and is rejected there.
func attributeLines(cmd *cobra.Command, flags *OverlayFlags) []string {
	values := map[string]string{
		"font":     flags.Font,
		"color":    flags.Color,
		"progress": flags.Progress,
		"speed":    flags.Speed,
		"current":  flags.Current,
		"max":      flags.Max,
	}

	var lines []string
	for _, f := range attributeFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%c%s=%s", protocol.CommandPrefix, f.key, values[f.flag]))
	}
	return lines
}

// applyFlags overrides settings with the flags that were set.
func applyFlags(cmd *cobra.Command, flags *OverlayFlags, s *config.Settings) error {
	if cmd.Flags().Changed("bootstrap") {
		s.Bootstrap = config.ExpandTilde(flags.Bootstrap)
	}
	if cmd.Flags().Changed("lenient") {
		s.Lenient = flags.Lenient
	}
	if cmd.Flags().Changed("log-file") {
		s.LogFile = config.ExpandTilde(flags.LogFile)
	}
	if cmd.Flags().Changed("interval") {
		d, err := ParseInterval(flags.Interval)
		if err != nil {
			return err
		}
		s.Interval = d
	}
	return config.Validate(s)
}

// ParseInterval parses a redraw interval flag.
func ParseInterval(flag string) (time.Duration, error) {
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 20ms or 50ms.")
	}
	return d, nil
}
