package config

import "time"

// Settings holds the runtime knobs read from settings.yaml and INDICATE_*
// environment variables. Sizes are in pixels before Scale is applied.
type Settings struct {
	Interval     time.Duration `mapstructure:"interval" yaml:"interval"`
	Scale        float64       `mapstructure:"scale" yaml:"scale"`
	Width        int           `mapstructure:"width" yaml:"width"`
	Height       int           `mapstructure:"height" yaml:"height"`
	CellWidth    float64       `mapstructure:"cell_width" yaml:"cell_width"`
	CellHeight   float64       `mapstructure:"cell_height" yaml:"cell_height"`
	RightAligned bool          `mapstructure:"right_aligned" yaml:"right_aligned"`
	Lenient      bool          `mapstructure:"lenient" yaml:"lenient"`
	Bootstrap    string        `mapstructure:"bootstrap" yaml:"bootstrap"`
	LogFile      string        `mapstructure:"log_file" yaml:"log_file"`
}

// Defaults.
const (
	DefaultInterval   = 20 * time.Millisecond
	MinInterval       = 5 * time.Millisecond
	DefaultScale      = 1.0
	DefaultWidth      = 180
	DefaultHeight     = 35
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Interval:     DefaultInterval,
		Scale:        DefaultScale,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		CellWidth:    DefaultCellWidth,
		CellHeight:   DefaultCellHeight,
		RightAligned: true,
	}
}
