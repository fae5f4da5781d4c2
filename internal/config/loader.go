package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigDir holds both the settings file and the default bootstrap file,
	// relative to the home directory.
	ConfigDir = ".config/indicate"
	// SettingsFile is the settings file name.
	SettingsFile = "settings.yaml"
	// EnvPrefix prefixes environment overrides, e.g. INDICATE_INTERVAL=50ms.
	EnvPrefix = "INDICATE"
)

// Load reads settings from path, falling back to defaults for anything
// unset. An empty path loads defaults and environment overrides only.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Settings file not found",
					"Check the path given to --settings")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read settings file",
				"Check the file exists and is valid YAML")
		}
	}

	s := DefaultSettings()
	if err := v.Unmarshal(s); err != nil {
		where := "the environment"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid settings format",
			"Check the values in "+where)
	}

	s.Bootstrap = ExpandTilde(s.Bootstrap)
	s.LogFile = ExpandTilde(s.LogFile)

	return s, nil
}

// Find locates the settings file:
// 1. Explicit path (from --settings flag)
// 2. ~/.config/indicate/settings.yaml
//
// Returns the path to the settings file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified settings file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access settings file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}

	global := filepath.Join(home, ConfigDir, SettingsFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}

	return "", nil
}

// LoadOrDefault finds and loads settings, then validates them.
func LoadOrDefault(explicit string) (*Settings, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	s, err := Load(path)
	if err != nil {
		return nil, path, err
	}

	if err := Validate(s); err != nil {
		return nil, path, err
	}

	return s, path, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("interval", d.Interval.String())
	v.SetDefault("scale", d.Scale)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("cell_width", d.CellWidth)
	v.SetDefault("cell_height", d.CellHeight)
	v.SetDefault("right_aligned", d.RightAligned)
	v.SetDefault("lenient", d.Lenient)
	v.SetDefault("bootstrap", d.Bootstrap)
	v.SetDefault("log_file", d.LogFile)
}
