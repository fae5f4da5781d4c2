package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory and
// expands $VAR references. Does not support ~username syntax.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	path = os.ExpandEnv(path)

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unchanged if we can't get home
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}
