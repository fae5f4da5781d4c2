package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/indicate/internal/config"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory and clears $INDICATE_CONFIG so
// no real bootstrap or settings file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.BootstrapEnv, "")
	return home
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
