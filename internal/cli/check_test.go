package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/indicate/internal/config"
	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type dumpedState struct {
	Text               string `yaml:"text"`
	Font               string `yaml:"font"`
	Color              string `yaml:"color"`
	RightAligned       bool   `yaml:"right_aligned"`
	Progress           string `yaml:"progress"`
	IndeterminateSpeed uint32 `yaml:"indeterminate_speed"`
	ProgressCurrent    uint64 `yaml:"progress_current"`
	ProgressMax        uint64 `yaml:"progress_max"`
}

func decodeDump(t *testing.T, out string) dumpedState {
	t.Helper()
	var d dumpedState
	require.NoError(t, yaml.Unmarshal([]byte(out), &d))
	return d
}

func TestRunCheck_File(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "boot.rc",
		"\\color=ff000080\n\\progress=determinate\n\\progress_current=7\nDeploying\n")

	var out bytes.Buffer
	err := runCheck(&out, nil, path, config.DefaultSettings())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "# "+path+"\n"))
	d := decodeDump(t, out.String())
	assert.Equal(t, dumpedState{
		Text:               "Deploying",
		Font:               "Sans 12",
		Color:              "#ff000080",
		RightAligned:       true,
		Progress:           "determinate",
		IndeterminateSpeed: 1,
		ProgressCurrent:    7,
		ProgressMax:        100,
	}, d)
}

func TestRunCheck_Stdin(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	err := runCheck(&out, strings.NewReader("\\progress=none\nhi\n"), "-", config.DefaultSettings())
	require.NoError(t, err)

	d := decodeDump(t, out.String())
	assert.Equal(t, "hi", d.Text)
	assert.Equal(t, "none", d.Progress)
}

func TestRunCheck_Discovered(t *testing.T) {
	isolate(t)
	boot := writeFile(t, t.TempDir(), "env.rc", "from env\n")
	t.Setenv(config.BootstrapEnv, boot)

	var out bytes.Buffer
	require.NoError(t, runCheck(&out, nil, "", config.DefaultSettings()))

	assert.Equal(t, "from env", decodeDump(t, out.String()).Text)
}

func TestRunCheck_NoBootstrap(t *testing.T) {
	isolate(t)
	settings := config.DefaultSettings()
	settings.RightAligned = false

	var out bytes.Buffer
	require.NoError(t, runCheck(&out, nil, "", settings))

	assert.Contains(t, out.String(), "defaults only")
	d := decodeDump(t, out.String())
	assert.Equal(t, "", d.Text)
	assert.Equal(t, "#ffffffff", d.Color)
	assert.Equal(t, "indeterminate", d.Progress)
	assert.False(t, d.RightAligned)
}

func TestRunCheck_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.rc", "ok\n\\progress_max=-1\n")

	t.Run("malformed line", func(t *testing.T) {
		var out bytes.Buffer
		err := runCheck(&out, nil, bad, config.DefaultSettings())

		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrProtocol))
		assert.Contains(t, err.Error(), bad+":2:")
		assert.Empty(t, out.String())
	})

	t.Run("missing file", func(t *testing.T) {
		var out bytes.Buffer
		err := runCheck(&out, nil, filepath.Join(dir, "missing.rc"), config.DefaultSettings())

		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}
