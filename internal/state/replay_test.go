package state

import (
	"errors"
	"strings"
	"testing"

	"github.com/rileyhilliard/indicate/internal/color"
	"github.com/rileyhilliard/indicate/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_NoBootstrap(t *testing.T) {
	s, err := Initialize(nil, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestInitialize_ReplaysInOrder(t *testing.T) {
	bootstrap := strings.Join([]string{
		"\\font=Mono 10",
		"\\color=#00ff00",
		"\\color=#0000ff80",
		"\\progress=none",
		"Ready",
	}, "\n") + "\n"

	s, err := Initialize(strings.NewReader(bootstrap), "config.rc")
	require.NoError(t, err)

	assert.Equal(t, "Ready", s.Text)
	assert.Equal(t, "Mono 10", s.Font)
	assert.Equal(t, color.MustParse("#0000ff80"), s.Color, "later line wins")
	assert.Equal(t, NoProgress{}, s.Mode())
	assert.True(t, s.RightAligned)
}

func TestInitialize_EmptyLineSetsEmptyText(t *testing.T) {
	s, err := Initialize(strings.NewReader("first\n\n"), "config.rc")
	require.NoError(t, err)
	assert.Equal(t, "", s.Text)
}

func TestInitialize_CRLF(t *testing.T) {
	s, err := Initialize(strings.NewReader("\\progress=none\r\nhello\r\n"), "config.rc")
	require.NoError(t, err)
	assert.Equal(t, "hello", s.Text)
	assert.Equal(t, NoProgress{}, s.Mode())
}

func TestInitialize_LastLineWithoutNewline(t *testing.T) {
	s, err := Initialize(strings.NewReader("\\font=A\nlabel"), "config.rc")
	require.NoError(t, err)
	assert.Equal(t, "label", s.Text)
	assert.Equal(t, "A", s.Font)
}

func TestInitialize_MalformedLineIsFatal(t *testing.T) {
	bootstrap := "\\font=Mono 10\n\\progress=sideways\nnever applied\n"

	_, err := Initialize(strings.NewReader(bootstrap), "config.rc")
	require.Error(t, err)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, "config.rc", lineErr.Source)
	assert.Equal(t, 2, lineErr.Line)
	assert.ErrorIs(t, err, protocol.ErrInvalidProgressMode)
	assert.Contains(t, err.Error(), "config.rc:2:")
}

func TestReplayLines(t *testing.T) {
	s := Default()
	err := ReplayLines([]string{"\\color=#ff0000", "\\progress=determinate"}, "flags", &s)
	require.NoError(t, err)
	assert.Equal(t, color.MustParse("#ff0000"), s.Color)
	assert.Equal(t, protocol.ProgressDeterminate, s.Progress)

	err = ReplayLines([]string{"\\color=#ff0000", "\\bogus=1"}, "flags", &s)
	require.Error(t, err)
	assert.ErrorIs(t, err, protocol.ErrUnknownAttribute)
	assert.Equal(t, "flags:2: unknown attribute \"bogus\"", err.Error())
}
