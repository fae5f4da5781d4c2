package logger

import (
	"bytes"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when INDICATE_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when INDICATE_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when INDICATE_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv(DebugEnv, tt.envValue)

			l := NewEnvLogger("[test]")
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] DEBUG: test message arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	buf := captureLog(t)

	l := NewEnvLogger("[feed]")
	l.Info("info message %d", 42)
	l.Warn("warning message")
	l.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "[feed] info message 42")
	assert.Contains(t, out, "[feed] WARN: warning message")
	assert.Contains(t, out, "[feed] ERROR: error message")
}

func TestEnvLogger_NoPrefix(t *testing.T) {
	buf := captureLog(t)

	NewEnvLogger("").Warn("bare %s", "line")
	assert.Equal(t, "WARN: bare line\n", buf.String())
}

func TestEnvLogger_PercentInArgs(t *testing.T) {
	buf := captureLog(t)

	NewEnvLogger("[p]").Info("%s", "100% done")
	assert.Equal(t, "[p] 100% done\n", buf.String())
}

func TestNoopLogger(t *testing.T) {
	buf := captureLog(t)

	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Empty(t, buf.String(), "noop logger should not produce any output")
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	msgs := l.Messages()
	require.Len(t, msgs, 4)

	assert.Equal(t, LogMessage{Level: "debug", Message: "debug msg"}, msgs[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "info msg"}, msgs[1])
	assert.Equal(t, LogMessage{Level: "warn", Message: "warn msg"}, msgs[2])
	assert.Equal(t, LogMessage{Level: "error", Message: "error msg"}, msgs[3])
}

func TestBufferLogger_HasLevelAndClear(t *testing.T) {
	l := NewBufferLogger()

	assert.False(t, l.HasLevel("warn"))
	l.Warn("test")
	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))

	l.Clear()
	assert.Empty(t, l.Messages())
	assert.False(t, l.HasLevel("warn"))
}

func TestBufferLogger_Concurrent(t *testing.T) {
	l := NewBufferLogger()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Info("worker %d line %d", n, j)
				_ = l.HasLevel("info")
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, l.Messages(), 400)
}

func TestDefault(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	assert.NotNil(t, original)

	buf := NewBufferLogger()
	SetDefault(buf)
	assert.Equal(t, buf, Default())
}
