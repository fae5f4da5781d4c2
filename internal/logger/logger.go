// Package logger provides the small logging interface used across indicate.
// Components accept a Logger instead of writing to the log package directly,
// so the overlay can route output away from the terminal it is drawing on.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// DebugEnv enables Debug output when set to any non-empty value.
const DebugEnv = "INDICATE_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes through the standard log package, whose output the CLI
// points at a file or io.Discard while the overlay is on screen.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger that respects INDICATE_DEBUG.
// The prefix is prepended to all log messages (e.g., "[feed]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv(DebugEnv) != "" {
		l.print("DEBUG: ", format, args)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.print("", format, args)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.print("WARN: ", format, args)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.print("ERROR: ", format, args)
}

func (l *envLogger) print(level, format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		log.Print(level + msg)
		return
	}
	log.Print(l.prefix + " " + level + msg)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(format string, args ...interface{}) {}
func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions. It is safe to use
// from the feeder goroutine while a test inspects it.
type BufferLogger struct {
	mu       sync.Mutex
	messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.add("debug", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.add("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.add("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.add("error", format, args) }

func (l *BufferLogger) add(level, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Messages returns a copy of everything captured so far.
func (l *BufferLogger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages() {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = l.messages[:0]
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewEnvLogger("")
)

// Default returns the package-level logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
