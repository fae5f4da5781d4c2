package state

import (
	"bufio"
	"context"
	"io"

	"github.com/rileyhilliard/indicate/internal/logger"
	"github.com/rileyhilliard/indicate/internal/protocol"
)

// MaxLineSize bounds a single protocol line.
const MaxLineSize = 1 << 20

// Feeder reads protocol lines from a stream, one at a time, in order.
//
// It is the only writer of a Store. Reads block until a line is available;
// there is no way to interrupt a read in progress, so Run notices a cancelled
// context only between lines.
type Feeder struct {
	scanner *bufio.Scanner
	source  string
	line    int
	lenient bool
	log     logger.Logger
}

// FeederOption configures a Feeder.
type FeederOption func(*Feeder)

// WithSource names the stream in error messages. Defaults to "stdin".
func WithSource(name string) FeederOption {
	return func(f *Feeder) { f.source = name }
}

// WithLenient makes Run log and skip malformed lines instead of stopping.
// Read failures still stop Run.
func WithLenient(lenient bool) FeederOption {
	return func(f *Feeder) { f.lenient = lenient }
}

// WithLogger sets the logger used for debug traces and skipped lines.
func WithLogger(l logger.Logger) FeederOption {
	return func(f *Feeder) { f.log = l }
}

// NewFeeder wraps r. Line terminators ("\n" or "\r\n") are stripped; the
// rest of each line is passed to the parser verbatim.
func NewFeeder(r io.Reader, opts ...FeederOption) *Feeder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	f := &Feeder{
		scanner: scanner,
		source:  "stdin",
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Line returns the number of lines read so far.
func (f *Feeder) Line() int {
	return f.line
}

// Next blocks for the next line and parses it. At end of stream it returns
// ErrInputClosed; read failures come back as *ReadError. Both are wrapped in
// a *LineError carrying the source name.
func (f *Feeder) Next() (protocol.Command, error) {
	text, err := f.readLine()
	if err != nil {
		return nil, &LineError{Source: f.source, Line: f.line, Err: err}
	}

	cmd, err := protocol.Parse(text)
	if err != nil {
		return nil, &LineError{Source: f.source, Line: f.line, Err: err}
	}
	return cmd, nil
}

// WaitForText applies lines to s until its text is non-empty. It runs before
// s is shared, so it needs no lock. Every error is returned, including parse
// errors in lenient mode.
func (f *Feeder) WaitForText(s *DisplayState) error {
	for s.Text == "" {
		cmd, err := f.Next()
		if err != nil {
			return err
		}
		s.Apply(cmd)
		f.log.Debug("applied %q before first frame", cmd.String())
	}
	return nil
}

// Run applies every following line to store until the stream fails, a line
// is malformed (unless lenient), or ctx is cancelled. It always returns a
// non-nil error.
func (f *Feeder) Run(ctx context.Context, store *Store) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := f.Next()
		if err != nil {
			if f.lenient && !IsReadFailure(err) {
				f.log.Warn("ignoring malformed line: %v", err)
				continue
			}
			return err
		}

		store.Apply(cmd)
		f.log.Debug("applied %q", cmd.String())
	}
}

func (f *Feeder) readLine() (string, error) {
	if !f.scanner.Scan() {
		if err := f.scanner.Err(); err != nil {
			return "", &ReadError{Err: err}
		}
		return "", ErrInputClosed
	}
	f.line++
	return f.scanner.Text(), nil
}
