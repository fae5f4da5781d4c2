package cli

import (
	stderrors "errors"
	"io"
	"strings"

	"github.com/rileyhilliard/indicate/internal/config"
	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/rileyhilliard/indicate/internal/logger"
	"github.com/rileyhilliard/indicate/internal/protocol"
	"github.com/rileyhilliard/indicate/internal/state"
)

// flagSource names command-line attribute lines in error messages.
const flagSource = "flags"

// StartupOptions carries everything needed to build the first display state.
type StartupOptions struct {
	Settings *config.Settings
	// Lines are protocol lines built from command-line flags.
	Lines []string
	// Text is the positional text; ignored unless HasText is set.
	Text    string
	HasText bool
	// Input is the live stream of protocol lines.
	Input io.Reader
	Log   logger.Logger
}

// Startup builds the initial state and returns it with the feeder that
// continues reading Input. It blocks until the text is non-empty.
func Startup(opts StartupOptions) (state.DisplayState, *state.Feeder, error) {
	log := opts.Log
	if log == nil {
		log = logger.Noop()
	}

	s, err := bootstrapState(opts.Settings, log)
	if err != nil {
		return state.DisplayState{}, nil, err
	}

	if err := state.ReplayLines(opts.Lines, flagSource, &s); err != nil {
		return state.DisplayState{}, nil, classify(err)
	}

	if opts.HasText {
		s.Apply(protocol.SetText{Text: opts.Text})
	}

	feeder := state.NewFeeder(opts.Input,
		state.WithLenient(opts.Settings.Lenient),
		state.WithLogger(log),
	)

	if s.Text == "" {
		log.Debug("waiting for text on stdin")
	}
	if err := feeder.WaitForText(&s); err != nil {
		return state.DisplayState{}, nil, classify(err)
	}

	return s, feeder, nil
}

// bootstrapState replays the bootstrap file, if any, over the defaults.
func bootstrapState(settings *config.Settings, log logger.Logger) (state.DisplayState, error) {
	r, path, err := config.OpenBootstrap(settings.Bootstrap, log)
	if err != nil {
		return state.DisplayState{}, err
	}

	var s state.DisplayState
	if r == nil {
		s, err = state.Initialize(nil, "")
	} else {
		s, err = state.Initialize(r, path)
		r.Close()
	}
	if err != nil {
		return state.DisplayState{}, classify(err)
	}

	s.RightAligned = settings.RightAligned
	return s, nil
}

// classify turns state and protocol failures into structured errors.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var indErr *errors.Error
	if stderrors.As(err, &indErr) {
		return err
	}

	if stderrors.Is(err, state.ErrInputClosed) {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Input closed",
			"Keep the writing end of stdin open for as long as the overlay should stay up")
	}

	if state.IsReadFailure(err) {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Reading input failed",
			"Check the process feeding stdin")
	}

	var protoErr *protocol.ProtocolError
	if stderrors.As(err, &protoErr) {
		return errors.WrapWithCode(err, errors.ErrProtocol,
			"Malformed protocol line",
			"Lines starting with \\ must be \\key=value with key one of "+strings.Join(protocol.Keys, ", ")+"; pass --lenient to skip bad live updates")
	}

	return errors.WrapWithCode(err, errors.ErrRender, "Overlay failed", "")
}
