package cli

import (
	"context"
	stderrors "errors"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/indicate/internal/config"
	"github.com/rileyhilliard/indicate/internal/errors"
	"github.com/rileyhilliard/indicate/internal/logger"
	"github.com/rileyhilliard/indicate/internal/overlay"
	"github.com/rileyhilliard/indicate/internal/render"
	"github.com/rileyhilliard/indicate/internal/state"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runOverlay is the root command: build the first state, then show the
// overlay while a goroutine feeds stdin into it.
func runOverlay(cmd *cobra.Command, args []string) error {
	settings, _, err := config.LoadOrDefault(settingsFlag)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &overlayFlags, settings); err != nil {
		return err
	}

	l := logger.NewEnvLogger("indicate")
	logger.SetDefault(l)

	initial, feeder, err := Startup(StartupOptions{
		Settings: settings,
		Lines:    attributeLines(cmd, &overlayFlags),
		Text:     strings.Join(args, " "),
		HasText:  len(args) > 0,
		Input:    os.Stdin,
		Log:      l,
	})
	if err != nil {
		return err
	}

	return showOverlay(settings, initial, feeder, l)
}

// overlayModel wires settings into an overlay model for store.
func overlayModel(settings *config.Settings, store *state.Store, l logger.Logger) overlay.Model {
	geometry := render.NewGeometry(settings.Scale)
	geometry.FrameWidth = render.Scaled(settings.Width, geometry.Scale)
	geometry.FrameHeight = render.Scaled(settings.Height, geometry.Scale)

	return overlay.NewModel(store, overlay.Options{
		Interval: settings.Interval,
		Geometry: geometry,
		Surface:  overlay.NewSurface(settings.CellWidth, settings.CellHeight, geometry.Scale),
		Profile:  lipgloss.ColorProfile(),
		Logger:   l,
	})
}

func showOverlay(settings *config.Settings, initial state.DisplayState, feeder *state.Feeder, l logger.Logger) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		// Typed lines are the protocol input, so keys can't reach the model.
		l.Warn("stdin is a terminal; type protocol lines and press ctrl+c to quit")
		opts = append(opts, tea.WithInput(nil))
	} else {
		opts = append(opts, tea.WithInputTTY())
	}

	// The terminal belongs to the overlay from here on.
	restoreLog, err := redirectLog(settings.LogFile)
	if err != nil {
		return err
	}
	defer restoreLog()

	store := state.NewStore(initial)
	model := overlayModel(settings, store, l)

	p := tea.NewProgram(model, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		err := feeder.Run(ctx, store)
		if ctx.Err() == nil {
			l.Debug("feeder stopped after %d updates: %v", store.Applied(), err)
			p.Send(overlay.FatalMsg{Err: err})
		}
	}()

	final, err := p.Run()
	if stderrors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Overlay stopped unexpectedly",
			"Run with INDICATE_DEBUG=1 and --log-file to see what happened")
	}

	if m, ok := final.(overlay.Model); ok && m.Err() != nil {
		return classify(m.Err())
	}
	return nil
}

// redirectLog sends the standard logger to path, or discards it when path is
// empty. The returned func points it back at stderr and closes the file.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(path, "indicate")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file: "+path,
			"Check the directory exists and is writable")
	}
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
