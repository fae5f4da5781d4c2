package overlay

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/indicate/internal/logger"
	"github.com/rileyhilliard/indicate/internal/render"
	"github.com/rileyhilliard/indicate/internal/state"
)

// DefaultInterval is the redraw tick.
const DefaultInterval = 20 * time.Millisecond

// Key bindings.
const (
	KeyQuit    = "q"
	KeyQuitAlt = "ctrl+c"
	KeyEscape  = "esc"
)

// tickMsg drives one redraw.
type tickMsg time.Time

// FatalMsg stops the overlay because its input can no longer be trusted.
// The error is kept and returned by Err after the program exits.
type FatalMsg struct {
	Err error
}

// Options configures a Model.
type Options struct {
	Interval time.Duration
	Geometry render.Geometry
	Surface  Surface
	Profile  termenv.Profile
	Logger   logger.Logger
	// Start is the animation epoch. Zero means time.Now().
	Start time.Time
}

// Model is the Bubble Tea model hosting the overlay. On every tick it takes
// a snapshot of the store, asks the renderer for a plan, applies any resize
// the plan requests to its frame, and keeps the plan for View.
type Model struct {
	store    *state.Store
	renderer *render.Renderer
	painter  *painter
	log      logger.Logger

	interval time.Duration
	start    time.Time

	frame     Frame
	screenW   int // in pixels
	screenH   int
	hasScreen bool

	plan     render.Plan
	frames   uint64
	err      error
	quitting bool
}

// NewModel creates the overlay for store. The initial frame uses the
// geometry's base size; it is placed once the terminal size is known.
func NewModel(store *state.Store, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	if opts.Geometry.Scale == 0 {
		opts.Geometry = render.NewGeometry(1)
	}
	if opts.Surface.CellWidth <= 0 || opts.Surface.CellHeight <= 0 {
		opts.Surface = NewSurface(DefaultCellWidth, DefaultCellHeight, opts.Geometry.Scale)
	}

	bar := progress.New(progress.WithoutPercentage(), progress.WithColorProfile(opts.Profile))

	m := Model{
		store:    store,
		renderer: render.New(opts.Geometry, opts.Surface.Measurer()),
		painter:  newPainter(opts.Surface, bar),
		log:      opts.Logger,
		interval: opts.Interval,
		start:    opts.Start,
		frame: Frame{
			Width:  opts.Geometry.FrameWidth,
			Height: opts.Geometry.FrameHeight,
		},
	}
	m.redraw(opts.Start)
	return m
}

// Init starts the redraw tick.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyQuit, KeyQuitAlt, KeyEscape:
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.screenW = m.painter.surface.pixelsX(msg.Width)
		m.screenH = m.painter.surface.pixelsY(msg.Height)
		m.hasScreen = true
		m.frame = PlaceFrame(m.screenW, m.screenH, m.frame.Width, m.frame.Height, m.renderer.Geometry())

	case tickMsg:
		m.redraw(time.Time(msg))
		return m, m.tickCmd()

	case FatalMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the overlay box at its frame position. Once the terminal
// size is known the box is cut to the screen width so rows never wrap.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.hasScreen {
		return m.painter.paint(m.plan, m.frame)
	}

	frame := m.frame.Within(m.screenW)
	box := m.painter.paint(m.plan, frame)

	s := m.painter.surface
	left := max(0, int(float64(frame.X)/s.CellWidth))
	top := max(0, int(float64(frame.Y)/s.CellHeight))

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", top))
	indent := strings.Repeat(" ", left)
	for i, line := range strings.Split(box, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// Err returns the error that stopped the overlay, if any.
func (m Model) Err() error {
	return m.err
}

// Frame returns the current window rectangle.
func (m Model) Frame() Frame {
	return m.frame
}

// Plan returns the most recent frame plan.
func (m Model) Plan() render.Plan {
	return m.plan
}

// Frames returns how many plans have been computed.
func (m Model) Frames() uint64 {
	return m.frames
}

// redraw recomputes the plan from a fresh snapshot. The store lock is held
// only inside Snapshot.
func (m *Model) redraw(now time.Time) {
	snapshot := m.store.Snapshot()
	elapsed := now.Sub(m.start)
	if elapsed < 0 {
		elapsed = 0
	}

	m.plan = m.renderer.Plan(snapshot, float64(m.frame.Width), float64(m.frame.Height), elapsed)
	m.frames++

	if r := m.plan.Resize; r != nil {
		m.log.Debug("growing frame from %dpx to %dpx (dx %d)", m.frame.Width, r.Width, r.DeltaX)
		m.frame.Apply(*r)
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
