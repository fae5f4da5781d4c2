package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/indicate/internal/color"
	"github.com/rileyhilliard/indicate/internal/render"
)

// Terminal cells cannot be translucent, so every fill is composited onto
// this backdrop before it is turned into a terminal color.
var backdrop = color.Black

// Bar glyphs.
const (
	barGlyph   = '▂'
	emptyGlyph = ' '
)

// composite blends fg over bg and returns an opaque color.
func composite(fg, bg color.Color) color.Color {
	a := fg.A
	return color.Color{
		R: fg.R*a + bg.R*(1-a),
		G: fg.G*a + bg.G*(1-a),
		B: fg.B*a + bg.B*(1-a),
		A: 1,
	}
}

// termColor converts a composited color into a lipgloss color.
func termColor(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.RGBHex())
}

// painter draws a render.Plan onto a grid of terminal cells.
type painter struct {
	surface Surface
	bar     progress.Model
}

func newPainter(surface Surface, bar progress.Model) *painter {
	bar.ShowPercentage = false
	bar.Full = barGlyph
	bar.Empty = emptyGlyph
	return &painter{surface: surface, bar: bar}
}

// paint renders the plan for a frame of the given size and returns the
// box as newline-separated rows, each exactly cols cells wide.
func (p *painter) paint(plan render.Plan, frame Frame) string {
	cols := p.surface.Columns(float64(frame.Width))
	rows := p.surface.Rows(float64(frame.Height))
	if rows < 2 {
		rows = 2
	}
	if cols < 1 {
		cols = 1
	}

	bg := composite(plan.Background.Color, backdrop)
	blank := lipgloss.NewStyle().Background(termColor(bg))

	lines := make([]string, rows)
	for i := range lines {
		lines[i] = blank.Render(strings.Repeat(" ", cols))
	}

	textRow := p.surface.Rows(plan.Text.Y)
	if textRow > rows-2 {
		textRow = rows - 2
	}
	lines[textRow] = p.textRow(plan.Text, cols, bg)

	if plan.Bar != nil {
		lines[rows-1] = p.barRow(*plan.Bar, cols, bg)
	}

	return strings.Join(lines, "\n")
}

func (p *painter) textRow(t render.Text, cols int, bg color.Color) string {
	lead := p.surface.Columns(t.X)
	if lead >= cols {
		lead = cols - 1
	}

	label := runewidth.Truncate(t.Text, cols-lead, "…")
	pad := cols - lead - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}

	style := fontStyle(t.Font).
		Foreground(termColor(composite(t.Color, bg))).
		Background(termColor(bg))
	blank := lipgloss.NewStyle().Background(termColor(bg))

	return blank.Render(strings.Repeat(" ", lead)) +
		style.Render(label) +
		blank.Render(strings.Repeat(" ", pad))
}

func (p *painter) barRow(b render.Bar, cols int, bg color.Color) string {
	fill := termColor(composite(b.Color, bg))

	if b.Pulsing {
		return lipgloss.NewStyle().
			Foreground(fill).
			Background(termColor(bg)).
			Render(strings.Repeat(string(barGlyph), cols))
	}

	bar := p.bar
	bar.Width = cols
	bar.FullColor = string(fill)
	bar.EmptyColor = string(termColor(bg))
	return bar.ViewAs(b.Fraction)
}

// fontStyle picks the terminal attributes a font description asks for.
func fontStyle(font string) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, word := range strings.Fields(font) {
		switch strings.ToLower(word) {
		case "bold", "heavy", "black":
			style = style.Bold(true)
		case "italic", "oblique":
			style = style.Italic(true)
		case "light", "thin":
			style = style.Faint(true)
		}
	}
	return style
}
