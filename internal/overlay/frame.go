package overlay

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/indicate/internal/render"
)

// Default terminal cell size in pixels at scale 1.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Surface describes the terminal cell grid in pixels so the overlay can
// speak the renderer's pixel units.
type Surface struct {
	CellWidth  float64
	CellHeight float64
}

// NewSurface scales a base cell size.
func NewSurface(cellWidth, cellHeight, scale float64) Surface {
	if scale <= 0 {
		scale = 1
	}
	return Surface{CellWidth: cellWidth * scale, CellHeight: cellHeight * scale}
}

// Columns converts a pixel width to whole cells, rounding up.
func (s Surface) Columns(px float64) int {
	if px <= 0 {
		return 0
	}
	return int(math.Ceil(px / s.CellWidth))
}

// Rows converts a pixel height to whole cells, rounding to nearest.
func (s Surface) Rows(px float64) int {
	if px <= 0 {
		return 0
	}
	return int(math.Round(px / s.CellHeight))
}

func (s Surface) pixelsX(cols int) int {
	return int(float64(cols) * s.CellWidth)
}

func (s Surface) pixelsY(rows int) int {
	return int(float64(rows) * s.CellHeight)
}

// Measurer measures text as its display width in cells times the cell width.
// The font description has no effect on a terminal grid.
func (s Surface) Measurer() render.Measurer {
	return render.MeasurerFunc(func(_, text string) float64 {
		return float64(runewidth.StringWidth(text)) * s.CellWidth
	})
}

// Frame is the overlay's window rectangle in screen pixels.
type Frame struct {
	X, Y          int
	Width, Height int
}

// Apply grows the frame as requested, moving it to keep the anchored edge.
func (f *Frame) Apply(r render.Resize) {
	f.X += r.DeltaX
	f.Width = r.Width
	f.Height = r.Height
}

// Within returns the part of the frame that fits a screen screenWidth
// pixels wide. A frame wider than the screen is cut to the screen width and
// one hanging off the right edge is slid back onto it.
func (f Frame) Within(screenWidth int) Frame {
	if f.Width > screenWidth {
		f.Width = max(0, screenWidth)
	}
	if f.X+f.Width > screenWidth {
		f.X = screenWidth - f.Width
	}
	if f.X < 0 {
		f.X = 0
	}
	return f
}

// PlaceFrame puts a width x height frame in the bottom-right corner of a
// screen, inset by the geometry's edge offset. Negative coordinates are
// clamped to the screen origin.
func PlaceFrame(screenWidth, screenHeight, width, height int, g render.Geometry) Frame {
	f := Frame{
		X:      screenWidth - width - g.EdgeOffset,
		Y:      screenHeight - height - g.EdgeOffset,
		Width:  width,
		Height: height,
	}
	if f.X < 0 {
		f.X = 0
	}
	if f.Y < 0 {
		f.Y = 0
	}
	return f
}
