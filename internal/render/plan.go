// Package render turns a display state snapshot into a frame plan.
//
// Computing a plan is pure: the same snapshot, frame size and elapsed time
// always give the same plan, so the caller can run it at any tick rate
// without drift. Drawing the plan and measuring text belong to the caller's
// surface; this package only consumes a Measurer.
package render

import (
	"math"
	"time"

	"github.com/rileyhilliard/indicate/internal/color"
	"github.com/rileyhilliard/indicate/internal/state"
)

// Background is the fixed frame fill.
var Background = color.Color{R: 0.10, G: 0.10, B: 0.10, A: 0.90}

// Measurer reports how wide text renders in a font, in pixels.
type Measurer interface {
	TextWidth(font, text string) float64
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(font, text string) float64

// TextWidth calls f.
func (f MeasurerFunc) TextWidth(font, text string) float64 {
	return f(font, text)
}

// Rect is an axis-aligned rectangle in frame pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Fill paints Rect with Color.
type Fill struct {
	Rect  Rect
	Color color.Color
}

// Text places the label with its top-left corner at X, Y.
type Text struct {
	X, Y  float64
	Text  string
	Font  string
	Color color.Color
	Width float64 // as reported by the Measurer
}

// Resize asks the window to become Width pixels wide and to move by DeltaX
// so that the anchored edge stays put.
type Resize struct {
	Width  int
	Height int
	DeltaX int
}

// Bar is the progress strip along the bottom edge.
type Bar struct {
	Fill
	// Fraction of the frame width covered: 1 for the pulsing bar.
	Fraction float64
	// Pulsing is true for the indeterminate bar.
	Pulsing bool
}

// Plan is everything needed to draw one frame.
type Plan struct {
	Background Fill
	Text       Text
	Resize     *Resize // nil when the text fits
	Bar        *Bar    // nil when no bar is drawn
}

// Renderer computes plans for one surface.
type Renderer struct {
	geometry Geometry
	measurer Measurer
}

// New creates a Renderer.
func New(geometry Geometry, measurer Measurer) *Renderer {
	return &Renderer{geometry: geometry, measurer: measurer}
}

// Geometry returns the renderer's layout constants.
func (r *Renderer) Geometry() Geometry {
	return r.geometry
}

// Plan lays out s in a frame of the given size, elapsed after start.
func (r *Renderer) Plan(s state.DisplayState, width, height float64, elapsed time.Duration) Plan {
	g := r.geometry

	plan := Plan{
		Background: Fill{
			Rect:  Rect{Width: width, Height: height},
			Color: Background,
		},
	}

	textWidth := r.measurer.TextWidth(s.Font, s.Text)
	plan.Text = Text{
		X:     g.Margin,
		Y:     g.TextOffsetY,
		Text:  s.Text,
		Font:  s.Font,
		Color: s.Color,
		Width: textWidth,
	}

	plan.Bar = bar(s, width, height, g.BarHeight, elapsed)
	plan.Resize = resize(g.Margin+textWidth+g.Margin, width, height, s.RightAligned)

	return plan
}

func bar(s state.DisplayState, width, height, barHeight float64, elapsed time.Duration) *Bar {
	strip := Rect{Y: height - barHeight, Height: barHeight}

	switch m := s.Mode().(type) {
	case state.NoProgress:
		return nil

	case state.Determinate:
		fraction := FillFraction(m.Current, m.Max)
		strip.Width = width * fraction
		return &Bar{
			Fill:     Fill{Rect: strip, Color: s.Color.WithAlpha(1)},
			Fraction: fraction,
		}

	case state.Indeterminate:
		strip.Width = width
		return &Bar{
			Fill:     Fill{Rect: strip, Color: s.Color.WithAlpha(IndeterminateAlpha(elapsed, m.Speed))},
			Fraction: 1,
			Pulsing:  true,
		}

	default:
		return nil
	}
}

// resize reports the growth needed to fit content of the given extent.
// Frames only grow; a shorter label leaves the frame as it is.
func resize(extent, width, height float64, rightAligned bool) *Resize {
	if !(extent > width) {
		return nil
	}
	newWidth := int(math.Ceil(extent))
	req := &Resize{Width: newWidth, Height: int(height)}
	if rightAligned {
		req.DeltaX = -(newWidth - int(width))
	}
	return req
}

// FillFraction is current/max clamped to [0, 1]. A zero max gives an empty
// bar.
func FillFraction(current, max uint64) float64 {
	if max == 0 {
		return 0
	}
	if current >= max {
		return 1
	}
	return float64(current) / float64(max)
}

// IndeterminateAlpha is the opacity of the pulsing bar after elapsed, at the
// given speed. A primary sine plus a small second harmonic keeps the pulse
// asymmetric; the result stays roughly within [0.02, 0.98].
func IndeterminateAlpha(elapsed time.Duration, speed uint32) float64 {
	t := elapsed.Seconds() * float64(speed)
	return PulseAlpha(t)
}

// PulseAlpha evaluates the pulse at phase t (radians), clamped to [0, 1].
// It is periodic in t with period 2π.
func PulseAlpha(t float64) float64 {
	a := (math.Sin(t)+0.15*math.Sin(2*t))/2.2 + 0.5
	return math.Max(0, math.Min(1, a))
}
