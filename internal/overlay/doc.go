// Package overlay draws the indicator in a terminal using Bubble Tea.
//
// It plays the part of the window system for the render model: it owns the
// frame rectangle, runs the periodic redraw tick, measures text on the cell
// grid, paints each render.Plan with lipgloss, and grows its frame when a
// plan asks for more room.
//
// # Message Flow
//
//  1. tickMsg fires every Options.Interval (default 20ms)
//  2. the model copies a snapshot out of the state.Store
//  3. render.Renderer turns the snapshot into a Plan
//  4. a Resize in the plan is applied to the frame before View runs
//
// The state.Feeder runs on its own goroutine and never talks to the model
// directly; when it fails the caller sends a FatalMsg so the program exits
// and the error can be read back with Model.Err.
//
// # Terminal mapping
//
// The render model works in pixels. Surface converts between pixels and
// cells, and Model places the frame in the bottom-right corner of the
// terminal, inset by the geometry's edge offset. Translucent fills are
// composited onto black since cells cannot be transparent.
package overlay
