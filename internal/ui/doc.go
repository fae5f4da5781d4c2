// Package ui styles indicate's own CLI output, separate from the overlay.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorError (red)  - Failures
//	ColorMuted (gray) - Causes and hints
//
// Styles are built from a lipgloss.Renderer so output written to stderr is
// colored only when stderr is a terminal.
package ui
