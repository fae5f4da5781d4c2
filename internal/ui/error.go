package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrorPrinter writes failures in the three-part layout:
//
//	✗ <What failed>
//
//	  <Why it failed>
//
//	  <How to fix it>
type ErrorPrinter struct {
	w          io.Writer
	headline   lipgloss.Style
	detail     lipgloss.Style
	suggestion lipgloss.Style
}

// NewErrorPrinter styles output for w. Pass lipgloss.NewRenderer(w) so
// colors follow w's terminal capabilities.
func NewErrorPrinter(w io.Writer, r *lipgloss.Renderer) *ErrorPrinter {
	return &ErrorPrinter{
		w:          w,
		headline:   r.NewStyle().Foreground(ColorError).Bold(true),
		detail:     r.NewStyle().Foreground(ColorMuted),
		suggestion: r.NewStyle(),
	}
}

// Print writes one failure. Empty cause or suggestion lines are omitted.
func (p *ErrorPrinter) Print(message, cause, suggestion string) {
	var b strings.Builder

	b.WriteString(p.headline.Render(SymbolFail+" "+message) + "\n")
	if cause != "" {
		b.WriteString("\n  " + p.detail.Render(cause) + "\n")
	}
	if suggestion != "" {
		b.WriteString("\n  " + p.suggestion.Render(suggestion) + "\n")
	}

	fmt.Fprint(p.w, b.String())
}
