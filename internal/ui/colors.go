package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication
const (
	ColorError lipgloss.Color = "1" // Red
	ColorMuted lipgloss.Color = "8" // Gray (bright black)
)

// SymbolFail marks a failure.
const SymbolFail = "✗"
