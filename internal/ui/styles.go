package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
)

// Status styles.
var (
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)
)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// Success renders msg with the success style when w is an interactive
// terminal, and returns it unchanged otherwise.
func Success(w io.Writer, msg string) string {
	if !IsStyledOutput(w) {
		return msg
	}
	return SuccessStyle.Render(msg)
}
