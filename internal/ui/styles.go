// Package ui provides terminal output for the mcsrv CLI.
//
// Styling degrades automatically when stdout is not a terminal so that
// piped output stays machine-readable.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Brand colors.
var (
	Emerald = lipgloss.Color("#34D399")
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	DimGray = lipgloss.Color("#9CA3AF")
	White   = lipgloss.Color("#E5E7EB")
)

// Text styles.
var (
	// TitleStyle for headings and selected items.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Emerald)

	// SuccessStyle for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Emerald).
			Bold(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(White)

	// DimStyle for less important text.
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// AccentStyle for option numbers and markers.
	AccentStyle = lipgloss.NewStyle().
			Foreground(Emerald)

	// TableHeaderStyle for table header cells.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(DimGray)
)

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
