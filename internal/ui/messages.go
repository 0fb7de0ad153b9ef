// Package ui provides message printing utilities.
package ui

import (
	"fmt"
	"strings"
)

// quietMode suppresses decorative output when set via --quiet.
var quietMode bool

// SetQuietMode enables or disables quiet mode globally.
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}

// PrintError prints an error message. Never suppressed by quiet mode.
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(ErrorStyle.Render("✗ " + msg))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(WarningStyle.Render("⚠ " + msg))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(InfoStyle.Render(msg))
}

// PrintDim prints a dimmed message.
func PrintDim(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(DimStyle.Render(msg))
}

// Table renders aligned columnar output with a styled header.
type Table struct {
	// Headers contains the column header names.
	Headers []string

	// Rows contains all data rows.
	Rows [][]string
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends a data row.
func (t *Table) AddRow(values ...string) {
	t.Rows = append(t.Rows, values)
}

// columnWidths computes per-column widths from headers and rows.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}
	return widths
}

// Render prints the table to stdout.
func (t *Table) Render() {
	if len(t.Headers) == 0 {
		return
	}

	widths := t.columnWidths()
	const gap = "  "

	var header []string
	for i, h := range t.Headers {
		header = append(header, TableHeaderStyle.Render(padRight(h, widths[i])))
	}
	fmt.Println(strings.Join(header, gap))

	total := len(gap) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	fmt.Println(DimStyle.Render(strings.Repeat("─", total)))

	for _, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cells = append(cells, padRight(val, widths[i]))
		}
		fmt.Println(strings.Join(cells, gap))
	}
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
