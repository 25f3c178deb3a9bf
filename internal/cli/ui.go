package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tabgrid/pkg/core/widget"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // selection, titles
	colorGreen  = lipgloss.Color("35")  // success, enabled widgets
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // links
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels, keys
	colorDim    = lipgloss.Color("240") // empty cells, hints
)

// widgetColors gives each widget a stable color in grid previews.
var widgetColors = map[widget.ID]lipgloss.Color{
	widget.Time:       colorYellow,
	widget.Main:       colorBlue,
	widget.Quicklinks: colorGreen,
	widget.Notes:      colorRed,
	widget.Quotes:     colorCyan,
	widget.Searchbar:  colorWhite,
}

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleLink      = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	StyleKey       = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)

	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// stdout receives every status line. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

func printLine(s string) { fmt.Fprintln(stdout, s) }

func printSuccess(format string, args ...any) {
	printLine(StyleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printLine(StyleWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printLine(StyleDim.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under the previous status.
func printDetail(format string, args ...any) {
	printLine("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written file.
func printFile(path string) {
	printLine("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a value under a fixed-width label.
func printKeyValue(key, value string) {
	printLine(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

func printNewline() { printLine("") }
