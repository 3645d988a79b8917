// Package presenter renders a report in the terminal and handles the
// interactive repository picker.
//
// Everything here works on plain domain values; styling is applied only
// at render time.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan    = lipgloss.Color("51")
	colorMagenta = lipgloss.Color("201")
	colorBlue    = lipgloss.Color("33")
	colorGreen   = lipgloss.Color("35")
	colorYellow  = lipgloss.Color("220")
	colorRed     = lipgloss.Color("167")
	colorWhite   = lipgloss.Color("255")
	colorGray    = lipgloss.Color("245")
	colorDim     = lipgloss.Color("240")
	colorRule    = lipgloss.Color("#3c3c3c")
)

// Gradient endpoints of the banner.
const (
	bannerStart = "#f72585"
	bannerEnd   = "#4cc9f0"
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleHandleAt = lipgloss.NewStyle().Foreground(colorCyan)
	styleHandle   = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	styleName     = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleBio      = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	styleLocation = lipgloss.NewStyle().Foreground(colorCyan)
	styleFollower = lipgloss.NewStyle().Foreground(colorGreen)
	styleRepos    = lipgloss.NewStyle().Foreground(colorYellow)
	styleLanguage = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleRule     = lipgloss.NewStyle().Foreground(colorRule)
	styleLabel    = lipgloss.NewStyle().Width(labelWidth)
	styleFailed   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleLink     = lipgloss.NewStyle().Foreground(colorCyan)

	styleRepoName  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleRepoLang  = lipgloss.NewStyle().Foreground(colorMagenta)
	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleCell      = lipgloss.NewStyle().Padding(0, 1)
	styleTableEdge = lipgloss.NewStyle().Foreground(colorDim)

	stylePrompt   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleActive   = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	styleInactive = lipgloss.NewStyle().Foreground(colorWhite)
	styleSpinner  = lipgloss.NewStyle().Foreground(colorMagenta)
)

const (
	labelWidth = 12
	ruleWidth  = 50

	iconChecked   = "◉"
	iconUnchecked = "○"
)

// =============================================================================
// Status Output
// =============================================================================

// PrintFailure writes the single-line fatal error message.
func PrintFailure(w io.Writer, err error) {
	fmt.Fprintf(w, "%s Error: %v\n", styleFailed.Render("FAILED"), err)
}

func rule() string {
	return styleRule.Render(strings.Repeat("━", ruleWidth))
}

// keyValue renders a left-aligned label followed by an already styled value.
func keyValue(key, value string) string {
	return " " + styleLabel.Render(key) + " " + value
}
