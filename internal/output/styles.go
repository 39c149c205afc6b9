package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Every colour used by the CLI is named here.
var (
	// ColorCyan marks identifiable nouns: entity names, paths, template ids.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks created artifacts and generated entities.
	ColorGreen = lipgloss.Color("82")

	// ColorBlue marks appended artifacts.
	ColorBlue = lipgloss.Color("39")

	// ColorYellow marks partial entities.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed marks failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Status words shown next to artifacts, entities and phases.
const (
	StatusCreated   = "created"
	StatusAppended  = "appended"
	StatusCopied    = "copied"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
	StatusGenerated = "generated"
	StatusPartial   = "partial"
	StatusCompleted = "completed"
	StatusNotRun    = "not run"
)

// StatusStyle returns the style for a status word. Unknown statuses are
// unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusGenerated, StatusCompleted, StatusCopied:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusAppended:
		return lipgloss.NewStyle().Foreground(ColorBlue)
	case StatusPartial:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped, StatusNotRun:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 56

// FormatArtifactLine renders an artifact with a right-aligned status.
//
// Format: a:<kind> <path>  <status>
func FormatArtifactLine(kind, path, status string) string {
	label := kind + " " + path
	padding := minPathColumnWidth - len(label)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("a:") + kind + " " + StyleNoun.Render(path) +
		strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}
