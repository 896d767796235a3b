package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// colorCyan is used for identifiable nouns: project names, paths.
	colorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" file status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" file status and reminders.
	ColorYellow = lipgloss.Color("220")

	// colorBoldRed is used for the "failed" file status (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// colorDimGray is used for tree descriptions and other structural chrome.
	colorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleAction styles action verbs (creating, initializing, installing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleMuted styles secondary text such as file descriptions.
	StyleMuted = lipgloss.NewStyle().Foreground(colorDimGray)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants.
const (
	StatusCreated  = "created"
	StatusSkipped  = "skipped"
	StatusExcluded = "excluded"
	statusFailed   = "failed"
)

// statusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusExcluded:
		return lipgloss.NewStyle().Faint(true)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width for the path column before the
// status suffix, so status words align consistently.
const minPathColumnWidth = 40

// FormatFileLine renders a project-relative path with a right-aligned,
// color-coded status suffix.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("f:")
	styledPath := StyleNoun.Render(path)
	styledStatus := statusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// checkLabelWidth is the column at which FormatCheck details start.
const checkLabelWidth = 28

// FormatCheck renders a checkmark line with a label and an optional detail
// aligned in a second column.
func FormatCheck(label, detail string) string {
	line := FormatCheckmark(label)
	if detail == "" {
		return line
	}
	padding := checkLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleNoun.Render(detail)
}

// FormatReminder renders a follow-up reminder bullet.
func FormatReminder(msg string) string {
	bullet := lipgloss.NewStyle().Foreground(ColorYellow).Render("•")
	return bullet + " " + msg
}
