package tui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	colorCyan    = lipgloss.Color("#00FFFF")
	colorGray    = lipgloss.Color("#666666")
	colorDimGray = lipgloss.Color("#444444")
	colorYellow  = lipgloss.Color("#FFFF00")
	colorGreen   = lipgloss.Color("#00FF00")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	noteTitleStyle = lipgloss.NewStyle().
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorDimGray)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(colorGray)
)
