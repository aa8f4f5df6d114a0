// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	deepColor      = lipgloss.Color("#AF87D7") // Muted violet for deep work
	warnColor      = lipgloss.Color("#AF5F5F") // Muted terracotta for over-capacity

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text and done blocks
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for the selected day or menu item
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// DeepStyle marks deep-work blocks
	DeepStyle = lipgloss.NewStyle().
			Foreground(deepColor)

	// WarnStyle for capacity warnings
	WarnStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	// StatusBarStyle for the bottom help bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)
