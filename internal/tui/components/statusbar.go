package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pwnd-u/life-planner/internal/tui/styles"
)

// StatusBar renders a bottom help bar with contextual key hints on the left
// and an optional context label (e.g. the week being viewed) on the right.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width.
func (s StatusBar) Render(width int, items []string, context string) string {
	left := strings.Join(items, " • ")
	if context == "" {
		return styles.StatusBarStyle.Width(width).Render(left)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(context)
	if gap < 1 {
		return styles.StatusBarStyle.Width(width).Render(left)
	}
	return styles.StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + context)
}
