package components

import (
	"fmt"

	"payplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, planName string, dirty bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [n]ew  [e]dit  [x]delete  [?]help  [q]uit"
	right := ""
	if planName != "" {
		right = fmt.Sprintf("Plan: %s ", planName)
		if dirty {
			right = fmt.Sprintf("Plan: %s (edited) ", planName)
		}
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
