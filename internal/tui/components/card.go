// Package components provides reusable TUI widgets for the payplan planner.
package components

import (
	"payplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one labeled figure shown in a metric row.
type Metric struct {
	Label  string
	Value  string
	Detail string
}

// frame is the bordered panel style shared by every card. outerWidth
// includes the border characters.
func frame(outerWidth int) lipgloss.Style {
	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(contentWidth).
		Padding(0, 1)
}

// SplitWidths divides totalWidth into n column widths that sum exactly
// to totalWidth. The leftmost columns absorb the division remainder one
// cell each.
func SplitWidths(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// MetricRow renders the metrics as a row of small cards spanning exactly
// totalWidth.
func MetricRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	cards := make([]string, len(metrics))
	for i, w := range SplitWidths(totalWidth, len(metrics)) {
		m := metrics[i]
		body := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
		if m.Detail != "" {
			body += "\n" + detailStyle.Render(m.Detail)
		}
		cards[i] = frame(w).Render(body)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// ContentCard renders a bordered panel with an optional bold title line.
func ContentCard(title, body string, outerWidth int) string {
	content := body
	if title != "" {
		titleStyle := lipgloss.NewStyle().
			Foreground(theme.Active.TextMuted).
			Bold(true)
		content = titleStyle.Render(title) + "\n" + body
	}
	return frame(outerWidth).Render(content)
}

// InnerWidth returns the usable text width inside a card of the given
// outer width (border and padding subtracted).
func InnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
