package tui

import (
	"fmt"
	"strings"

	"payplan/internal/cli"
	"payplan/internal/tui/components"
	"payplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderAllocationTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	var b strings.Builder

	if !a.hasAlloc {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No monthly budget set. Press [b] to enter one.")
		b.WriteString("\n  ")
		b.WriteString(hint)
		if a.editingBudget {
			b.WriteString("\n\n  ")
			b.WriteString(a.budgetInput.View())
		}
		b.WriteString("\n\n")
		b.WriteString(a.renderNetCard(cw))
		return b.String()
	}

	// Row 1: the split itself
	var split strings.Builder
	split.WriteString(fmt.Sprintf("Monthly budget  %s", cli.FormatMoney(a.alloc.MonthlyBudget, currency)))
	if a.editingBudget {
		split.WriteString("   ")
		split.WriteString(a.budgetInput.View())
	}
	split.WriteString("\n\n")

	barW := components.InnerWidth(cw) - 26
	if barW < 10 {
		barW = 10
	}
	debtPct := float64(a.alloc.DebtPercent) / 100
	split.WriteString(components.SplitBar("Debt", debtPct, t.Red, 8, barW))
	split.WriteString("  " + lipgloss.NewStyle().Foreground(t.TextPrimary).Render(cli.FormatMoney(a.debtShare, currency)))
	split.WriteString("\n")
	split.WriteString(components.SplitBar("Invest", 1-debtPct, t.Green, 8, barW))
	split.WriteString("  " + lipgloss.NewStyle().Foreground(t.TextPrimary).Render(cli.FormatMoney(a.investShare, currency)))
	split.WriteString("\n\n")
	split.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(
		"h/l shift 1%, H/L shift 10%, b edit budget"))

	b.WriteString(components.ContentCard("Budget Split", split.String(), cw))
	b.WriteString("\n")

	b.WriteString(a.renderNetCard(cw))
	return b.String()
}

// renderNetCard shows where the whole plan lands after the horizon.
func (a App) renderNetCard(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	netStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	if a.net.Net.Sign() < 0 {
		netStyle = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", "Investments")),
		valueStyle.Render(cli.FormatMoney(a.net.InvestmentValue, currency)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", "Debt left")),
		valueStyle.Render("-"+cli.FormatMoney(a.net.OutstandingDebt, currency)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", "Net")),
		netStyle.Render(cli.FormatMoney(a.net.Net, currency)))
	if a.net.Skipped > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Yellow).Render(
			fmt.Sprintf("%d record(s) excluded", a.net.Skipped)))
		b.WriteString("\n")
	}

	return components.ContentCard(fmt.Sprintf("Net Position (%dy)", a.net.HorizonYears), b.String(), cw)
}
