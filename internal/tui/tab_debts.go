package tui

import (
	"errors"
	"fmt"
	"strings"

	"payplan/internal/cli"
	"payplan/internal/projection"
	"payplan/internal/tui/components"
	"payplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	var b strings.Builder

	if len(a.debtOutcomes) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No debts yet. Press [n] to add one.")
		b.WriteString("\n  ")
		b.WriteString(empty)
		return b.String()
	}

	// Row 1: metric cards over all payable debts
	totalPrincipal := decimal.Zero
	totalInterest := decimal.Zero
	lastPayoff := ""
	maxMonths := 0
	for _, o := range a.debtOutcomes {
		if o.Err != nil {
			continue
		}
		totalPrincipal = totalPrincipal.Add(o.Input.Principal)
		totalInterest = totalInterest.Add(o.Result.TotalInterestPaid)
		if o.Result.MonthsToPayoff > maxMonths {
			maxMonths = o.Result.MonthsToPayoff
			lastPayoff = cli.FormatDate(o.Result.PayoffDate)
		}
	}
	if lastPayoff == "" {
		lastPayoff = "—"
	}

	cards := []components.Metric{
		{Label: "Total Debt", Value: cli.FormatMoney(totalPrincipal, currency), Detail: fmt.Sprintf("%d record(s)", len(a.debtOutcomes))},
		{Label: "Interest Cost", Value: cli.FormatMoney(totalInterest, currency), Detail: "until payoff"},
		{Label: "Debt Free", Value: lastPayoff, Detail: cli.FormatMonths(maxMonths)},
	}
	b.WriteString(components.MetricRow(cards, cw))
	b.WriteString("\n")

	// Row 2: debt list with cursor
	b.WriteString(components.ContentCard("Debts", a.renderDebtList(cw), cw))
	b.WriteString("\n")

	// Row 3: detail for the selected debt
	if a.debtCursor < len(a.debtOutcomes) {
		o := a.debtOutcomes[a.debtCursor]
		b.WriteString(components.ContentCard(o.Input.Name, a.renderDebtDetail(o), cw))
	}

	return b.String()
}

func (a App) renderDebtList(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	innerW := components.InnerWidth(cw)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	badStyle := lipgloss.NewStyle().Foreground(t.Red)

	nameW := innerW / 3
	if nameW < 12 {
		nameW = 12
	}

	var b strings.Builder
	for i, o := range a.debtOutcomes {
		var line string
		if o.Err != nil {
			line = fmt.Sprintf(" %s  %s",
				fmt.Sprintf("%-*s", nameW, truncStr(o.Input.Name, nameW)),
				describeOutcomeError(o))
			if i == a.debtCursor {
				b.WriteString(selStyle.Render(line))
			} else {
				b.WriteString(badStyle.Render(line))
			}
		} else {
			line = fmt.Sprintf(" %s  %12s  %8s  %s",
				fmt.Sprintf("%-*s", nameW, truncStr(o.Input.Name, nameW)),
				cli.FormatMoney(o.Input.Principal, currency),
				cli.FormatRate(o.Input.AnnualRate),
				cli.FormatMonths(o.Result.MonthsToPayoff))
			if i == a.debtCursor {
				b.WriteString(selStyle.Render(line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderDebtDetail(o projection.DebtOutcome) string {
	t := theme.Active
	currency := a.cfg.General.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red)

	if o.Err != nil {
		return warnStyle.Render(describeOutcomeError(o))
	}

	var b strings.Builder
	rows := []struct{ label, value string }{
		{"Principal", cli.FormatMoney(o.Input.Principal, currency)},
		{"Annual rate", cli.FormatRate(o.Input.AnnualRate)},
		{"Monthly payment", cli.FormatMoney(o.Input.MinPayment, currency)},
		{"Payoff date", cli.FormatDate(o.Result.PayoffDate)},
		{"Time to payoff", cli.FormatMonths(o.Result.MonthsToPayoff)},
		{"Total interest", cli.FormatMoney(o.Result.TotalInterestPaid, currency)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", r.label)),
			valueStyle.Render(r.value))
	}
	return b.String()
}

func describeOutcomeError(o projection.DebtOutcome) string {
	if errors.Is(o.Err, projection.ErrNeverPaysOff) {
		return fmt.Sprintf("never pays off at %s/month", o.Input.MinPayment.StringFixed(2))
	}
	return fmt.Sprintf("invalid: %v", o.Err)
}
