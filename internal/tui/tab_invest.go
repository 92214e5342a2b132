package tui

import (
	"fmt"
	"strings"

	"payplan/internal/cli"
	"payplan/internal/projection"
	"payplan/internal/tui/components"
	"payplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) renderInvestmentsTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	var b strings.Builder

	if len(a.investOutcomes) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"No investments yet. Press [n] to add one.")
		b.WriteString("\n  ")
		b.WriteString(empty)
		return b.String()
	}

	// Row 1: metric cards over all valid investments
	totalFuture := decimal.Zero
	totalContrib := decimal.Zero
	totalGain := decimal.Zero
	for _, o := range a.investOutcomes {
		if o.Err != nil {
			continue
		}
		totalFuture = totalFuture.Add(o.Result.FutureValue)
		totalContrib = totalContrib.Add(o.Result.TotalContributions)
		totalGain = totalGain.Add(o.Result.NetGain)
	}

	cards := []components.Metric{
		{Label: "Future Value", Value: cli.FormatMoney(totalFuture, currency), Detail: fmt.Sprintf("%d record(s)", len(a.investOutcomes))},
		{Label: "Contributed", Value: cli.FormatMoney(totalContrib, currency), Detail: "principal + deposits"},
		{Label: "Net Gain", Value: cli.FormatMoney(totalGain, currency), Detail: "growth over horizon"},
	}
	b.WriteString(components.MetricRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Investments", a.renderInvestmentList(cw), cw))
	b.WriteString("\n")

	if a.investCursor < len(a.investOutcomes) {
		o := a.investOutcomes[a.investCursor]
		b.WriteString(components.ContentCard(o.Input.Name, a.renderInvestmentDetail(o), cw))
	}

	return b.String()
}

func (a App) renderInvestmentList(cw int) string {
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
	for i, o := range a.investOutcomes {
		var line string
		if o.Err != nil {
			line = fmt.Sprintf(" %s  invalid: %v",
				fmt.Sprintf("%-*s", nameW, truncStr(o.Input.Name, nameW)), o.Err)
			if i == a.investCursor {
				b.WriteString(selStyle.Render(line))
			} else {
				b.WriteString(badStyle.Render(line))
			}
		} else {
			line = fmt.Sprintf(" %s  %12s  %8s  %3dy  %12s",
				fmt.Sprintf("%-*s", nameW, truncStr(o.Input.Name, nameW)),
				cli.FormatMoney(o.Input.StartingAmount, currency),
				cli.FormatRate(o.Input.AnnualReturn),
				o.Input.HorizonYears,
				cli.FormatMoney(o.Result.FutureValue, currency))
			if i == a.investCursor {
				b.WriteString(selStyle.Render(line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderInvestmentDetail(o projection.InvestmentOutcome) string {
	t := theme.Active
	currency := a.cfg.General.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red)

	if o.Err != nil {
		return warnStyle.Render(fmt.Sprintf("invalid: %v", o.Err))
	}

	gain := gainStyle
	if o.Result.NetGain.Sign() < 0 {
		gain = warnStyle
	}

	var b strings.Builder
	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Starting amount", cli.FormatMoney(o.Input.StartingAmount, currency), valueStyle},
		{"Annual return", cli.FormatRate(o.Input.AnnualReturn), valueStyle},
		{"Monthly deposit", cli.FormatMoney(o.Input.MonthlyContribution, currency), valueStyle},
		{"Horizon", fmt.Sprintf("%d years", o.Input.HorizonYears), valueStyle},
		{"Future value", cli.FormatMoney(o.Result.FutureValue, currency), valueStyle},
		{"Contributed", cli.FormatMoney(o.Result.TotalContributions, currency), valueStyle},
		{"Net gain", cli.FormatMoney(o.Result.NetGain, currency), gain},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", r.label)),
			r.style.Render(r.value))
	}
	return b.String()
}
