package cmd

import (
	"fmt"

	"payplan/internal/cli"
	"payplan/internal/plan"
	"payplan/internal/projection"

	"github.com/spf13/cobra"
)

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	p, err := loadPlan(cfg)
	if err != nil {
		return err
	}
	if p.Empty() {
		fmt.Println("\n  The plan is empty. Add [[debt]] or [[investment]] entries to it.")
		return nil
	}

	currency := cfg.General.Currency
	years := horizonYears(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PAYPLAN SUMMARY"))
	fmt.Println()

	debtOutcomes := projection.ProjectDebts(p.Debts)
	if len(debtOutcomes) > 0 {
		printDebtTable(debtOutcomes, currency)
	}

	investOutcomes := projection.ProjectInvestments(p.Investments)
	if len(investOutcomes) > 0 {
		printInvestmentTable(investOutcomes, currency)
	}

	if alloc, ok := resolveAllocation(p, cfg); ok && alloc.MonthlyBudget.Sign() > 0 {
		debtAmt, investAmt := projection.SplitAllocation(alloc)
		fmt.Printf("  Budget split     %s/month: %s to debt (%s), %s to investing (%s)\n\n",
			cli.FormatMoney(alloc.MonthlyBudget, currency),
			cli.FormatMoney(debtAmt, currency), cli.FormatPercent(alloc.DebtPercent),
			cli.FormatMoney(investAmt, currency), cli.FormatPercent(alloc.InvestPercent()))
	}

	printNetPosition(p, years, currency)

	return nil
}

// printNetPosition shows where the whole plan lands after the horizon:
// projected investment value minus whatever debt is still outstanding.
func printNetPosition(p *plan.Plan, years int, currency string) {
	net := projection.NetPosition(p.Debts, p.Investments, years)

	fmt.Printf("  Net position after %dy\n", net.HorizonYears)
	fmt.Printf("    Investments   %s\n", cli.FormatMoney(net.InvestmentValue, currency))
	fmt.Printf("    Debt left    -%s\n", cli.FormatMoney(net.OutstandingDebt, currency))
	fmt.Printf("    Net           %s\n", cli.FormatMoney(net.Net, currency))
	if net.Skipped > 0 {
		fmt.Println(cli.Warn(fmt.Sprintf("%d record(s) excluded from the net position", net.Skipped)))
	}
	fmt.Println()
}
