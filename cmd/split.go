package cmd

import (
	"fmt"

	"payplan/internal/cli"
	"payplan/internal/model"
	"payplan/internal/projection"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagBudget      float64
	flagDebtPercent int
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a monthly budget between debt payments and investing",
	RunE:  runSplit,
}

func init() {
	splitCmd.Flags().Float64VarP(&flagBudget, "budget", "b", 0, "monthly budget to split")
	splitCmd.Flags().IntVarP(&flagDebtPercent, "debt-percent", "p", 0, "percent of the budget sent to debt (0-100)")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	// The flags alone can determine the split, so a missing plan file is
	// fine here; only an unreadable one is an error.
	p, err := loadPlanOrEmpty(cfg)
	if err != nil {
		return err
	}

	alloc, found := resolveAllocation(p, cfg)
	if cmd.Flags().Changed("budget") {
		alloc.MonthlyBudget = decimal.NewFromFloat(flagBudget)
		found = true
	}
	if cmd.Flags().Changed("debt-percent") {
		alloc.DebtPercent = model.ClampPercent(flagDebtPercent)
		found = true
	}
	if !found {
		return fmt.Errorf("no allocation configured: pass --budget, or add an [allocation] section to the plan file")
	}
	if alloc.MonthlyBudget.Sign() <= 0 {
		return fmt.Errorf("monthly budget must be positive, got %s", alloc.MonthlyBudget)
	}

	debtAmt, investAmt := projection.SplitAllocation(alloc)

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET SPLIT"))
	fmt.Println()
	printSplit(alloc, debtAmt, investAmt, cfg.General.Currency)

	return nil
}

func printSplit(alloc model.AllocationState, debtAmt, investAmt decimal.Decimal, currency string) {
	fmt.Printf("  Monthly budget   %s\n\n", cli.FormatMoney(alloc.MonthlyBudget, currency))

	fmt.Printf("  Debt    %s  %s  %s\n",
		cli.FormatPercent(alloc.DebtPercent),
		cli.RenderHorizontalBar(float64(alloc.DebtPercent), 100, 30),
		cli.FormatMoney(debtAmt, currency))
	fmt.Printf("  Invest  %s  %s  %s\n",
		cli.FormatPercent(alloc.InvestPercent()),
		cli.RenderHorizontalBar(float64(alloc.InvestPercent()), 100, 30),
		cli.FormatMoney(investAmt, currency))
	fmt.Println()
}
