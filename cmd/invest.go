package cmd

import (
	"fmt"

	"payplan/internal/cli"
	"payplan/internal/projection"

	"github.com/spf13/cobra"
)

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Project growth for every investment in the plan",
	RunE:  runInvest,
}

func init() {
	rootCmd.AddCommand(investCmd)
}

func runInvest(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	p, err := loadPlan(cfg)
	if err != nil {
		return err
	}
	if len(p.Investments) == 0 {
		fmt.Println("\n  No investments in the plan.")
		return nil
	}

	outcomes := projection.ProjectInvestments(p.Investments)

	fmt.Println()
	fmt.Println(cli.RenderTitle("INVESTMENT GROWTH"))
	fmt.Println()
	printInvestmentTable(outcomes, cfg.General.Currency)

	return nil
}

func printInvestmentTable(outcomes []projection.InvestmentOutcome, currency string) {
	rows := make([][]string, 0, len(outcomes))
	var failed []projection.InvestmentOutcome

	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
			continue
		}
		rows = append(rows, []string{
			o.Input.Name,
			cli.FormatMoney(o.Input.StartingAmount, currency),
			cli.FormatRate(o.Input.AnnualReturn),
			cli.FormatMoney(o.Input.MonthlyContribution, currency),
			fmt.Sprintf("%dy", o.Input.HorizonYears),
			cli.FormatMoney(o.Result.FutureValue, currency),
			cli.FormatMoney(o.Result.NetGain, currency),
		})
	}

	if len(rows) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Investment", "Start", "Return", "Monthly", "Horizon", "Future Value", "Net Gain"},
			Rows:    rows,
		}))
	}

	for _, o := range failed {
		fmt.Println(cli.Warn(fmt.Sprintf("%s skipped: %v", o.Input.Name, o.Err)))
	}
	if len(failed) > 0 {
		fmt.Println()
	}
}
