package cmd

import (
	"errors"
	"fmt"

	"payplan/internal/cli"
	"payplan/internal/projection"

	"github.com/spf13/cobra"
)

func isNeverPaysOff(err error) bool {
	return errors.Is(err, projection.ErrNeverPaysOff)
}

var flagSchedule bool

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Project payoff for every debt in the plan",
	RunE:  runDebts,
}

func init() {
	debtsCmd.Flags().BoolVar(&flagSchedule, "schedule", false, "Show the month-by-month amortization schedule")
	rootCmd.AddCommand(debtsCmd)
}

func runDebts(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	p, err := loadPlan(cfg)
	if err != nil {
		return err
	}
	if len(p.Debts) == 0 {
		fmt.Println("\n  No debts in the plan.")
		return nil
	}

	outcomes := projection.ProjectDebts(p.Debts)

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBT PAYOFF"))
	fmt.Println()
	printDebtTable(outcomes, cfg.General.Currency)

	if flagSchedule {
		for _, o := range outcomes {
			if o.Err != nil {
				continue
			}
			printSchedule(o, cfg.General.Currency)
		}
	}

	return nil
}

// printDebtTable renders one row per debt, with failed records reported
// below the table instead of aborting the rest.
func printDebtTable(outcomes []projection.DebtOutcome, currency string) {
	rows := make([][]string, 0, len(outcomes))
	var failed []projection.DebtOutcome

	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
			continue
		}
		rows = append(rows, []string{
			o.Input.Name,
			cli.FormatMoney(o.Input.Principal, currency),
			cli.FormatRate(o.Input.AnnualRate),
			cli.FormatMoney(o.Input.MinPayment, currency),
			cli.FormatDate(o.Result.PayoffDate),
			cli.FormatMonths(o.Result.MonthsToPayoff),
			cli.FormatMoney(o.Result.TotalInterestPaid, currency),
		})
	}

	if len(rows) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Debt", "Principal", "Rate", "Payment", "Payoff", "Time", "Interest"},
			Rows:    rows,
		}))
	}

	for _, o := range failed {
		fmt.Println(cli.Warn(describeDebtError(o)))
	}
	if len(failed) > 0 {
		fmt.Println()
	}
}

func describeDebtError(o projection.DebtOutcome) string {
	if isNeverPaysOff(o.Err) {
		return fmt.Sprintf("%s can never be paid off at %s/month; raise the payment",
			o.Input.Name, o.Input.MinPayment.StringFixed(2))
	}
	return fmt.Sprintf("%s skipped: %v", o.Input.Name, o.Err)
}

func printSchedule(o projection.DebtOutcome, currency string) {
	entries, err := projection.AmortizationSchedule(o.Input)
	if err != nil {
		fmt.Println(cli.Warn(fmt.Sprintf("%s: %v", o.Input.Name, err)))
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Month),
			e.Date.Format("Jan 2006"),
			cli.FormatMoney(e.Payment, currency),
			cli.FormatMoney(e.Interest, currency),
			cli.FormatMoney(e.Principal, currency),
			cli.FormatMoney(e.Balance, currency),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   o.Input.Name,
		Headers: []string{"#", "Month", "Payment", "Interest", "Principal", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()
}
