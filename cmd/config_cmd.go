package cmd

import (
	"fmt"

	"payplan/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default horizon: %dy\n", cfg.General.DefaultHorizonYears)
	fmt.Printf("    Currency:        %s\n", cfg.General.Currency)
	if cfg.General.PlanFile != "" {
		fmt.Printf("    Plan file:       %s\n", cfg.General.PlanFile)
	}
	fmt.Println()

	fmt.Println("  [Allocation]")
	if cfg.Allocation.MonthlyBudget != nil {
		fmt.Printf("    Monthly budget: %s%.2f\n", cfg.General.Currency, *cfg.Allocation.MonthlyBudget)
	} else {
		fmt.Println("    Monthly budget: not set")
	}
	if cfg.Allocation.DebtPercent != nil {
		fmt.Printf("    Debt percent:   %d%%\n", *cfg.Allocation.DebtPercent)
	} else {
		fmt.Println("    Debt percent:   not set (50% assumed)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	return nil
}
