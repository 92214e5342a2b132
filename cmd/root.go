// Package cmd implements the payplan CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"payplan/internal/config"
	"payplan/internal/model"
	"payplan/internal/plan"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagPlanFile string
	flagYears    int
)

var rootCmd = &cobra.Command{
	Use:   "payplan",
	Short: "Debt vs. investment planner",
	Long:  "Project debt payoff and investment growth, and split a monthly budget between the two.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlanFile, "file", "f", "", "Plan file with debts and investments (default payplan.toml)")
	rootCmd.PersistentFlags().IntVarP(&flagYears, "years", "y", 0, "Horizon in years for net position (default from config)")
}

// loadConfigOrDefault loads config, warning and falling back on error so
// a corrupted config file never blocks a projection run.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config problem: %v (using defaults)\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// planPath resolves the plan file location: flag, then config, then the
// working directory default.
func planPath(cfg config.Config) string {
	if flagPlanFile != "" {
		return flagPlanFile
	}
	if cfg.General.PlanFile != "" {
		return cfg.General.PlanFile
	}
	return "payplan.toml"
}

// loadPlan is the shared load path used by all projection commands.
func loadPlan(cfg config.Config) (*plan.Plan, error) {
	path := planPath(cfg)
	p, err := plan.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no plan file at %s (create one or pass --file)", path)
		}
		return nil, err
	}
	return p, nil
}

// loadPlanOrEmpty is like loadPlan, but treats a missing plan file as an
// empty plan. Used by commands that can run without one (split with flags,
// the TUI starting from scratch).
func loadPlanOrEmpty(cfg config.Config) (*plan.Plan, error) {
	p, err := plan.Load(planPath(cfg))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &plan.Plan{}, nil
		}
		return nil, err
	}
	return p, nil
}

// horizonYears resolves the summary horizon: flag, then config default.
func horizonYears(cfg config.Config) int {
	if flagYears > 0 {
		return flagYears
	}
	return cfg.General.DefaultHorizonYears
}

// resolveAllocation picks the budget split: plan file first, then config
// fallbacks. Reports false when no budget is known from either source.
func resolveAllocation(p *plan.Plan, cfg config.Config) (model.AllocationState, bool) {
	if p != nil && p.HasAllocation {
		return p.Allocation, true
	}
	if cfg.Allocation.MonthlyBudget == nil {
		return model.AllocationState{}, false
	}

	state := model.AllocationState{
		MonthlyBudget: decimal.NewFromFloat(*cfg.Allocation.MonthlyBudget),
		DebtPercent:   50,
	}
	if cfg.Allocation.DebtPercent != nil {
		state.DebtPercent = *cfg.Allocation.DebtPercent
	}
	return state, true
}
