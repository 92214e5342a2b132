// Package model defines domain types for payplan debts, investments, and allocation.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtInput describes one debt to be amortized with a fixed monthly payment.
type DebtInput struct {
	Name       string
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal // percent, e.g. 6.5 for 6.5% APR
	StartDate  time.Time
	MinPayment decimal.Decimal
}

// InvestmentInput describes one recurring investment to project forward.
type InvestmentInput struct {
	Name                string
	StartingAmount      decimal.Decimal
	AnnualReturn        decimal.Decimal // percent, e.g. 7 for 7%/year
	MonthlyContribution decimal.Decimal
	HorizonYears        int
}

// DefaultHorizonYears is applied when an investment omits its horizon.
const DefaultHorizonYears = 5

// AllocationState holds the user's current budget split choice.
// The investment share is always the complement of the debt share.
type AllocationState struct {
	MonthlyBudget decimal.Decimal
	DebtPercent   int
}

// InvestPercent returns the investment share of the budget.
func (a AllocationState) InvestPercent() int {
	return 100 - ClampPercent(a.DebtPercent)
}

// ClampPercent clamps a percentage to [0, 100].
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
