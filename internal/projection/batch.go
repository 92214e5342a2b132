package projection

import (
	"payplan/internal/model"

	"github.com/shopspring/decimal"
)

// DebtOutcome pairs one debt input with its projection result or error.
type DebtOutcome struct {
	Input  model.DebtInput
	Result model.DebtResult
	Err    error
}

// InvestmentOutcome pairs one investment input with its result or error.
type InvestmentOutcome struct {
	Input  model.InvestmentInput
	Result model.InvestmentResult
	Err    error
}

// ProjectDebts amortizes each debt independently, preserving input order.
// A failing record carries its error in the outcome and never blocks the
// other records.
func ProjectDebts(inputs []model.DebtInput) []DebtOutcome {
	outcomes := make([]DebtOutcome, len(inputs))
	for i, in := range inputs {
		res, err := Amortize(in)
		outcomes[i] = DebtOutcome{Input: in, Result: res, Err: err}
	}
	return outcomes
}

// ProjectInvestments projects each investment independently, preserving
// input order, with per-record error isolation like ProjectDebts.
func ProjectInvestments(inputs []model.InvestmentInput) []InvestmentOutcome {
	outcomes := make([]InvestmentOutcome, len(inputs))
	for i, in := range inputs {
		res, err := Grow(in)
		outcomes[i] = InvestmentOutcome{Input: in, Result: res, Err: err}
	}
	return outcomes
}

// NetPositionResult summarizes where debts and investments leave the user
// after a common horizon.
type NetPositionResult struct {
	HorizonYears    int
	InvestmentValue decimal.Decimal // sum of investment future values
	OutstandingDebt decimal.Decimal // sum of remaining debt balances
	Net             decimal.Decimal
	Skipped         int // records excluded because their inputs were invalid
}

// NetPosition computes the combined position at the horizon: every
// investment's future value minus every debt's remaining balance, all
// projected over the same number of years. Records that fail validation
// are skipped and counted rather than aborting the summary.
func NetPosition(debts []model.DebtInput, investments []model.InvestmentInput, horizonYears int) NetPositionResult {
	res := NetPositionResult{HorizonYears: horizonYears}
	months := horizonYears * 12

	for _, d := range debts {
		balance, err := BalanceAfter(d, months)
		if err != nil {
			res.Skipped++
			continue
		}
		res.OutstandingDebt = res.OutstandingDebt.Add(balance)
	}

	for _, in := range investments {
		r, err := GrowOver(in, horizonYears)
		if err != nil {
			res.Skipped++
			continue
		}
		res.InvestmentValue = res.InvestmentValue.Add(r.FutureValue)
	}

	res.Net = res.InvestmentValue.Sub(res.OutstandingDebt)
	return res
}
