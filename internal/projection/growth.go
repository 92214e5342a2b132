package projection

import (
	"fmt"

	"payplan/internal/model"

	"github.com/shopspring/decimal"
)

// MaxHorizonYears caps investment projections at 100 years.
const MaxHorizonYears = 100

var one = decimal.NewFromInt(1)

// Grow projects an investment forward month by month. Each month the
// balance compounds at the monthly rate first, then the contribution is
// added; this ordering changes the final value and must not be swapped.
//
// A negative return rate is allowed and simply shrinks the value.
func Grow(in model.InvestmentInput) (model.InvestmentResult, error) {
	if err := validateInvestment(in); err != nil {
		return model.InvestmentResult{}, err
	}

	months := in.HorizonYears * 12
	factor := one.Add(in.AnnualReturn.Div(twelveHundred))

	value := in.StartingAmount
	for i := 0; i < months; i++ {
		value = value.Mul(factor).Add(in.MonthlyContribution)
	}

	contributions := in.StartingAmount.Add(
		in.MonthlyContribution.Mul(decimal.NewFromInt(int64(months))))

	return model.InvestmentResult{
		FutureValue:        value,
		TotalContributions: contributions,
		NetGain:            value.Sub(contributions),
	}, nil
}

// GrowOver projects an investment with its horizon overridden, leaving the
// input's own horizon untouched. Used for net position summaries where all
// records share one horizon.
func GrowOver(in model.InvestmentInput, horizonYears int) (model.InvestmentResult, error) {
	in.HorizonYears = horizonYears
	return Grow(in)
}

func validateInvestment(in model.InvestmentInput) error {
	if in.HorizonYears <= 0 {
		return fmt.Errorf("horizon %d years must be positive: %w", in.HorizonYears, ErrInvalidInput)
	}
	if in.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("horizon %d years exceeds the maximum of %d: %w",
			in.HorizonYears, MaxHorizonYears, ErrInvalidInput)
	}
	if in.StartingAmount.IsNegative() {
		return fmt.Errorf("starting amount %s must not be negative: %w", in.StartingAmount, ErrInvalidInput)
	}
	if in.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution %s must not be negative: %w",
			in.MonthlyContribution, ErrInvalidInput)
	}
	return nil
}
