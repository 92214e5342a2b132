// Package projection implements the pure calculation core of payplan:
// debt amortization, investment growth, and budget allocation. All money
// arithmetic uses decimal values; rounding to cents is left to callers.
package projection

import (
	"errors"
	"fmt"

	"payplan/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput marks a record whose parameters violate a precondition.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNeverPaysOff marks a debt whose minimum payment does not cover the
	// monthly interest, so the balance can never reach zero.
	ErrNeverPaysOff = errors.New("payment never reduces the balance to zero")
)

// MaxPayoffMonths caps the amortization loop at 100 years. A simulation
// that runs past it is reported as ErrNeverPaysOff instead of spinning.
const MaxPayoffMonths = 1200

var twelveHundred = decimal.NewFromInt(1200)

// Amortize simulates month-by-month paydown of a debt at its fixed minimum
// payment and returns the payoff date and principal/interest totals.
//
// On ErrInvalidInput the result carries zero totals and PayoffDate equal to
// the start date.
func Amortize(in model.DebtInput) (model.DebtResult, error) {
	empty := model.DebtResult{PayoffDate: in.StartDate}

	entries, err := AmortizationSchedule(in)
	if err != nil {
		return empty, err
	}

	res := model.DebtResult{
		MonthsToPayoff: len(entries),
		PayoffDate:     in.StartDate.AddDate(0, len(entries), 0),
	}
	for _, e := range entries {
		res.TotalPrincipalPaid = res.TotalPrincipalPaid.Add(e.Principal)
		res.TotalInterestPaid = res.TotalInterestPaid.Add(e.Interest)
	}
	return res, nil
}

// AmortizationSchedule returns the full month-by-month paydown of a debt.
// Interest accrues on the opening balance each month; the payment covers
// interest first, the remainder reduces principal. The final payment is
// clamped to the remaining balance, so the principal column sums exactly
// to the original principal.
func AmortizationSchedule(in model.DebtInput) ([]model.ScheduleEntry, error) {
	if err := validateDebt(in); err != nil {
		return nil, err
	}

	monthlyRate := in.AnnualRate.Div(twelveHundred)
	balance := in.Principal

	var entries []model.ScheduleEntry
	for balance.IsPositive() {
		interest := balance.Mul(monthlyRate)
		principal := in.MinPayment.Sub(interest)

		// Payment swallowed by interest: the balance will never shrink.
		// Fail fast instead of looping forever.
		if !principal.IsPositive() {
			return nil, fmt.Errorf("month %d: payment %s does not exceed interest %s: %w",
				len(entries)+1, in.MinPayment, interest, ErrNeverPaysOff)
		}

		payment := in.MinPayment
		if principal.GreaterThan(balance) {
			principal = balance
			payment = principal.Add(interest)
		}
		balance = balance.Sub(principal)

		entries = append(entries, model.ScheduleEntry{
			Month:     len(entries) + 1,
			Date:      in.StartDate.AddDate(0, len(entries)+1, 0),
			Payment:   payment,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})

		if len(entries) > MaxPayoffMonths {
			return nil, fmt.Errorf("payoff exceeds %d months: %w", MaxPayoffMonths, ErrNeverPaysOff)
		}
	}

	return entries, nil
}

// BalanceAfter returns the remaining balance of a debt after the given
// number of months. A debt that pays off sooner reports zero.
func BalanceAfter(in model.DebtInput, months int) (decimal.Decimal, error) {
	entries, err := AmortizationSchedule(in)
	if err != nil {
		return decimal.Zero, err
	}
	if months <= 0 {
		return in.Principal, nil
	}
	if months >= len(entries) {
		return decimal.Zero, nil
	}
	return entries[months-1].Balance, nil
}

func validateDebt(in model.DebtInput) error {
	if !in.Principal.IsPositive() {
		return fmt.Errorf("principal %s must be positive: %w", in.Principal, ErrInvalidInput)
	}
	if in.AnnualRate.IsNegative() {
		return fmt.Errorf("annual rate %s must not be negative: %w", in.AnnualRate, ErrInvalidInput)
	}
	if !in.MinPayment.IsPositive() {
		return fmt.Errorf("minimum payment %s must be positive: %w", in.MinPayment, ErrInvalidInput)
	}
	return nil
}
