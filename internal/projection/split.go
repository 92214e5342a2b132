package projection

import (
	"payplan/internal/model"

	"github.com/shopspring/decimal"
)

// SplitBudget divides a monthly budget between debt repayment and
// investing. A debt percentage outside [0, 100] is clamped, not rejected.
//
// The investment amount is computed as the complement of the debt amount,
// never independently, so the two always sum exactly to the budget.
func SplitBudget(total decimal.Decimal, debtPercent int) (debtAmount, investAmount decimal.Decimal) {
	debtPercent = model.ClampPercent(debtPercent)

	// Shift(-2) divides by 100 exactly; Div would round.
	debtAmount = total.Mul(decimal.NewFromInt(int64(debtPercent))).Shift(-2)
	return debtAmount, total.Sub(debtAmount)
}

// SplitAllocation applies SplitBudget to an AllocationState.
func SplitAllocation(a model.AllocationState) (debtAmount, investAmount decimal.Decimal) {
	return SplitBudget(a.MonthlyBudget, a.DebtPercent)
}
