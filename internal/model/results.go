package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtResult is the outcome of amortizing one debt to zero.
type DebtResult struct {
	PayoffDate         time.Time
	MonthsToPayoff     int
	TotalPrincipalPaid decimal.Decimal
	TotalInterestPaid  decimal.Decimal
}

// InvestmentResult is the outcome of projecting one investment forward.
type InvestmentResult struct {
	FutureValue        decimal.Decimal
	TotalContributions decimal.Decimal
	NetGain            decimal.Decimal
}

// ScheduleEntry is one month of an amortization schedule.
// Balance is the remaining principal after this month's payment.
type ScheduleEntry struct {
	Month     int // 1-based
	Date      time.Time
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}
