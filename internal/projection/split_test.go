package projection

import (
	"testing"

	"payplan/internal/model"
)

func TestSplitBudget_ExactSumForEveryPercent(t *testing.T) {
	// 1234.57 has no clean split at most percentages; the complement rule
	// must still make the two halves sum back exactly.
	total := dec("1234.57")

	for pct := 0; pct <= 100; pct++ {
		debtAmt, investAmt := SplitBudget(total, pct)
		if !debtAmt.Add(investAmt).Equal(total) {
			t.Fatalf("percent %d: %s + %s != %s", pct, debtAmt, investAmt, total)
		}
		if debtAmt.IsNegative() || investAmt.IsNegative() {
			t.Fatalf("percent %d: negative share (%s, %s)", pct, debtAmt, investAmt)
		}
	}
}

func TestSplitBudget_KnownShares(t *testing.T) {
	debtAmt, investAmt := SplitBudget(dec("1500"), 60)
	if got := debtAmt.StringFixed(2); got != "900.00" {
		t.Errorf("debt share = %s, want 900.00", got)
	}
	if got := investAmt.StringFixed(2); got != "600.00" {
		t.Errorf("invest share = %s, want 600.00", got)
	}
}

func TestSplitBudget_ClampsOutOfRangePercent(t *testing.T) {
	total := dec("1000")

	overDebt, overInvest := SplitBudget(total, 150)
	allDebt, noInvest := SplitBudget(total, 100)
	if !overDebt.Equal(allDebt) || !overInvest.Equal(noInvest) {
		t.Errorf("split(1000, 150) = (%s, %s), want same as split(1000, 100) = (%s, %s)",
			overDebt, overInvest, allDebt, noInvest)
	}

	underDebt, underInvest := SplitBudget(total, -10)
	if !underDebt.IsZero() {
		t.Errorf("split(1000, -10) debt share = %s, want 0", underDebt)
	}
	if !underInvest.Equal(total) {
		t.Errorf("split(1000, -10) invest share = %s, want %s", underInvest, total)
	}
}

func TestSplitAllocation_MatchesSplitBudget(t *testing.T) {
	state := model.AllocationState{MonthlyBudget: dec("875.25"), DebtPercent: 37}

	gotDebt, gotInvest := SplitAllocation(state)
	wantDebt, wantInvest := SplitBudget(state.MonthlyBudget, state.DebtPercent)
	if !gotDebt.Equal(wantDebt) || !gotInvest.Equal(wantInvest) {
		t.Errorf("SplitAllocation = (%s, %s), want (%s, %s)", gotDebt, gotInvest, wantDebt, wantInvest)
	}

	if got := state.InvestPercent(); got != 63 {
		t.Errorf("InvestPercent = %d, want 63", got)
	}
}
