package tui

import (
	"testing"
	"time"

	"payplan/internal/config"
	"payplan/internal/model"
	"payplan/internal/plan"

	"github.com/shopspring/decimal"
)

func testPlan() *plan.Plan {
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	return &plan.Plan{
		Debts: []model.DebtInput{
			{
				Name:       "Card",
				Principal:  decimal.NewFromInt(1200),
				AnnualRate: decimal.NewFromInt(12),
				StartDate:  start,
				MinPayment: decimal.NewFromInt(110),
			},
			{
				Name:       "Loan",
				Principal:  decimal.NewFromInt(5000),
				AnnualRate: decimal.NewFromInt(6),
				StartDate:  start,
				MinPayment: decimal.NewFromInt(150),
			},
		},
		Investments: []model.InvestmentInput{
			{
				Name:                "Index fund",
				StartingAmount:      decimal.NewFromInt(1000),
				AnnualReturn:        decimal.NewFromInt(6),
				MonthlyContribution: decimal.NewFromInt(100),
				HorizonYears:        5,
			},
		},
		Allocation: model.AllocationState{
			MonthlyBudget: decimal.NewFromInt(1500),
			DebtPercent:   60,
		},
		HasAllocation: true,
	}
}

func TestNewAppComputesProjections(t *testing.T) {
	a := NewApp(config.DefaultConfig(), testPlan(), 5)

	if len(a.debtOutcomes) != 2 {
		t.Fatalf("debt outcomes = %d, want 2", len(a.debtOutcomes))
	}
	for i, o := range a.debtOutcomes {
		if o.Err != nil {
			t.Fatalf("outcome %d: unexpected error %v", i, o.Err)
		}
	}
	if len(a.investOutcomes) != 1 {
		t.Fatalf("investment outcomes = %d, want 1", len(a.investOutcomes))
	}

	if got := a.debtShare.StringFixed(2); got != "900.00" {
		t.Errorf("debt share = %s, want 900.00", got)
	}
	if got := a.investShare.StringFixed(2); got != "600.00" {
		t.Errorf("invest share = %s, want 600.00", got)
	}
}

func TestAdjustDebtPercentClamps(t *testing.T) {
	a := NewApp(config.DefaultConfig(), testPlan(), 5)

	a.adjustDebtPercent(50)
	if a.alloc.DebtPercent != 100 {
		t.Fatalf("percent = %d, want 100 after over-adjust", a.alloc.DebtPercent)
	}
	if !a.investShare.IsZero() {
		t.Errorf("invest share = %s, want 0 at 100%%", a.investShare)
	}

	a.adjustDebtPercent(-200)
	if a.alloc.DebtPercent != 0 {
		t.Fatalf("percent = %d, want 0 after under-adjust", a.alloc.DebtPercent)
	}
	if !a.debtShare.IsZero() {
		t.Errorf("debt share = %s, want 0 at 0%%", a.debtShare)
	}
	if !a.dirty {
		t.Error("adjusting the split should mark the plan edited")
	}
}

func TestDeleteDebtClampsCursor(t *testing.T) {
	a := NewApp(config.DefaultConfig(), testPlan(), 5)
	a.debtCursor = 1

	a.deleteDebt(1)
	if len(a.debts) != 1 {
		t.Fatalf("debts = %d, want 1", len(a.debts))
	}
	if a.debtCursor != 0 {
		t.Fatalf("cursor = %d, want 0", a.debtCursor)
	}
	if len(a.debtOutcomes) != 1 {
		t.Fatalf("outcomes = %d, want 1 after recompute", len(a.debtOutcomes))
	}

	// Out-of-range delete is a no-op
	a.deleteDebt(5)
	if len(a.debts) != 1 {
		t.Fatalf("debts = %d, want 1 after no-op delete", len(a.debts))
	}
}

func TestEntryCapBlocksForm(t *testing.T) {
	p := testPlan()
	for len(p.Debts) < plan.MaxRecords {
		p.Debts = append(p.Debts, model.DebtInput{
			Name:       "Filler",
			Principal:  decimal.NewFromInt(100),
			AnnualRate: decimal.Zero,
			StartDate:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			MinPayment: decimal.NewFromInt(50),
		})
	}

	a := NewApp(config.DefaultConfig(), p, 5)
	m, _ := a.openEntryForm(tabDebts)
	got, ok := m.(App)
	if !ok {
		t.Fatalf("openEntryForm returned %T, want App", m)
	}
	if got.form != nil {
		t.Fatal("form opened past the record cap")
	}

	// Investments are capped independently
	m, _ = a.openEntryForm(tabInvestments)
	got = m.(App)
	if got.form == nil {
		t.Fatal("investment form should open; that list is not full")
	}
}

func TestApplyFormEntryAppendsNewRecord(t *testing.T) {
	a := NewApp(config.DefaultConfig(), testPlan(), 5)

	m, _ := a.openEntryForm(tabDebts)
	a = m.(App)
	a.formVals.name = "Car loan"
	a.formVals.amount = "8000"
	a.formVals.rate = "4.5"
	a.formVals.monthly = "220"

	a.applyFormEntry()

	if len(a.debts) != 3 {
		t.Fatalf("debts = %d, want 3 after append", len(a.debts))
	}
	d := a.debts[2]
	if d.Name != "Car loan" {
		t.Errorf("name = %q, want Car loan", d.Name)
	}
	if got := d.MinPayment.StringFixed(2); got != "220.00" {
		t.Errorf("payment = %s, want 220.00", got)
	}
	if a.debtCursor != 2 {
		t.Errorf("cursor = %d, want 2", a.debtCursor)
	}
	if !a.dirty {
		t.Error("adding a record should mark the plan edited")
	}
}

func TestEditFormReplacesSelectedRecord(t *testing.T) {
	a := NewApp(config.DefaultConfig(), testPlan(), 5)
	a.debtCursor = 0

	m, _ := a.openEditForm(tabDebts)
	a = m.(App)
	if a.form == nil {
		t.Fatal("edit form did not open")
	}
	if a.formVals.amount != "1200" {
		t.Fatalf("prefilled amount = %q, want 1200", a.formVals.amount)
	}

	a.formVals.monthly = "200"
	a.applyFormEntry()

	if len(a.debts) != 2 {
		t.Fatalf("debts = %d, want 2 after edit", len(a.debts))
	}
	d := a.debts[0]
	if got := d.MinPayment.StringFixed(2); got != "200.00" {
		t.Errorf("payment = %s, want 200.00", got)
	}
	if d.Name != "Card" {
		t.Errorf("name = %q, want Card", d.Name)
	}
	want := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !d.StartDate.Equal(want) {
		t.Errorf("start date = %v, want %v", d.StartDate, want)
	}
	if !a.dirty {
		t.Error("editing a record should mark the plan edited")
	}
}

func TestOpenEditFormPrefillsInvestment(t *testing.T) {
	a := NewApp(config.DefaultConfig(), testPlan(), 5)
	a.activeTab = tabInvestments

	m, _ := a.openEditForm(tabInvestments)
	a = m.(App)
	if a.form == nil {
		t.Fatal("edit form did not open")
	}
	if a.formVals.years != "5" {
		t.Errorf("prefilled years = %q, want 5", a.formVals.years)
	}

	a.formVals.monthly = "250"
	a.applyFormEntry()

	if len(a.investments) != 1 {
		t.Fatalf("investments = %d, want 1 after edit", len(a.investments))
	}
	if got := a.investments[0].MonthlyContribution.StringFixed(2); got != "250.00" {
		t.Errorf("contribution = %s, want 250.00", got)
	}
}
