package projection

import (
	"errors"
	"testing"

	"payplan/internal/model"
)

func investment(start, rate, contribution string, years int) model.InvestmentInput {
	return model.InvestmentInput{
		Name:                "test investment",
		StartingAmount:      dec(start),
		AnnualReturn:        dec(rate),
		MonthlyContribution: dec(contribution),
		HorizonYears:        years,
	}
}

func TestGrow_GoldenValues(t *testing.T) {
	cases := []struct {
		name          string
		in            model.InvestmentInput
		wantFV        string // rounded to cents
		wantContribed string
		wantGain      string
	}{
		{
			// 0.5%/month over 60 months, contribution added after compounding.
			name:          "index fund five years",
			in:            investment("1000", "6", "100", 5),
			wantFV:        "8325.85",
			wantContribed: "7000.00",
			wantGain:      "1325.85",
		},
		{
			name:          "lump sum three years",
			in:            investment("500", "12", "0", 3),
			wantFV:        "715.38",
			wantContribed: "500.00",
			wantGain:      "215.38",
		},
		{
			// Negative expected return shrinks the value, it is not an error.
			name:          "losing year",
			in:            investment("1000", "-6", "0", 1),
			wantFV:        "941.62",
			wantContribed: "1000.00",
			wantGain:      "-58.38",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Grow(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := res.FutureValue.StringFixed(2); got != tc.wantFV {
				t.Errorf("FutureValue = %s, want %s", got, tc.wantFV)
			}
			if got := res.TotalContributions.StringFixed(2); got != tc.wantContribed {
				t.Errorf("TotalContributions = %s, want %s", got, tc.wantContribed)
			}
			if got := res.NetGain.StringFixed(2); got != tc.wantGain {
				t.Errorf("NetGain = %s, want %s", got, tc.wantGain)
			}
		})
	}
}

func TestGrow_ContributionOrderingMatters(t *testing.T) {
	// One month at 12% APR (1%/month): 1000 compounds to 1010 before the
	// 100 contribution lands, so the final value is 1110 exactly. If the
	// contribution were added first it would be 1111.
	res, err := Grow(investment("1000", "12", "100", 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recompute the twelve months by hand with compounding first.
	want := dec("1000")
	for i := 0; i < 12; i++ {
		want = want.Mul(dec("1.01")).Add(dec("100"))
	}
	if !res.FutureValue.Equal(want) {
		t.Errorf("FutureValue = %s, want %s", res.FutureValue, want)
	}

	// Contribution-first would end higher; make sure we are below it.
	reversed := dec("1000")
	for i := 0; i < 12; i++ {
		reversed = reversed.Add(dec("100")).Mul(dec("1.01"))
	}
	if !res.FutureValue.LessThan(reversed) {
		t.Errorf("FutureValue = %s, want less than contribution-first value %s", res.FutureValue, reversed)
	}
}

func TestGrow_NoGrowthIdentity(t *testing.T) {
	for _, years := range []int{1, 5, 40} {
		res, err := Grow(investment("2500", "0", "0", years))
		if err != nil {
			t.Fatalf("%d years: unexpected error: %v", years, err)
		}
		if !res.FutureValue.Equal(dec("2500")) {
			t.Errorf("%d years: FutureValue = %s, want 2500", years, res.FutureValue)
		}
		if !res.NetGain.IsZero() {
			t.Errorf("%d years: NetGain = %s, want 0", years, res.NetGain)
		}
	}
}

func TestGrow_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   model.InvestmentInput
	}{
		{"zero horizon", investment("1000", "6", "100", 0)},
		{"negative horizon", investment("1000", "6", "100", -3)},
		{"horizon beyond maximum", investment("1000", "6", "100", MaxHorizonYears + 1)},
		{"negative starting amount", investment("-1", "6", "100", 5)},
		{"negative contribution", investment("1000", "6", "-100", 5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Grow(tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestGrowOver_DoesNotMutateInput(t *testing.T) {
	in := investment("1000", "6", "100", 5)

	over, err := GrowOver(in, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.HorizonYears != 5 {
		t.Errorf("input HorizonYears = %d, want 5", in.HorizonYears)
	}

	base, err := Grow(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !over.FutureValue.GreaterThan(base.FutureValue) {
		t.Errorf("10y value %s not greater than 5y value %s", over.FutureValue, base.FutureValue)
	}
}
