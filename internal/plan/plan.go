// Package plan loads the TOML plan file that describes the user's debts,
// investments, and budget allocation. The file is read fresh on every run;
// payplan never writes plan state back.
package plan

import (
	"fmt"
	"os"
	"time"

	"payplan/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// MaxRecords caps each sequence at ten entries.
const MaxRecords = 10

const dateLayout = "2006-01-02"

// Plan holds everything a projection run needs.
type Plan struct {
	Debts       []model.DebtInput
	Investments []model.InvestmentInput

	// Allocation is the plan file's split choice, if it had one.
	Allocation    model.AllocationState
	HasAllocation bool
}

// Empty reports whether the plan has no records at all.
func (p *Plan) Empty() bool {
	return len(p.Debts) == 0 && len(p.Investments) == 0
}

type planFile struct {
	Debt       []debtEntry       `toml:"debt"`
	Investment []investmentEntry `toml:"investment"`
	Allocation *allocationEntry  `toml:"allocation"`
}

type debtEntry struct {
	Name       string  `toml:"name"`
	Principal  float64 `toml:"principal"`
	AnnualRate float64 `toml:"annual_rate"`
	StartDate  string  `toml:"start_date"`
	MinPayment float64 `toml:"min_payment"`
}

type investmentEntry struct {
	Name                string  `toml:"name"`
	StartingAmount      float64 `toml:"starting_amount"`
	AnnualReturn        float64 `toml:"annual_return"`
	MonthlyContribution float64 `toml:"monthly_contribution"`
	HorizonYears        int     `toml:"horizon_years"`
}

type allocationEntry struct {
	MonthlyBudget float64 `toml:"monthly_budget"`
	DebtPercent   int     `toml:"debt_percent"`
}

// Load reads and decodes a plan file. Structural problems (unreadable
// file, bad date, more than MaxRecords entries) fail the whole load;
// per-record value problems are left for the projection layer so one bad
// record cannot hide the others.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	var raw planFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}

	if len(raw.Debt) > MaxRecords {
		return nil, fmt.Errorf("plan has %d debts, the maximum is %d", len(raw.Debt), MaxRecords)
	}
	if len(raw.Investment) > MaxRecords {
		return nil, fmt.Errorf("plan has %d investments, the maximum is %d", len(raw.Investment), MaxRecords)
	}

	p := &Plan{}

	for i, d := range raw.Debt {
		start, err := parseStartDate(d.StartDate)
		if err != nil {
			return nil, fmt.Errorf("debt %d: %w", i+1, err)
		}
		p.Debts = append(p.Debts, model.DebtInput{
			Name:       defaultName(d.Name, "Debt", i),
			Principal:  decimal.NewFromFloat(d.Principal),
			AnnualRate: decimal.NewFromFloat(d.AnnualRate),
			StartDate:  start,
			MinPayment: decimal.NewFromFloat(d.MinPayment),
		})
	}

	for i, inv := range raw.Investment {
		horizon := inv.HorizonYears
		if horizon == 0 {
			horizon = model.DefaultHorizonYears
		}
		p.Investments = append(p.Investments, model.InvestmentInput{
			Name:                defaultName(inv.Name, "Investment", i),
			StartingAmount:      decimal.NewFromFloat(inv.StartingAmount),
			AnnualReturn:        decimal.NewFromFloat(inv.AnnualReturn),
			MonthlyContribution: decimal.NewFromFloat(inv.MonthlyContribution),
			HorizonYears:        horizon,
		})
	}

	if raw.Allocation != nil {
		p.Allocation = model.AllocationState{
			MonthlyBudget: decimal.NewFromFloat(raw.Allocation.MonthlyBudget),
			DebtPercent:   raw.Allocation.DebtPercent,
		}
		p.HasAllocation = true
	}

	return p, nil
}

// parseStartDate parses a YYYY-MM-DD date, defaulting to today when the
// field is omitted (payments that start now).
func parseStartDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("start_date %q is not YYYY-MM-DD", s)
	}
	return d, nil
}

func defaultName(name, kind string, idx int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s %d", kind, idx+1)
}
