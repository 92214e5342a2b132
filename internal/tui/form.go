package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"payplan/internal/model"
	"payplan/internal/plan"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// entryValues holds the raw strings bound to the entry form. It is shared
// by pointer so the form's writes survive Bubble Tea's model copying.
type entryValues struct {
	name    string
	amount  string // principal or starting amount
	rate    string // annual percent
	monthly string // minimum payment or contribution
	years   string // investment horizon
}

func validateDecimal(allowZero bool) func(string) error {
	return func(s string) error {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if d.Sign() < 0 || (!allowZero && d.Sign() == 0) {
			return fmt.Errorf("must be positive")
		}
		return nil
	}
}

func validateRate(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}

func validateYears(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a whole number")
	}
	if n < 1 || n > 100 {
		return fmt.Errorf("must be between 1 and 100")
	}
	return nil
}

// openEntryForm opens a blank form for adding a record on the given tab.
func (a App) openEntryForm(tab int) (tea.Model, tea.Cmd) {
	if tab == tabDebts && len(a.debts) >= plan.MaxRecords {
		return a, nil
	}
	if tab == tabInvestments && len(a.investments) >= plan.MaxRecords {
		return a, nil
	}

	a.formVals = &entryValues{}
	a.formEdit = -1
	return a.buildEntryForm(tab, "New debt", "New investment")
}

// openEditForm opens the form pre-filled from the record under the cursor,
// so it replaces that record on completion.
func (a App) openEditForm(tab int) (tea.Model, tea.Cmd) {
	switch tab {
	case tabDebts:
		if a.debtCursor >= len(a.debts) {
			return a, nil
		}
		d := a.debts[a.debtCursor]
		a.formVals = &entryValues{
			name:    d.Name,
			amount:  d.Principal.String(),
			rate:    d.AnnualRate.String(),
			monthly: d.MinPayment.String(),
		}
		a.formEdit = a.debtCursor
	case tabInvestments:
		if a.investCursor >= len(a.investments) {
			return a, nil
		}
		in := a.investments[a.investCursor]
		a.formVals = &entryValues{
			name:    in.Name,
			amount:  in.StartingAmount.String(),
			rate:    in.AnnualReturn.String(),
			monthly: in.MonthlyContribution.String(),
			years:   strconv.Itoa(in.HorizonYears),
		}
		a.formEdit = a.investCursor
	default:
		return a, nil
	}
	return a.buildEntryForm(tab, "Edit debt", "Edit investment")
}

func (a App) buildEntryForm(tab int, debtTitle, investTitle string) (tea.Model, tea.Cmd) {
	a.formTab = tab

	var group *huh.Group
	if tab == tabDebts {
		group = huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder(fmt.Sprintf("Debt %d", len(a.debts)+1)).
				Value(&a.formVals.name),
			huh.NewInput().
				Title("Principal").
				Placeholder("5000").
				Value(&a.formVals.amount).
				Validate(validateDecimal(false)),
			huh.NewInput().
				Title("Annual rate %").
				Placeholder("6.5").
				Value(&a.formVals.rate).
				Validate(validateRate),
			huh.NewInput().
				Title("Monthly payment").
				Placeholder("150").
				Value(&a.formVals.monthly).
				Validate(validateDecimal(false)),
		).Title(debtTitle)
	} else {
		group = huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder(fmt.Sprintf("Investment %d", len(a.investments)+1)).
				Value(&a.formVals.name),
			huh.NewInput().
				Title("Starting amount").
				Placeholder("1000").
				Value(&a.formVals.amount).
				Validate(validateDecimal(true)),
			huh.NewInput().
				Title("Annual return %").
				Placeholder("7").
				Value(&a.formVals.rate).
				Validate(validateRate),
			huh.NewInput().
				Title("Monthly contribution").
				Placeholder("100").
				Value(&a.formVals.monthly).
				Validate(validateDecimal(true)),
			huh.NewInput().
				Title("Horizon years").
				Placeholder(strconv.Itoa(a.horizon)).
				Value(&a.formVals.years).
				Validate(validateYears),
		).Title(investTitle)
	}

	a.form = huh.NewForm(group)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.applyFormEntry()
		a.form = nil
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		return a, nil
	}

	return a, cmd
}

// applyFormEntry converts the validated form strings into a record,
// either appending or replacing the record being edited.
func (a *App) applyFormEntry() {
	if a.formVals == nil {
		return
	}

	mustDec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return decimal.Zero
		}
		return d
	}

	name := strings.TrimSpace(a.formVals.name)

	if a.formTab == tabDebts {
		editing := a.formEdit >= 0 && a.formEdit < len(a.debts)
		if name == "" {
			if editing {
				name = a.debts[a.formEdit].Name
			} else {
				name = fmt.Sprintf("Debt %d", len(a.debts)+1)
			}
		}
		d := model.DebtInput{
			Name:       name,
			Principal:  mustDec(a.formVals.amount),
			AnnualRate: mustDec(a.formVals.rate),
			StartDate:  today(),
			MinPayment: mustDec(a.formVals.monthly),
		}
		if editing {
			// Editing never moves the payment start date
			d.StartDate = a.debts[a.formEdit].StartDate
			a.debts[a.formEdit] = d
			a.debtCursor = a.formEdit
		} else {
			a.debts = append(a.debts, d)
			a.debtCursor = len(a.debts) - 1
		}
	} else {
		editing := a.formEdit >= 0 && a.formEdit < len(a.investments)
		if name == "" {
			if editing {
				name = a.investments[a.formEdit].Name
			} else {
				name = fmt.Sprintf("Investment %d", len(a.investments)+1)
			}
		}
		years, err := strconv.Atoi(strings.TrimSpace(a.formVals.years))
		if err != nil || years < 1 {
			years = a.horizon
		}
		in := model.InvestmentInput{
			Name:                name,
			StartingAmount:      mustDec(a.formVals.amount),
			AnnualReturn:        mustDec(a.formVals.rate),
			MonthlyContribution: mustDec(a.formVals.monthly),
			HorizonYears:        years,
		}
		if editing {
			a.investments[a.formEdit] = in
			a.investCursor = a.formEdit
		} else {
			a.investments = append(a.investments, in)
			a.investCursor = len(a.investments) - 1
		}
	}

	a.dirty = true
	a.recompute()
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
