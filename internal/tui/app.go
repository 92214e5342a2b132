// Package tui provides the interactive Bubble Tea planner for payplan.
package tui

import (
	"fmt"
	"strings"

	"payplan/internal/config"
	"payplan/internal/model"
	"payplan/internal/plan"
	"payplan/internal/projection"
	"payplan/internal/tui/components"
	"payplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	planName string

	// Working copy of the plan. Edits stay in memory for the session.
	debts       []model.DebtInput
	investments []model.InvestmentInput
	alloc       model.AllocationState
	hasAlloc    bool
	dirty       bool
	horizon     int

	// Projections, recomputed after every edit
	debtOutcomes   []projection.DebtOutcome
	investOutcomes []projection.InvestmentOutcome
	net            projection.NetPositionResult
	debtShare      decimal.Decimal
	investShare    decimal.Decimal

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	debtCursor   int
	investCursor int

	// Entry form (huh), shared between new and edit
	form     *huh.Form
	formVals *entryValues
	formTab  int // tab the form was opened from
	formEdit int // record index being edited, or -1 for a new entry

	// Budget editing on the allocation tab
	editingBudget bool
	budgetInput   textinput.Model
}

const (
	tabDebts = iota
	tabInvestments
	tabAllocation
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the planner model seeded from a loaded plan.
func NewApp(cfg config.Config, p *plan.Plan, horizon int) App {
	a := App{
		cfg:         cfg,
		debts:       p.Debts,
		investments: p.Investments,
		alloc:       p.Allocation,
		hasAlloc:    p.HasAllocation,
		horizon:     horizon,
		formEdit:    -1,
	}

	if !a.hasAlloc && cfg.Allocation.MonthlyBudget != nil {
		a.alloc = model.AllocationState{
			MonthlyBudget: decimal.NewFromFloat(*cfg.Allocation.MonthlyBudget),
			DebtPercent:   50,
		}
		if cfg.Allocation.DebtPercent != nil {
			a.alloc.DebtPercent = model.ClampPercent(*cfg.Allocation.DebtPercent)
		}
		a.hasAlloc = true
	}

	a.recompute()
	return a
}

// SetPlanName sets the plan label shown in the status bar.
func (a *App) SetPlanName(name string) {
	a.planName = name
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// recompute refreshes every projection from the current working copy.
func (a *App) recompute() {
	a.debtOutcomes = projection.ProjectDebts(a.debts)
	a.investOutcomes = projection.ProjectInvestments(a.investments)
	a.net = projection.NetPosition(a.debts, a.investments, a.horizon)

	if a.hasAlloc {
		a.debtShare, a.investShare = projection.SplitAllocation(a.alloc)
	} else {
		a.debtShare = decimal.Zero
		a.investShare = decimal.Zero
	}

	// Clamp cursors to the edited lists
	if a.debtCursor >= len(a.debts) {
		a.debtCursor = len(a.debts) - 1
	}
	if a.debtCursor < 0 {
		a.debtCursor = 0
	}
	if a.investCursor >= len(a.investments) {
		a.investCursor = len(a.investments) - 1
	}
	if a.investCursor < 0 {
		a.investCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil || a.editingBudget {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Entry form intercepts all keys while open
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Budget input intercepts all keys while editing
		if a.editingBudget {
			return a.updateBudgetInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// List navigation on the record tabs
		switch a.activeTab {
		case tabDebts:
			switch key {
			case "j", "down":
				if a.debtCursor < len(a.debts)-1 {
					a.debtCursor++
				}
				return a, nil
			case "k", "up":
				if a.debtCursor > 0 {
					a.debtCursor--
				}
				return a, nil
			case "x":
				a.deleteDebt(a.debtCursor)
				return a, nil
			case "n":
				return a.openEntryForm(tabDebts)
			case "e":
				return a.openEditForm(tabDebts)
			}
		case tabInvestments:
			switch key {
			case "j", "down":
				if a.investCursor < len(a.investments)-1 {
					a.investCursor++
				}
				return a, nil
			case "k", "up":
				if a.investCursor > 0 {
					a.investCursor--
				}
				return a, nil
			case "x":
				a.deleteInvestment(a.investCursor)
				return a, nil
			case "n":
				return a.openEntryForm(tabInvestments)
			case "e":
				return a.openEditForm(tabInvestments)
			}
		case tabAllocation:
			switch key {
			case "h", "left":
				a.adjustDebtPercent(-1)
				return a, nil
			case "l", "right":
				a.adjustDebtPercent(1)
				return a, nil
			case "H":
				a.adjustDebtPercent(-10)
				return a, nil
			case "L":
				a.adjustDebtPercent(10)
				return a, nil
			case "b", "enter":
				return a.startBudgetEdit()
			}
		}

		// Horizon adjustment works on every tab
		switch key {
		case "+", "=":
			if a.horizon < projection.MaxHorizonYears {
				a.horizon++
				a.recompute()
			}
			return a, nil
		case "-":
			if a.horizon > 1 {
				a.horizon--
				a.recompute()
			}
			return a, nil
		}

		// Tab navigation
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		switch key {
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.editingBudget {
		var cmd tea.Cmd
		a.budgetInput, cmd = a.budgetInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) adjustDebtPercent(delta int) {
	if !a.hasAlloc {
		return
	}
	a.alloc.DebtPercent = model.ClampPercent(a.alloc.DebtPercent + delta)
	a.dirty = true
	a.recompute()
}

func (a *App) deleteDebt(idx int) {
	if idx < 0 || idx >= len(a.debts) {
		return
	}
	a.debts = append(a.debts[:idx], a.debts[idx+1:]...)
	a.dirty = true
	a.recompute()
}

func (a *App) deleteInvestment(idx int) {
	if idx < 0 || idx >= len(a.investments) {
		return
	}
	a.investments = append(a.investments[:idx], a.investments[idx+1:]...)
	a.dirty = true
	a.recompute()
}

func (a App) startBudgetEdit() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "1500.00"
	ti.CharLimit = 16
	ti.Width = 20
	if a.hasAlloc && a.alloc.MonthlyBudget.Sign() > 0 {
		ti.SetValue(a.alloc.MonthlyBudget.StringFixed(2))
	}
	ti.Focus()

	a.editingBudget = true
	a.budgetInput = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateBudgetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(a.budgetInput.Value())
		if d, err := decimal.NewFromString(raw); err == nil && d.Sign() > 0 {
			a.alloc.MonthlyBudget = d
			if !a.hasAlloc {
				a.alloc.DebtPercent = 50
				a.hasAlloc = true
			}
			a.dirty = true
			a.recompute()
		}
		a.editingBudget = false
		return a, nil
	case "esc":
		a.editingBudget = false
		return a, nil
	}

	var cmd tea.Cmd
	a.budgetInput, cmd = a.budgetInput.Update(msg)
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  payplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"d i a", "Jump to tab"},
		{"tab", "Next tab"},
		{"j k", "Navigate records"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Editing"))
	b.WriteString("\n")
	editBindings := []struct{ key, desc string }{
		{"n", "New debt / investment"},
		{"e", "Edit selected record"},
		{"x", "Delete selected record"},
		{"h l", "Shift split by 1%"},
		{"H L", "Shift split by 10%"},
		{"b", "Edit monthly budget"},
		{"+ -", "Adjust horizon years"},
	}
	for _, bind := range editBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Edits last for this session only. Press any key to close."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: tab bar + horizon pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	header := components.RenderTabBar(a.activeTab) +
		pillStyle.Render("   horizon ") + pillAccent.Render(fmt.Sprintf("%dy", a.horizon))

	statusBar := components.RenderStatusBar(w, a.planName, a.dirty)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDebts:
		content = a.renderDebtsTab(cw)
	case tabInvestments:
		content = a.renderInvestmentsTab(cw)
	case tabAllocation:
		content = a.renderAllocationTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
