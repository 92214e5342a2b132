package config

import "testing"

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.DefaultHorizonYears != 5 {
		t.Errorf("DefaultHorizonYears = %d, want 5", cfg.General.DefaultHorizonYears)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q, want $", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists() = true for missing config")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	budget := 1500.0
	pct := 60
	cfg := DefaultConfig()
	cfg.General.DefaultHorizonYears = 10
	cfg.General.Currency = "€"
	cfg.Allocation.MonthlyBudget = &budget
	cfg.Allocation.DebtPercent = &pct

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DefaultHorizonYears != 10 {
		t.Errorf("DefaultHorizonYears = %d, want 10", loaded.General.DefaultHorizonYears)
	}
	if loaded.General.Currency != "€" {
		t.Errorf("Currency = %q, want €", loaded.General.Currency)
	}
	if loaded.Allocation.MonthlyBudget == nil || *loaded.Allocation.MonthlyBudget != 1500.0 {
		t.Errorf("MonthlyBudget = %v, want 1500", loaded.Allocation.MonthlyBudget)
	}
	if loaded.Allocation.DebtPercent == nil || *loaded.Allocation.DebtPercent != 60 {
		t.Errorf("DebtPercent = %v, want 60", loaded.Allocation.DebtPercent)
	}
}
