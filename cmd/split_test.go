package cmd

import (
	"os"
	"testing"

	"payplan/internal/config"
)

func TestLoadPlanOrEmptyMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := loadPlanOrEmpty(config.DefaultConfig())
	if err != nil {
		t.Fatalf("missing plan file should not be an error, got %v", err)
	}
	if !p.Empty() {
		t.Fatal("missing plan file should load as an empty plan")
	}
}

func TestLoadPlanOrEmptyBadFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := os.WriteFile("payplan.toml", []byte("[[debt\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadPlanOrEmpty(config.DefaultConfig()); err == nil {
		t.Fatal("unparseable plan file should still be an error")
	}
}

func TestRunSplitWithFlagsAndNoPlanFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := splitCmd.Flags().Set("budget", "1000"); err != nil {
		t.Fatal(err)
	}
	if err := splitCmd.Flags().Set("debt-percent", "60"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		flagBudget = 0
		flagDebtPercent = 0
		splitCmd.Flags().Lookup("budget").Changed = false
		splitCmd.Flags().Lookup("debt-percent").Changed = false
	})

	if err := runSplit(splitCmd, nil); err != nil {
		t.Fatalf("split with both flags should not need a plan file, got %v", err)
	}
}

func TestRunSplitWithoutAnySource(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := runSplit(splitCmd, nil); err == nil {
		t.Fatal("split with no flags, plan, or config budget should error")
	}
}
