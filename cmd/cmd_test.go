package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// tempLedger points the package flags at a throwaway ledger for one test.
func tempLedger(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	oldLedger, oldRates := *ledgerFile, *ratesFile
	*ledgerFile = filepath.Join(dir, "moneykeeper.txt")
	*ratesFile = filepath.Join(dir, "rates.json")
	t.Cleanup(func() { *ledgerFile, *ratesFile = oldLedger, oldRates })
}

// run executes a subcommand against fresh flags and arguments.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddThenRemove(t *testing.T) {
	tempLedger(t)

	if got := run(t, &addCmd{}, "-t", "income", "-a", "1500", "-c", "Salary", "-d", "2023-05-15"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}
	if got := run(t, &addCmd{}, "-t", "expense", "-a", "750.50", "-c", "Rent", "-tag", "home"); got != subcommands.ExitSuccess {
		t.Fatalf("add exited %v", got)
	}

	l, err := OpenLedger()
	if err != nil {
		t.Fatal(err)
	}
	a := l.Active()
	if a.Count() != 2 {
		t.Fatalf("ledger holds %d transactions, want 2", a.Count())
	}

	if got := run(t, &rmCmd{}, "1"); got != subcommands.ExitSuccess {
		t.Fatalf("rm exited %v", got)
	}
	l, err = OpenLedger()
	if err != nil {
		t.Fatal(err)
	}
	if l.Active().Count() != 1 {
		t.Errorf("ledger holds %d transactions after rm, want 1", l.Active().Count())
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	tempLedger(t)

	if got := run(t, &addCmd{}, "-t", "transfer", "-a", "10", "-c", "Food"); got != subcommands.ExitUsageError {
		t.Errorf("bad type exited %v, want usage error", got)
	}
	if got := run(t, &addCmd{}, "-t", "expense", "-a", "-10", "-c", "Food"); got != subcommands.ExitFailure {
		t.Errorf("negative amount exited %v, want failure", got)
	}
	if got := run(t, &addCmd{}, "-t", "expense", "-a", "10", "-c", "Food", "-d", "2023-13-01"); got != subcommands.ExitUsageError {
		t.Errorf("bad date exited %v, want usage error", got)
	}
}

func TestAccountLifecycleCommands(t *testing.T) {
	tempLedger(t)

	if got := run(t, &createAccountCmd{}, "-select", "Savings"); got != subcommands.ExitSuccess {
		t.Fatalf("create-account exited %v", got)
	}
	l, err := OpenLedger()
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Active().Name(); got != "Savings" {
		t.Fatalf("active account = %q, want Savings", got)
	}

	if got := run(t, &renameAccountCmd{}, "-from", "Savings", "-to", "Vacation"); got != subcommands.ExitSuccess {
		t.Fatalf("rename-account exited %v", got)
	}
	if got := run(t, &mergeAccountCmd{}, "-from", "Vacation", "-into", "General"); got != subcommands.ExitSuccess {
		t.Fatalf("merge-account exited %v", got)
	}

	l, err = OpenLedger()
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 1 {
		t.Errorf("ledger holds %d accounts, want only the default", l.Len())
	}

	// The sole remaining account is protected.
	if got := run(t, &deleteAccountCmd{}, "General"); got != subcommands.ExitFailure {
		t.Errorf("delete of the last account exited %v, want failure", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	c := loadConfig()
	if c.LedgerFile == "" || c.RatesFile == "" {
		t.Errorf("config without defaults: %+v", c)
	}
	if c.QuotationURL == "" {
		t.Error("quotation URL default missing")
	}
	if c.FetchTimeout <= 0 {
		t.Errorf("fetch timeout = %v, want positive", c.FetchTimeout)
	}
}
