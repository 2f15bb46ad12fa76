package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// mergeAccountCmd holds the flags for the 'merge-account' subcommand.
type mergeAccountCmd struct {
	from string
	into string
}

func (*mergeAccountCmd) Name() string     { return "merge-account" }
func (*mergeAccountCmd) Synopsis() string { return "merge one account into another" }
func (*mergeAccountCmd) Usage() string {
	return `mk merge-account -from <name> -into <name>

  Appends every transaction of the source account to the destination
  and deletes the source. The default account is emptied instead of
  deleted. The merged balance is recalculated, no money is lost.

Usage Examples:
# Fold Vacation back into General.
$ mk merge-account -from Vacation -into General

`
}

func (c *mergeAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account, required")
	f.StringVar(&c.into, "into", "", "Destination account, required")
}

func (c *mergeAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.into == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -into are required")
		return subcommands.ExitUsageError
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := l.MergeAccounts(c.into, c.from); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := CloseLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Merged account %q into %q.\n", c.from, c.into)
	return subcommands.ExitSuccess
}
