package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// renameAccountCmd holds the flags for the 'rename-account' subcommand.
type renameAccountCmd struct {
	from string
	to   string
}

func (*renameAccountCmd) Name() string     { return "rename-account" }
func (*renameAccountCmd) Synopsis() string { return "rename an account, moving its transactions" }
func (*renameAccountCmd) Usage() string {
	return `mk rename-account [-from <name>] -to <name>

  Moves every transaction of the source account into an account with the
  new name. -from defaults to the active account. Renaming the default
  account leaves it behind, empty.

Usage Examples:
# Rename the active account to Vacation.
$ mk rename-account -to Vacation

`
}

func (c *renameAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Account to rename (defaults to the active account)")
	f.StringVar(&c.to, "to", "", "New account name, required")
}

func (c *renameAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -to is required")
		return subcommands.ExitUsageError
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	from := c.from
	if from == "" {
		from = l.Active().Name()
	}
	if err := l.RenameAccount(from, c.to); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := CloseLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Renamed account %q to %q.\n", from, c.to)
	return subcommands.ExitSuccess
}
