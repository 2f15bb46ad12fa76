package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// createAccountCmd holds the flags for the 'create-account' subcommand.
type createAccountCmd struct {
	selectIt bool
}

func (*createAccountCmd) Name() string     { return "create-account" }
func (*createAccountCmd) Synopsis() string { return "create a new empty account" }
func (*createAccountCmd) Usage() string {
	return `mk create-account [-select] <name>

  Creates a new empty account. The name must not collide with an
  existing account.

Usage Examples:
# Create a Savings account and make it active.
$ mk create-account -select Savings

`
}

func (c *createAccountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.selectIt, "select", false, "Make the new account active")
}

func (c *createAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account name expected")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, err := l.CreateAccount(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.selectIt {
		if err := l.SelectAccount(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := CloseLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %q.\n", name)
	return subcommands.ExitSuccess
}
