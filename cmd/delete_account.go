package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteAccountCmd struct{}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account and its transactions" }
func (*deleteAccountCmd) Usage() string {
	return `mk delete-account <name>

  Deletes the account and every transaction in it. The last remaining
  account cannot be deleted; if the active account is deleted the
  default account becomes active.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := l.DeleteAccount(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := CloseLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted account %q.\n", name)
	return subcommands.ExitSuccess
}
