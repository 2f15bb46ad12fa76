package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type selectAccountCmd struct{}

func (*selectAccountCmd) Name() string     { return "select-account" }
func (*selectAccountCmd) Synopsis() string { return "make an account the active one" }
func (*selectAccountCmd) Usage() string {
	return `mk select-account <name>

  Makes the named account active. Transaction commands work on the
  active account by default.
`
}

func (c *selectAccountCmd) SetFlags(f *flag.FlagSet) {}

func (c *selectAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := l.SelectAccount(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := CloseLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Selected account %q.\n", name)
	return subcommands.ExitSuccess
}
