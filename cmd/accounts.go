package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneykeeper/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list every account with its balance" }
func (*accountsCmd) Usage() string {
	return `mk accounts

  Lists every account of the ledger with its transaction count and
  balance, marking the active one.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Accounts(l))
	return subcommands.ExitSuccess
}
