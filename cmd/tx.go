package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneykeeper"
	"github.com/etnz/moneykeeper/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	account  string
	kind     string
	category string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of an account" }
func (*txCmd) Usage() string {
	return `mk tx [-account <name>] [-t <income|expense>] [-c <category>]

  Lists the transactions of the account in recording order, optionally
  filtered by type or category.

Usage Examples:
# All expenses of the active account.
$ mk tx -t expense

# Everything tagged Rent in the Savings account.
$ mk tx -account Savings -c Rent

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to list (defaults to the active account)")
	f.StringVar(&c.kind, "t", "", "Only transactions of this type (income, expense)")
	f.StringVar(&c.category, "c", "", "Only transactions of this category")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := resolveAccount(l, c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var filters []func(moneykeeper.Transaction) bool
	if c.kind != "" {
		kind, err := moneykeeper.ParseType(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, moneykeeper.ByType(kind))
	}
	if c.category != "" {
		filters = append(filters, moneykeeper.ByCategory(c.category))
	}

	var txs []moneykeeper.Transaction
	for _, t := range a.Transactions(filters...) {
		txs = append(txs, t)
	}

	printMarkdown(renderer.Transactions(fmt.Sprintf("Transactions of %s", a.Name()), txs))
	return subcommands.ExitSuccess
}
