package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type selectCurrencyCmd struct{}

func (*selectCurrencyCmd) Name() string     { return "select-currency" }
func (*selectCurrencyCmd) Synopsis() string { return "set the base currency for balances" }
func (*selectCurrencyCmd) Usage() string {
	return `mk select-currency <code>

  Sets the base currency used for balance reporting. The code must be
  present in the rate table; run 'mk update' first to populate it.
  The choice is kept for the session through the MK_BASE_CURRENCY
  environment variable.
`
}

func (c *selectCurrencyCmd) SetFlags(f *flag.FlagSet) {}

func (c *selectCurrencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one currency code expected")
		return subcommands.ExitUsageError
	}
	code := f.Arg(0)

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := l.SetBaseCurrency(code); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Base currency is now %q. Export MK_BASE_CURRENCY=%s to make it permanent.\n", code, code)
	return subcommands.ExitSuccess
}
