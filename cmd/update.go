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

type updateCmd struct{}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "refresh the currency rate table from the quotation feed"
}
func (*updateCmd) Usage() string {
	return `mk update

  Fetches the daily quotation feed, replaces the rate table and writes
  it to the local cache file. On fetch failure the cached table is used
  instead. Account balances are recalculated with whatever table ends
  up in place.
`
}
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	src := moneykeeper.NewCBR(cfg.QuotationURL, cfg.FetchTimeout)
	done := make(chan bool, 1)
	l.RefreshRates(ctx, src, *ratesFile, func(ok bool) { done <- ok })
	ok := <-done

	if err := CloseLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ok {
		fmt.Fprintln(os.Stderr, "Warning: fetch failed, falling back to the cached rate table.")
	}
	printMarkdown(renderer.RatesTable(l.Rates()))
	return subcommands.ExitSuccess
}
