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

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	by      string
	top     int
	rates   bool
	account string
	all     bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display income and expense statistics" }
func (*statsCmd) Usage() string {
	return `mk stats [-account <name> | -all] [-by <category|month>] [-top <n>] [-rates]

  Displays a summary of the account (income, expenses, balance). With
  -by, breaks the whole ledger down per category or per month. With
  -top, lists the n largest expenses. With -rates, shows the currency
  rate table instead.

Usage Examples:
# Summary of the active account.
$ mk stats

# Monthly breakdown across all accounts.
$ mk stats -by month

# The five largest expenses.
$ mk stats -top 5

`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "", "Break down by 'category' or 'month'")
	f.IntVar(&c.top, "top", 0, "List the n largest expenses")
	f.BoolVar(&c.rates, "rates", false, "Show the currency rate table")
	f.StringVar(&c.account, "account", "", "Account to summarize (defaults to the active account)")
	f.BoolVar(&c.all, "all", false, "Summarize every account together")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	// Totals are aggregated in the reference currency; scale them into the
	// base currency when a usable rate exists.
	currency := l.BaseCurrency()
	rate, err := l.Rates().Convert(1, moneykeeper.ReferenceCurrency, currency)
	if err != nil {
		currency = moneykeeper.ReferenceCurrency
		rate = 1
	}

	switch {
	case c.rates:
		printMarkdown(renderer.RatesTable(l.Rates()))

	case c.top > 0:
		printMarkdown(renderer.TopExpenses(l.TopExpenses(c.top)))

	case c.by == "category":
		stats := l.Categories()
		for i := range stats {
			stats[i].Income *= rate
			stats[i].Expenses *= rate
			stats[i].Net *= rate
		}
		printMarkdown(renderer.Categories(stats, currency))

	case c.by == "month":
		stats := l.Months()
		for i := range stats {
			stats[i].Income *= rate
			stats[i].Expenses *= rate
			stats[i].Net *= rate
		}
		printMarkdown(renderer.Months(stats, currency))

	case c.by != "":
		fmt.Fprintf(os.Stderr, "Error: unknown breakdown %q, want 'category' or 'month'\n", c.by)
		return subcommands.ExitUsageError

	case c.all:
		printMarkdown(renderer.Summary(scaled(l.TotalSummary(), rate), currency))

	default:
		a, err := resolveAccount(l, c.account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		s, err := l.Summary(a.Name())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.Summary(scaled(s, rate), currency))
	}

	return subcommands.ExitSuccess
}

func scaled(s moneykeeper.Summary, rate float64) moneykeeper.Summary {
	s.Income *= rate
	s.Expenses *= rate
	s.Balance *= rate
	return s
}
