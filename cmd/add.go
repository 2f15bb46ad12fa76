package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/moneykeeper"
	"github.com/etnz/moneykeeper/renderer"
	"github.com/google/subcommands"
)

// tagsFlag collects repeated -tag values.
type tagsFlag []string

func (t *tagsFlag) String() string { return strings.Join(*t, ";") }
func (t *tagsFlag) Set(v string) error {
	*t = append(*t, v)
	return nil
}

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	kind        string
	amount      float64
	currency    string
	category    string
	date        string
	description string
	tags        tagsFlag
	account     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `mk add -t <income|expense> -a <amount> -c <category> [-cur <code>] [-d <date>] [-m <text>] [-tag <tag>]...

  Records a transaction in the active account (or the account named
  with -account). The amount must be positive; the transaction type
  says whether it adds to or subtracts from the balance.

Usage Examples:
# Record the May salary.
$ mk add -t income -a 1500 -c Salary -d 2023-05-15

# Record the rent, with tags.
$ mk add -t expense -a 750.50 -c Rent -m "May rent" -tag home -tag monthly

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "expense", "Transaction type (income, expense)")
	f.Float64Var(&c.amount, "a", 0, "Amount, must be positive")
	f.StringVar(&c.currency, "cur", "", "Currency code (defaults to the base currency)")
	f.StringVar(&c.category, "c", "", "Category label, required")
	f.StringVar(&c.date, "d", "", "Date of the transaction, YYYY-MM-DD (defaults to today)")
	f.StringVar(&c.description, "m", "", "Free-form description")
	f.Var(&c.tags, "tag", "Tag to attach, may be repeated (up to 5)")
	f.StringVar(&c.account, "account", "", "Account to record into (defaults to the active account)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := moneykeeper.ParseType(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var day moneykeeper.Date
	if c.date != "" {
		day, err = moneykeeper.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

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

	t, err := l.NewTransaction(kind, c.amount, c.currency, c.category, day, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, tag := range c.tags {
		if err := t.AddTag(tag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: tag %q: %v\n", tag, err)
			return subcommands.ExitFailure
		}
	}
	if err := a.AddTransaction(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := CloseLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transaction(t))
	return subcommands.ExitSuccess
}
