package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	account string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove transactions by id" }
func (*rmCmd) Usage() string {
	return `mk rm [-account <name>] <id>...

  Removes the transactions with the given ids from the account.
  Unknown ids are reported but do not abort the removal of the others.

Usage Examples:
# Remove transaction 3 from the active account.
$ mk rm 3

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to remove from (defaults to the active account)")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id expected")
		return subcommands.ExitUsageError
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

	removed := 0
	for _, arg := range f.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid transaction id %q\n", arg)
			return subcommands.ExitUsageError
		}
		if !a.RemoveTransaction(id) {
			fmt.Fprintf(os.Stderr, "Warning: no transaction %d in account %q\n", id, a.Name())
			continue
		}
		removed++
	}

	if err := CloseLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %d transaction(s) from %q.\n", removed, a.Name())
	return subcommands.ExitSuccess
}
