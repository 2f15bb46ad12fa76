package cmd

import (
	"flag"
	"log"

	"github.com/etnz/moneykeeper"
	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&accountsCmd{}, "accounts")
	c.Register(&createAccountCmd{}, "accounts")
	c.Register(&deleteAccountCmd{}, "accounts")
	c.Register(&renameAccountCmd{}, "accounts")
	c.Register(&selectAccountCmd{}, "accounts")
	c.Register(&mergeAccountCmd{}, "accounts")

	c.Register(&statsCmd{}, "reports")

	c.Register(&updateCmd{}, "rates")
	c.Register(&selectCurrencyCmd{}, "rates")

	c.Register(&topicCmd{}, "documentation")
}

var cfg = loadConfig()

var ledgerFile = flag.String("ledger-file", cfg.LedgerFile, "Path to the ledger file")
var ratesFile = flag.String("rates-file", cfg.RatesFile, "Path to the currency rates cache file (JSON)")

// OpenLedger is the central function to open the ledger file.
func OpenLedger() (l *moneykeeper.Ledger, err error) {
	l, err = moneykeeper.LoadLedger(*ledgerFile, *ratesFile)
	if err != nil {
		return nil, err
	}
	if cfg.BaseCurrency != "" {
		if err := l.SetBaseCurrency(cfg.BaseCurrency); err != nil {
			log.Printf("warning, cannot use base currency %q: %v", cfg.BaseCurrency, err)
		}
	}
	return l, nil
}

func CloseLedger(l *moneykeeper.Ledger) error {
	return moneykeeper.SaveLedger(*ledgerFile, l)
}

// resolveAccount returns the account named on the command line, or the
// active account when the flag is left blank.
func resolveAccount(l *moneykeeper.Ledger, name string) (*moneykeeper.Account, error) {
	if name == "" {
		return l.Active(), nil
	}
	return l.Account(name)
}
