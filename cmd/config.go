package cmd

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/etnz/moneykeeper"
)

// Config holds the environment driven settings. Every value has a
// working default so the tool runs with no configuration at all.
type Config struct {
	LedgerFile   string        `envconfig:"LEDGER_FILE" default:"moneykeeper.txt"`
	RatesFile    string        `envconfig:"RATES_FILE" default:"rates.json"`
	BaseCurrency string        `envconfig:"BASE_CURRENCY" default:""`
	QuotationURL string        `envconfig:"QUOTATION_URL"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`
}

// loadConfig reads an optional .env file then the MK_* environment
// variables. It must run before flag registration so that flags can
// default to the configured values.
func loadConfig() Config {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("mk", &c); err != nil {
		log.Printf("warning, invalid environment configuration: %v", err)
	}
	if c.QuotationURL == "" {
		c.QuotationURL = moneykeeper.DefaultQuotationURL
	}
	return c
}
