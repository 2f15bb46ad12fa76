package moneykeeper

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LoadLedger reads a ledger from the flat file at path.
//
// A missing file is not an error: it returns a fresh ledger holding only
// the default account. ratesPath may name a previously persisted rates
// cache; when it loads, every account balance is recomputed through it.
func LoadLedger(path, ratesPath string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("ledger file %q does not exist, starting with an empty ledger", path)
		l := NewLedger()
		loadRatesCache(l, ratesPath)
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	loadRatesCache(l, ratesPath)
	if err := l.RecalculateAll(); err != nil {
		// Conversions without a usable rate keep their running totals.
		log.Printf("balance recomputation after load: %v", err)
	}
	return l, nil
}

func loadRatesCache(l *Ledger, ratesPath string) {
	if ratesPath == "" {
		return
	}
	if err := l.Rates().LoadFrom(ratesPath); err != nil {
		log.Printf("no usable rates cache: %v", err)
	}
}

// SaveLedger writes the ledger to the flat file at path, creating parent
// directories as needed.
func SaveLedger(path string, l *Ledger) error {
	l.EnsureDefaultAccount()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeLedger(f, l)
}
