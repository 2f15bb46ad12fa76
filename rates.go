package moneykeeper

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// ReferenceCurrency is the currency every rate in the table is expressed
// against. Its own rate is pinned to 1.0.
const ReferenceCurrency = "RUB"

// Rates maps currency codes to their exchange rate relative to the
// reference currency.
//
// The table is replaceable only as a whole: Set swaps it atomically under a
// single lock, so a concurrent reader never observes a partially replaced
// table. It is never mutated key by key from the conversion path.
type Rates struct {
	mu    sync.Mutex
	table map[string]float64
}

// NewRates returns an empty rate table.
func NewRates() *Rates {
	return &Rates{table: make(map[string]float64)}
}

// Convert returns amount expressed in the "to" currency.
//
// When from == to the amount is returned unchanged without consulting the
// table, even if the table is empty. Otherwise it fails with
// ErrRatesUnavailable on an empty table and with UnknownCurrencyError when
// either code is absent; it never silently substitutes a default rate.
func (r *Rates) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.table) == 0 {
		return 0, ErrRatesUnavailable
	}
	fromRate, ok := r.table[from]
	if !ok {
		return 0, UnknownCurrencyError{Code: from}
	}
	toRate, ok := r.table[to]
	if !ok {
		return 0, UnknownCurrencyError{Code: to}
	}
	return amount * fromRate / toRate, nil
}

// IsSupported reports whether the table holds a rate for the code.
func (r *Rates) IsSupported(code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.table[code]
	return ok
}

// Rate returns the rate for a code and whether it is present.
func (r *Rates) Rate(code string) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rate, ok := r.table[code]
	return rate, ok
}

// Len returns the number of currencies in the table.
func (r *Rates) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.table)
}

// Set replaces the whole table atomically. The reference currency is pinned
// at 1.0 in any non-empty table.
func (r *Rates) Set(table map[string]float64) {
	next := maps.Clone(table)
	if next == nil {
		next = make(map[string]float64)
	}
	if len(next) > 0 {
		next[ReferenceCurrency] = 1.0
	}
	r.mu.Lock()
	r.table = next
	r.mu.Unlock()
}

// Codes iterates over the supported currency codes in lexical order.
func (r *Rates) Codes() iter.Seq[string] {
	r.mu.Lock()
	codes := slices.Collect(maps.Keys(r.table))
	r.mu.Unlock()
	slices.Sort(codes)
	return func(yield func(string) bool) {
		for _, code := range codes {
			if !yield(code) {
				return
			}
		}
	}
}

// SaveTo persists the table to path as a flat {code: rate} JSON object. The
// file is written atomically through a temporary file and a rename.
func (r *Rates) SaveTo(path string) error {
	r.mu.Lock()
	data, err := json.MarshalIndent(r.table, "", "  ")
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("could not encode rates: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for rates file %q: %w", path, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("could not write rates file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace rates file %q: %w", path, err)
	}
	return nil
}

// LoadFrom replaces the table with the content of a previously saved rates
// file. On a missing or unparseable file it returns an error and leaves the
// table untouched.
func (r *Rates) LoadFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read rates file %q: %w", path, err)
	}
	var table map[string]float64
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("could not decode rates file %q: %w", path, err)
	}
	r.Set(table)
	return nil
}
