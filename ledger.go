package moneykeeper

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
	"sync"
)

// DefaultAccountName names the account guaranteed to exist in every ledger.
const DefaultAccountName = "General"

// Ledger is the registry of accounts. It owns the account map, the active
// account selection, the transaction id sequence and the rate table, and it
// upholds two invariants: at least one account always exists, and the
// active account always refers to a live entry.
//
// Registry operations serialize on the ledger lock; each Account guards
// its own transactions and balance, so accounts handed out by Active or
// Account stay safe to mutate while a rate refresh recomputes balances.
type Ledger struct {
	mu           sync.Mutex
	accounts     map[string]*Account
	active       string
	baseCurrency string
	rates        *Rates
	seq          IDSequence
}

// NewLedger creates a ledger holding the guaranteed default account, with
// an empty rate table and the reference currency as base.
func NewLedger() *Ledger {
	l := &Ledger{
		accounts:     make(map[string]*Account),
		baseCurrency: ReferenceCurrency,
		rates:        NewRates(),
		seq:          NewIDSequence(),
	}
	l.ensureDefaultAccount()
	return l
}

// Rates returns the ledger's currency table.
func (l *Ledger) Rates() *Rates { return l.rates }

// BaseCurrency returns the currency used for displayed totals.
func (l *Ledger) BaseCurrency() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.baseCurrency
}

// SetBaseCurrency switches the display currency. The code must be supported
// by the rate table.
func (l *Ledger) SetBaseCurrency(code string) error {
	if code != ReferenceCurrency && !l.rates.IsSupported(code) {
		return UnknownCurrencyError{Code: code}
	}
	l.mu.Lock()
	l.baseCurrency = code
	l.mu.Unlock()
	return nil
}

// Account returns the account with the given name.
func (l *Ledger) Account(name string) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[name]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", name, ErrNotFound)
	}
	return a, nil
}

// Active returns the currently selected account.
func (l *Ledger) Active() *Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureDefaultAccount()
	return l.accounts[l.active]
}

// Accounts iterates over the accounts in lexical name order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	l.mu.Lock()
	names := slices.Collect(maps.Keys(l.accounts))
	l.mu.Unlock()
	slices.Sort(names)
	return func(yield func(*Account) bool) {
		for _, name := range names {
			l.mu.Lock()
			a, ok := l.accounts[name]
			l.mu.Unlock()
			if !ok {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.accounts)
}

// CreateAccount inserts a new empty account. It fails with ErrDuplicateName
// when the name is already taken.
func (l *Ledger) CreateAccount(name string) (*Account, error) {
	a, err := NewAccount(name)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[name]; ok {
		return nil, fmt.Errorf("account %q: %w", name, ErrDuplicateName)
	}
	l.accounts[name] = a
	return a, nil
}

// SelectAccount makes the named account the active one.
func (l *Ledger) SelectAccount(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[name]; !ok {
		return fmt.Errorf("account %q: %w", name, ErrNotFound)
	}
	l.active = name
	return nil
}

// DeleteAccount removes the named account and its transactions. Deleting
// the last remaining account fails with ErrLastAccount and changes nothing.
// When the active account is deleted, the selection falls back to the
// guaranteed default.
func (l *Ledger) DeleteAccount(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[name]; !ok {
		return fmt.Errorf("account %q: %w", name, ErrNotFound)
	}
	if len(l.accounts) <= 1 {
		return ErrLastAccount
	}
	delete(l.accounts, name)
	if l.active == name {
		l.ensureDefaultAccount()
		l.active = DefaultAccountName
	}
	return nil
}

// RenameAccount moves all transactions of old into a fresh account named
// new. It fails with ErrDuplicateName when new already exists. The old
// entry is removed, except for the guaranteed default account, which is
// preserved empty so that it is never absent.
func (l *Ledger) RenameAccount(old, new string) error {
	dst, err := NewAccount(new)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	src, ok := l.accounts[old]
	if !ok {
		return fmt.Errorf("account %q: %w", old, ErrNotFound)
	}
	if _, ok := l.accounts[new]; ok {
		return fmt.Errorf("account %q: %w", new, ErrDuplicateName)
	}
	if len(l.accounts) <= 1 {
		return ErrLastAccount
	}
	if err := dst.MoveTransactionsFrom(src); err != nil {
		return err
	}
	l.accounts[new] = dst
	if old != DefaultAccountName {
		delete(l.accounts, old)
	}
	if l.active == old {
		l.active = new
	}
	return nil
}

// MergeAccounts appends all of src's transactions into dst and recomputes
// dst's balance. The src entry is deleted afterwards, unless it is the
// guaranteed default account, which stays as a valid empty account.
func (l *Ledger) MergeAccounts(dst, src string) error {
	if dst == src {
		return ValidationError{Field: "account", Reason: "cannot merge an account into itself"}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	to, ok := l.accounts[dst]
	if !ok {
		return fmt.Errorf("account %q: %w", dst, ErrNotFound)
	}
	from, ok := l.accounts[src]
	if !ok {
		return fmt.Errorf("account %q: %w", src, ErrNotFound)
	}
	if err := to.Merge(from, l.rates); err != nil {
		return err
	}
	if src != DefaultAccountName {
		delete(l.accounts, src)
		if l.active == src {
			l.active = dst
		}
	}
	return nil
}

// EnsureDefaultAccount restores the registry invariants: the default
// account exists and the active selection points at a live entry. It is
// idempotent and called after every bulk mutation that could leave the
// registry inconsistent.
func (l *Ledger) EnsureDefaultAccount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureDefaultAccount()
}

// ensureDefaultAccount is EnsureDefaultAccount for callers already holding
// the lock.
func (l *Ledger) ensureDefaultAccount() {
	if _, ok := l.accounts[DefaultAccountName]; !ok {
		a, _ := NewAccount(DefaultAccountName)
		l.accounts[DefaultAccountName] = a
	}
	if _, ok := l.accounts[l.active]; !ok {
		l.active = DefaultAccountName
	}
}

// NewTransaction validates the fields and mints a transaction with the next
// unused id. On failure no id is consumed.
func (l *Ledger) NewTransaction(kind Type, amount float64, currency, category string, day Date, description string) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return NewTransaction(&l.seq, kind, amount, currency, category, day, description)
}

// NextID returns the id the sequence would assign next, without consuming it.
func (l *Ledger) NextID() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seq.next
}

// RecalculateAll recomputes every account balance from scratch through the
// rate table. Accounts whose recomputation fails (unknown currency, empty
// table) keep their running balance; all failures are joined and returned.
func (l *Ledger) RecalculateAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recalculateAll()
}

func (l *Ledger) recalculateAll() error {
	var errs error
	for _, a := range l.accounts {
		if err := a.RecalculateBalance(l.rates); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// RefreshRates asynchronously requests a fresh table from the source.
//
// On success the table is swapped in and persisted to cachePath; on failure
// the last persisted cache is loaded instead, once, with no automatic
// retry. In either branch onDone is called exactly once with the outcome of
// the fetch, after every account balance has been recomputed against
// whatever table ended up in place.
func (l *Ledger) RefreshRates(ctx context.Context, src RateSource, cachePath string, onDone func(bool)) {
	go func() {
		table, err := src.Fetch(ctx)
		ok := err == nil && len(table) > 0
		if ok {
			l.rates.Set(table)
			if err := l.rates.SaveTo(cachePath); err != nil {
				log.Printf("could not persist rates cache: %v", err)
			}
		} else {
			log.Printf("rates refresh failed, falling back to cache: %v", err)
			if err := l.rates.LoadFrom(cachePath); err != nil {
				log.Printf("rates cache fallback failed: %v", err)
			}
		}
		if err := l.RecalculateAll(); err != nil {
			log.Printf("balance recomputation after refresh: %v", err)
		}
		if onDone != nil {
			onDone(ok)
		}
	}()
}
