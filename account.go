package moneykeeper

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
	"sync"
)

// BalanceTolerance is the maximum drift allowed between the cached balance
// and a from-scratch recomputation before Validate reports a mismatch.
const BalanceTolerance = 0.01

// Account is an owned, ordered collection of transactions plus a cached
// balance expressed in the reference currency.
//
// The running balance is maintained incrementally from signed amounts,
// which is exact only while every transaction shares one currency.
// RecalculateBalance is the single source of truth and is invoked after
// every bulk mutation: load, merge, and rate refresh.
//
// An Account guards its own state with a mutex, so mutating it is safe
// against the background rate refresh. Cross-account operations (Merge,
// MoveTransactionsFrom) lock both sides; the owning Ledger serializes
// them, which rules out opposing lock orders.
type Account struct {
	mu           sync.Mutex
	name         string
	balance      float64
	transactions []Transaction
	ids          map[int]struct{}
}

// NewAccount creates an empty account. The name must not be blank and must
// not contain the characters the ledger file reserves for section headers.
func NewAccount(name string) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ValidationError{Field: "account name", Reason: "cannot be empty"}
	}
	if strings.ContainsAny(name, "]\n") {
		return nil, ValidationError{Field: "account name", Reason: "cannot contain ']' or a newline"}
	}
	return &Account{name: name, ids: make(map[int]struct{})}, nil
}

// Name returns the account name.
func (a *Account) Name() string { return a.name }

// Balance returns the cached balance.
func (a *Account) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Count returns the number transactions held.
func (a *Account) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.transactions)
}

// AddTransaction appends t to the account history and grows the balance by
// its signed amount. It fails with ErrDuplicateID when a transaction with
// the same id is already held.
func (a *Account) AddTransaction(t Transaction) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.ids[t.id]; ok {
		return fmt.Errorf("transaction %d in account %q: %w", t.id, a.name, ErrDuplicateID)
	}
	a.transactions = append(a.transactions, t)
	a.ids[t.id] = struct{}{}
	a.balance += t.SignedAmount()
	return nil
}

// RemoveTransaction removes the transaction with the given id, decrementing
// the balance by its signed amount. It reports whether a removal occurred
// and is a no-op on an unknown id.
func (a *Account) RemoveTransaction(id int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, t := range a.transactions {
		if t.id == id {
			a.balance -= t.SignedAmount()
			a.transactions = append(a.transactions[:i], a.transactions[i+1:]...)
			delete(a.ids, id)
			return true
		}
	}
	return false
}

// Transaction returns a copy of the transaction with the given id.
func (a *Account) Transaction(id int) (Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, t := range a.transactions {
		if t.id == id {
			return t, nil
		}
	}
	return Transaction{}, fmt.Errorf("transaction %d in account %q: %w", id, a.name, ErrNotFound)
}

// Transactions returns an iterator over the transactions in history order.
// With filters, a transaction is yielded when any filter accepts it. The
// iterator walks a snapshot, so mutating the account mid-iteration is safe.
func (a *Account) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		a.mu.Lock()
		txs := slices.Clone(a.transactions)
		a.mu.Unlock()
		for i, t := range txs {
			if !accepted(t, filters) {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

func accepted(t Transaction, filters []func(Transaction) bool) bool {
	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		if filter(t) {
			return true
		}
	}
	return false
}

// ByType returns a predicate that filters transactions by income or expense.
func ByType(kind Type) func(Transaction) bool {
	return func(t Transaction) bool { return t.kind == kind }
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(category string) func(Transaction) bool {
	return func(t Transaction) bool { return t.category == category }
}

// recomputedBalance sums every transaction converted into the reference
// currency, each respecting its sign. Callers hold a.mu.
func (a *Account) recomputedBalance(r *Rates) (float64, error) {
	var sum float64
	for _, t := range a.transactions {
		amount, err := t.AmountIn(r, ReferenceCurrency)
		if err != nil {
			return 0, fmt.Errorf("account %q transaction %d: %w", a.name, t.id, err)
		}
		if t.kind == Expense {
			amount = -amount
		}
		sum += amount
	}
	return sum, nil
}

// RecalculateBalance recomputes the balance from scratch as the sum of each
// transaction's amount in the reference currency. On a conversion failure
// the cached balance is left as it was.
func (a *Account) RecalculateBalance(r *Rates) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	sum, err := a.recomputedBalance(r)
	if err != nil {
		return err
	}
	a.balance = sum
	return nil
}

// Validate reports whether the cached balance is within BalanceTolerance of
// a from-scratch recomputation. It never mutates the account: drift is only
// corrected through an explicit RecalculateBalance call.
func (a *Account) Validate(r *Rates) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	sum, err := a.recomputedBalance(r)
	if err != nil {
		return false
	}
	return math.Abs(sum-a.balance) < BalanceTolerance
}

// MoveTransactionsFrom appends all of other's transactions to a and grows
// a's balance by other's, leaving other as a valid empty account. It fails
// with ErrDuplicateID before any mutation when the accounts share an id, so
// no transaction already held by a is ever displaced.
func (a *Account) MoveTransactionsFrom(other *Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()
	for _, t := range other.transactions {
		if _, ok := a.ids[t.id]; ok {
			return fmt.Errorf("transaction %d in account %q: %w", t.id, a.name, ErrDuplicateID)
		}
	}
	for _, t := range other.transactions {
		a.transactions = append(a.transactions, t)
		a.ids[t.id] = struct{}{}
	}
	a.balance += other.balance
	other.transactions = nil
	other.ids = make(map[int]struct{})
	other.balance = 0
	return nil
}

// Merge appends all of other's transactions into a and recomputes a's
// balance from scratch. Other ends up empty but remains a valid account;
// the caller decides whether to delete it. When the recomputation has no
// usable rate, the transactions are still merged and the balance keeps the
// incremental running total.
func (a *Account) Merge(other *Account, r *Rates) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()
	// Check for collisions up front so a failed merge mutates nothing.
	for _, t := range other.transactions {
		if _, ok := a.ids[t.id]; ok {
			return fmt.Errorf("transaction %d in account %q: %w", t.id, a.name, ErrDuplicateID)
		}
	}
	for _, t := range other.transactions {
		a.transactions = append(a.transactions, t)
		a.ids[t.id] = struct{}{}
		a.balance += t.SignedAmount()
	}
	other.transactions = nil
	other.ids = make(map[int]struct{})
	other.balance = 0

	sum, err := a.recomputedBalance(r)
	if err != nil {
		return err
	}
	a.balance = sum
	return nil
}

// BalanceIn converts each transaction independently into the given currency
// and sums the results, avoiding the accumulated rounding of a single
// aggregate conversion.
func (a *Account) BalanceIn(r *Rates, currency string) (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var sum float64
	for _, t := range a.transactions {
		amount, err := t.AmountIn(r, currency)
		if err != nil {
			return 0, fmt.Errorf("account %q transaction %d: %w", a.name, t.id, err)
		}
		if t.kind == Expense {
			amount = -amount
		}
		sum += amount
	}
	return sum, nil
}
