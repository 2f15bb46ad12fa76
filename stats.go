package moneykeeper

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Report aggregation runs on decimals so that a long history does not
// accumulate float drift in displayed totals. Each amount is converted
// into the reference currency first, so mixed-currency histories sum
// meaningfully; a transaction whose currency has no usable rate keeps
// its raw amount. The ledger's own balance bookkeeping is unaffected.

// Summary aggregates one account, or the whole ledger when Account is "".
type Summary struct {
	Account      string
	Transactions int
	Income       float64
	Expenses     float64
	Balance      float64
}

// CategoryStat aggregates income and expenses booked under one category.
type CategoryStat struct {
	Category string
	Income   float64
	Expenses float64
	Net      float64
}

// MonthStat aggregates income and expenses of one calendar month.
type MonthStat struct {
	Year     int
	Month    int
	Income   float64
	Expenses float64
	Net      float64
}

// Label returns the "YYYY-MM" form of the month.
func (m MonthStat) Label() string { return fmt.Sprintf("%04d-%02d", m.Year, m.Month) }

type sums struct {
	income   decimal.Decimal
	expenses decimal.Decimal
}

func (s *sums) add(t Transaction, r *Rates) {
	amount := decimal.NewFromFloat(referenceAmount(t, r))
	if t.Type() == Income {
		s.income = s.income.Add(amount)
	} else {
		s.expenses = s.expenses.Add(amount)
	}
}

// referenceAmount converts the unsigned amount into the reference currency,
// falling back to the raw amount when no rate is available.
func referenceAmount(t Transaction, r *Rates) float64 {
	if amount, err := t.AmountIn(r, ReferenceCurrency); err == nil {
		return amount
	}
	return t.Amount()
}

// Summary aggregates the named account.
func (l *Ledger) Summary(name string) (Summary, error) {
	a, err := l.Account(name)
	if err != nil {
		return Summary{}, err
	}
	var s sums
	for _, t := range a.Transactions() {
		s.add(t, l.rates)
	}
	return Summary{
		Account:      name,
		Transactions: a.Count(),
		Income:       s.income.InexactFloat64(),
		Expenses:     s.expenses.InexactFloat64(),
		Balance:      a.Balance(),
	}, nil
}

// TotalSummary aggregates every account in the ledger.
func (l *Ledger) TotalSummary() Summary {
	var s sums
	count := 0
	var balance decimal.Decimal
	for a := range l.Accounts() {
		for _, t := range a.Transactions() {
			s.add(t, l.rates)
		}
		count += a.Count()
		balance = balance.Add(decimal.NewFromFloat(a.Balance()))
	}
	return Summary{
		Transactions: count,
		Income:       s.income.InexactFloat64(),
		Expenses:     s.expenses.InexactFloat64(),
		Balance:      balance.InexactFloat64(),
	}
}

// Categories breaks the whole ledger down by category, in lexical order.
func (l *Ledger) Categories() []CategoryStat {
	byCategory := make(map[string]*sums)
	for a := range l.Accounts() {
		for _, t := range a.Transactions() {
			s, ok := byCategory[t.Category()]
			if !ok {
				s = &sums{}
				byCategory[t.Category()] = s
			}
			s.add(t, l.rates)
		}
	}

	stats := make([]CategoryStat, 0, len(byCategory))
	for category, s := range byCategory {
		stats = append(stats, CategoryStat{
			Category: category,
			Income:   s.income.InexactFloat64(),
			Expenses: s.expenses.InexactFloat64(),
			Net:      s.income.Sub(s.expenses).InexactFloat64(),
		})
	}
	slices.SortFunc(stats, func(a, b CategoryStat) int {
		switch {
		case a.Category < b.Category:
			return -1
		case a.Category > b.Category:
			return 1
		default:
			return 0
		}
	})
	return stats
}

// Months breaks the whole ledger down by calendar month, in chronological
// order.
func (l *Ledger) Months() []MonthStat {
	type key struct{ y, m int }
	byMonth := make(map[key]*sums)
	for a := range l.Accounts() {
		for _, t := range a.Transactions() {
			k := key{t.When().Year(), t.When().Month()}
			s, ok := byMonth[k]
			if !ok {
				s = &sums{}
				byMonth[k] = s
			}
			s.add(t, l.rates)
		}
	}

	stats := make([]MonthStat, 0, len(byMonth))
	for k, s := range byMonth {
		stats = append(stats, MonthStat{
			Year:     k.y,
			Month:    k.m,
			Income:   s.income.InexactFloat64(),
			Expenses: s.expenses.InexactFloat64(),
			Net:      s.income.Sub(s.expenses).InexactFloat64(),
		})
	}
	slices.SortFunc(stats, func(a, b MonthStat) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Month - b.Month
	})
	return stats
}

// TopExpenses returns the n largest expenses across the whole ledger,
// largest first. Ranking compares amounts in the reference currency.
func (l *Ledger) TopExpenses(n int) []Transaction {
	var expenses []Transaction
	for a := range l.Accounts() {
		for _, t := range a.Transactions(ByType(Expense)) {
			expenses = append(expenses, t)
		}
	}
	slices.SortStableFunc(expenses, func(a, b Transaction) int {
		av, bv := referenceAmount(a, l.rates), referenceAmount(b, l.rates)
		switch {
		case av > bv:
			return -1
		case av < bv:
			return 1
		default:
			return 0
		}
	})
	if n > 0 && len(expenses) > n {
		expenses = expenses[:n]
	}
	return expenses
}
