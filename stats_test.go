package moneykeeper

import (
	"math"
	"testing"
)

// statsLedger builds a small two-account ledger for report tests.
func statsLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	l.CreateAccount("Savings")
	def, _ := l.Account(DefaultAccountName)
	sav, _ := l.Account("Savings")

	add := func(a *Account, kind Type, amount float64, category, date string) {
		t.Helper()
		tx, err := l.NewTransaction(kind, amount, "", category, MustParseDate(date), "")
		if err != nil {
			t.Fatal(err)
		}
		if err := a.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}

	add(def, Income, 1500, "Salary", "2023-05-15")
	add(def, Expense, 750.50, "Rent", "2023-05-20")
	add(def, Expense, 120.30, "Food", "2023-05-21")
	add(def, Expense, 80.10, "Food", "2023-06-02")
	add(sav, Income, 300, "Gift", "2023-06-05")
	add(sav, Expense, 200, "Travel", "2023-06-10")
	return l
}

func TestSummary(t *testing.T) {
	l := statsLedger(t)
	s, err := l.Summary(DefaultAccountName)
	if err != nil {
		t.Fatal(err)
	}
	if s.Transactions != 4 {
		t.Errorf("Transactions = %d, want 4", s.Transactions)
	}
	if s.Income != 1500 {
		t.Errorf("Income = %v, want 1500", s.Income)
	}
	// Decimal aggregation keeps the cents exact.
	if s.Expenses != 950.90 {
		t.Errorf("Expenses = %v, want 950.90", s.Expenses)
	}
	if math.Abs(s.Balance-549.10) > BalanceTolerance {
		t.Errorf("Balance = %v, want 549.10", s.Balance)
	}

	if _, err := l.Summary("Nope"); err == nil {
		t.Error("unknown account: expected an error")
	}
}

func TestSummaryConvertsCurrencies(t *testing.T) {
	l := NewLedger()
	l.Rates().Set(map[string]float64{"USD": 90})
	a := l.Active()

	add := func(kind Type, amount float64, currency, category string) {
		t.Helper()
		tx, err := l.NewTransaction(kind, amount, currency, category, MustParseDate("2023-05-15"), "")
		if err != nil {
			t.Fatal(err)
		}
		if err := a.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}
	add(Income, 10, "USD", "Salary")
	add(Expense, 100, "", "Food")
	// No rate for GBP, the raw amount stands in.
	add(Income, 5, "GBP", "Gift")

	s, err := l.Summary(DefaultAccountName)
	if err != nil {
		t.Fatal(err)
	}
	if s.Income != 905 {
		t.Errorf("Income = %v, want 905", s.Income)
	}
	if s.Expenses != 100 {
		t.Errorf("Expenses = %v, want 100", s.Expenses)
	}
}

func TestTopExpensesRanksInReferenceCurrency(t *testing.T) {
	l := NewLedger()
	l.Rates().Set(map[string]float64{"USD": 90})
	a := l.Active()
	small, err := l.NewTransaction(Expense, 10, "USD", "Travel", MustParseDate("2023-05-15"), "")
	if err != nil {
		t.Fatal(err)
	}
	big, err := l.NewTransaction(Expense, 100, "", "Rent", MustParseDate("2023-05-16"), "")
	if err != nil {
		t.Fatal(err)
	}
	a.AddTransaction(small)
	a.AddTransaction(big)

	top := l.TopExpenses(2)
	if len(top) != 2 {
		t.Fatalf("len(TopExpenses) = %d, want 2", len(top))
	}
	// 10 USD is 900 RUB, so it outranks the larger raw amount.
	if top[0].ID() != small.ID() {
		t.Errorf("top expense = %d, want %d", top[0].ID(), small.ID())
	}
}

func TestTotalSummary(t *testing.T) {
	l := statsLedger(t)
	s := l.TotalSummary()
	if s.Transactions != 6 {
		t.Errorf("Transactions = %d, want 6", s.Transactions)
	}
	if s.Income != 1800 {
		t.Errorf("Income = %v, want 1800", s.Income)
	}
	if s.Expenses != 1150.90 {
		t.Errorf("Expenses = %v, want 1150.90", s.Expenses)
	}
}

func TestCategories(t *testing.T) {
	l := statsLedger(t)
	stats := l.Categories()

	want := []string{"Food", "Gift", "Rent", "Salary", "Travel"}
	if len(stats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(stats), len(want))
	}
	for i, s := range stats {
		if s.Category != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, s.Category, want[i])
		}
	}

	food := stats[0]
	if food.Expenses != 200.40 {
		t.Errorf("Food expenses = %v, want 200.40", food.Expenses)
	}
	if food.Net != -200.40 {
		t.Errorf("Food net = %v, want -200.40", food.Net)
	}
}

func TestMonths(t *testing.T) {
	l := statsLedger(t)
	stats := l.Months()

	if len(stats) != 2 {
		t.Fatalf("got %d months, want 2", len(stats))
	}
	if stats[0].Label() != "2023-05" || stats[1].Label() != "2023-06" {
		t.Errorf("months = %q, %q, want chronological 2023-05, 2023-06", stats[0].Label(), stats[1].Label())
	}
	may := stats[0]
	if may.Income != 1500 || may.Expenses != 870.80 {
		t.Errorf("May = income %v, expenses %v, want 1500, 870.80", may.Income, may.Expenses)
	}
}

func TestTopExpenses(t *testing.T) {
	l := statsLedger(t)

	top := l.TopExpenses(2)
	if len(top) != 2 {
		t.Fatalf("got %d expenses, want 2", len(top))
	}
	if top[0].Amount() != 750.50 || top[1].Amount() != 200 {
		t.Errorf("top amounts = %v, %v, want 750.50, 200", top[0].Amount(), top[1].Amount())
	}
	for _, tx := range top {
		if tx.Type() != Expense {
			t.Errorf("an income leaked into the top expenses: %v", tx.Summary())
		}
	}

	// Asking for more than exist returns them all.
	if got := len(l.TopExpenses(100)); got != 4 {
		t.Errorf("TopExpenses(100) = %d entries, want 4", got)
	}
}
