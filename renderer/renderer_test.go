package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/moneykeeper"
)

func TestAmount(t *testing.T) {
	// Known codes use the currency's own conventions.
	if got := Amount(100, "USD"); !strings.Contains(got, "$") {
		t.Errorf("Amount(100, USD) = %q, want a $ rendering", got)
	}
	// Unknown codes fall back to a plain form instead of failing.
	if got := Amount(12.5, "XXX"); got != "12.50 XXX" {
		t.Errorf("Amount(12.5, XXX) = %q, want %q", got, "12.50 XXX")
	}
}

func TestSignedAmount(t *testing.T) {
	if got := SignedAmount(12.5, "XXX"); got != "+12.50 XXX" {
		t.Errorf("SignedAmount(12.5, XXX) = %q, want a leading +", got)
	}
	if got := SignedAmount(-12.5, "XXX"); strings.HasPrefix(got, "+") {
		t.Errorf("SignedAmount(-12.5, XXX) = %q, must not carry a +", got)
	}
}

func TestTransactions(t *testing.T) {
	l := moneykeeper.NewLedger()
	tx, err := l.NewTransaction(moneykeeper.Expense, 750.50, "", "Rent", moneykeeper.MustParseDate("2023-05-20"), "May rent")
	if err != nil {
		t.Fatal(err)
	}
	tx.AddTag("home")

	md := Transactions("Transactions of General", []moneykeeper.Transaction{tx})
	for _, want := range []string{"# Transactions of General (1)", "| 1 |", "2023-05-20", "expense", "Rent", "May rent", "home"} {
		if !strings.Contains(md, want) {
			t.Errorf("Transactions() missing %q in:\n%s", want, md)
		}
	}

	empty := Transactions("Transactions of General", nil)
	if !strings.Contains(empty, "No transactions to display.") {
		t.Errorf("empty rendering missing placeholder:\n%s", empty)
	}
}

func TestAccounts(t *testing.T) {
	l := moneykeeper.NewLedger()
	l.CreateAccount("Savings")
	l.SelectAccount("Savings")

	md := Accounts(l)
	if !strings.Contains(md, "Savings (active)") {
		t.Errorf("Accounts() does not mark the active account:\n%s", md)
	}
	if !strings.Contains(md, "General") {
		t.Errorf("Accounts() misses the default account:\n%s", md)
	}
}

func TestSummary(t *testing.T) {
	s := moneykeeper.Summary{Account: "General", Transactions: 2, Income: 1500, Expenses: 750.50, Balance: 749.50}
	md := Summary(s, moneykeeper.ReferenceCurrency)
	if !strings.Contains(md, `Account "General" Summary`) {
		t.Errorf("Summary() title wrong:\n%s", md)
	}
	if !strings.Contains(md, "Transactions: 2") {
		t.Errorf("Summary() missing the count:\n%s", md)
	}

	total := Summary(moneykeeper.Summary{}, moneykeeper.ReferenceCurrency)
	if !strings.Contains(total, "# Ledger Summary") {
		t.Errorf("whole-ledger title wrong:\n%s", total)
	}
}

func TestRatesTable(t *testing.T) {
	r := moneykeeper.NewRates()
	md := RatesTable(r)
	if !strings.Contains(md, "No rates loaded.") {
		t.Errorf("empty table rendering:\n%s", md)
	}

	r.Set(map[string]float64{"USD": 79.9093})
	md = RatesTable(r)
	if !strings.Contains(md, "USD") || !strings.Contains(md, "79.9093") {
		t.Errorf("RatesTable() missing the USD row:\n%s", md)
	}
}

func TestTopExpenses(t *testing.T) {
	l := moneykeeper.NewLedger()
	tx, _ := l.NewTransaction(moneykeeper.Expense, 750.50, "", "Rent", moneykeeper.MustParseDate("2023-05-20"), "")
	md := TopExpenses([]moneykeeper.Transaction{tx})
	if !strings.Contains(md, "1. Spent") {
		t.Errorf("TopExpenses() missing the ranked line:\n%s", md)
	}
}
