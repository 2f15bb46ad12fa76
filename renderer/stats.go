package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/moneykeeper"
)

// Summary renders a per-account or whole-ledger summary.
func Summary(s moneykeeper.Summary, currency string) string {
	var b strings.Builder
	title := "Ledger"
	if s.Account != "" {
		title = fmt.Sprintf("Account %q", s.Account)
	}
	fmt.Fprintf(&b, "# %s Summary\n\n", title)
	fmt.Fprintf(&b, "- Transactions: %d\n", s.Transactions)
	fmt.Fprintf(&b, "- Income: %s\n", Amount(s.Income, currency))
	fmt.Fprintf(&b, "- Expenses: %s\n", Amount(s.Expenses, currency))
	fmt.Fprintf(&b, "- Balance: %s\n", Amount(s.Balance, currency))
	return b.String()
}

// Categories renders the per-category breakdown.
func Categories(stats []moneykeeper.CategoryStat, currency string) string {
	var b strings.Builder
	b.WriteString("# By Category\n\n")
	if len(stats) == 0 {
		b.WriteString("No transactions to display.\n")
		return b.String()
	}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Category,
			Amount(s.Income, currency),
			Amount(s.Expenses, currency),
			SignedAmount(s.Net, currency),
		})
	}
	table(&b, []string{"Category", "Income", "Expenses", "Net"}, rows)
	return b.String()
}

// Months renders the per-month breakdown in chronological order.
func Months(stats []moneykeeper.MonthStat, currency string) string {
	var b strings.Builder
	b.WriteString("# By Month\n\n")
	if len(stats) == 0 {
		b.WriteString("No transactions to display.\n")
		return b.String()
	}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Label(),
			Amount(s.Income, currency),
			Amount(s.Expenses, currency),
			SignedAmount(s.Net, currency),
		})
	}
	table(&b, []string{"Month", "Income", "Expenses", "Net"}, rows)
	return b.String()
}

// TopExpenses renders the largest expenses, largest first.
func TopExpenses(txs []moneykeeper.Transaction) string {
	var b strings.Builder
	b.WriteString("# Top Expenses\n\n")
	if len(txs) == 0 {
		b.WriteString("No expenses recorded.\n")
		return b.String()
	}
	for i, t := range txs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, Transaction(t))
	}
	return b.String()
}

// RatesTable renders the currency table, one row per supported code.
func RatesTable(r *moneykeeper.Rates) string {
	var b strings.Builder
	b.WriteString("# Exchange Rates\n\n")
	if r.Len() == 0 {
		b.WriteString("No rates loaded.\n")
		return b.String()
	}
	var rows [][]string
	for code := range r.Codes() {
		rate, _ := r.Rate(code)
		rows = append(rows, []string{code, fmt.Sprintf("%.4f", rate)})
	}
	table(&b, []string{"Currency", moneykeeper.ReferenceCurrency + " per unit"}, rows)
	return b.String()
}
