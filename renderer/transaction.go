package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/moneykeeper"
)

// Transaction renders a one-line description of a transaction.
func Transaction(t moneykeeper.Transaction) string {
	verb := "Received"
	if t.Type() == moneykeeper.Expense {
		verb = "Spent"
	}
	return fmt.Sprintf("%s %s on %s (%s)", verb, Amount(t.Amount(), t.Currency()), t.Category(), t.When())
}

// Transactions renders a markdown table of transactions in the given order.
func Transactions(title string, txs []moneykeeper.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%d)\n\n", title, len(txs))
	if len(txs) == 0 {
		b.WriteString("No transactions to display.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		tags := "-"
		if ts := t.Tags(); len(ts) > 0 {
			tags = strings.Join(ts, ", ")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID()),
			t.When().String(),
			t.Type().String(),
			Amount(t.Amount(), t.Currency()),
			t.Category(),
			t.Description(),
			tags,
		})
	}
	table(&b, []string{"ID", "Date", "Type", "Amount", "Category", "Description", "Tags"}, rows)
	return b.String()
}
