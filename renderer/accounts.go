package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/moneykeeper"
)

// Accounts renders a markdown table of every account in the ledger, with
// the active one marked.
func Accounts(l *moneykeeper.Ledger) string {
	var b strings.Builder
	b.WriteString("# Accounts\n\n")

	active := l.Active().Name()
	var rows [][]string
	for a := range l.Accounts() {
		name := a.Name()
		if name == active {
			name = name + " (active)"
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", a.Count()),
			Amount(a.Balance(), moneykeeper.ReferenceCurrency),
		})
	}
	table(&b, []string{"Account", "Transactions", "Balance"}, rows)
	return b.String()
}
