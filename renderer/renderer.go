// Package renderer turns ledger data into markdown strings. It holds no
// state and never mutates what it renders.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Amount formats a monetary value with the conventions of its currency.
// Unknown codes fall back to a plain two-decimal rendering.
func Amount(value float64, code string) string {
	m := money.NewFromFloat(value, code)
	if m.Currency() == nil {
		return fmt.Sprintf("%.2f %s", value, code)
	}
	return m.Display()
}

// SignedAmount is Amount with an explicit leading sign for positive values.
func SignedAmount(value float64, code string) string {
	if value > 0 {
		return "+" + Amount(value, code)
	}
	return Amount(value, code)
}

// table writes a markdown table from a header and rows.
func table(b *strings.Builder, header []string, rows [][]string) {
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, c := range cells {
			b.WriteString(" ")
			b.WriteString(c)
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	writeRow(header)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
}
