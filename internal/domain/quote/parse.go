package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes es-CO formatted numeric text: "." groups
// thousands and is dropped, "," is the decimal mark. Everything except
// digits, ".", "," and one leading "-" is stripped. Empty or
// unparseable input yields exactly zero; the function never fails.
//
// A leading minus keeps its sign so validation can reject negative
// quantities and prices instead of silently absorbing them.
func ParseAmount(text string) decimal.Decimal {
	text = strings.TrimSpace(text)
	negative := strings.HasPrefix(text, "-")

	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ',':
			b.WriteByte('.')
		case r == '.':
			// thousands separator, dropped
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		// more than one decimal mark, e.g. "1,2,3"
		return decimal.Zero
	}
	if negative {
		return d.Neg()
	}
	return d
}
