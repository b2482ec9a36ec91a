package quote

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Colombian pesos are quoted in whole units: no decimals, "." grouping.
var copFormatter = money.NewFormatter(0, ",", ".", "$", "$1")

// FormatCOP renders an amount as Colombian-peso text, rounded half-up
// to whole pesos: FormatCOP(10000) == "$10.000". Both the HTML document
// and the PDF go through here so the two always agree byte for byte.
func FormatCOP(amount decimal.Decimal) string {
	return copFormatter.Format(amount.Round(0).IntPart())
}
