package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
)

type showCmd struct {
	data string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "print one saved quote as JSON" }
func (*showCmd) Usage() string {
	return `show [-data dir] <key>:
  Materialize a saved quote and print it with its totals.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.data, "data", defaultDataDir(), "data directory")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("show: exactly one key expected"))
	}
	st, err := openStore(c.data)
	if err != nil {
		return fail(err)
	}
	m, err := st.LoadOne(ctx, f.Arg(0))
	if err != nil {
		return fail(err)
	}

	type itemOut struct {
		Description string `json:"description"`
		Quantity    string `json:"quantity"`
		UnitPrice   string `json:"unit_price"`
		LineTotal   string `json:"line_total"`
	}
	out := struct {
		Date       string    `json:"date"`
		Reference  string    `json:"reference"`
		TaxPercent string    `json:"tax_percent"`
		Items      []itemOut `json:"items"`
		Subtotal   string    `json:"subtotal"`
		Tax        string    `json:"tax"`
		Total      string    `json:"total"`
	}{
		Date:       m.Date,
		Reference:  m.Reference,
		TaxPercent: m.TaxPercent,
	}
	for _, it := range m.Items {
		out.Items = append(out.Items, itemOut{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   quote.FormatCOP(it.LineTotal()),
		})
	}
	tot := m.Totals()
	out.Subtotal = quote.FormatCOP(tot.Subtotal)
	out.Tax = quote.FormatCOP(tot.Tax)
	out.Total = quote.FormatCOP(tot.Total)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
