package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/export"
	pdfgen "github.com/kruvl/gloria-proyect/internal/domain/quote/pdf/gofpdf"
)

type exportCmd struct {
	in  string
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "validate a quote file and write its PDF and HTML" }
func (*exportCmd) Usage() string {
	return `export -in cotizacion.json [-out dir]:
  Render the quote as a printable HTML document and a PDF.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "quote JSON file")
	f.StringVar(&c.out, "out", ".", "output directory")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		return fail(fmt.Errorf("export: -in is required"))
	}
	m, err := readQuoteFile(c.in)
	if err != nil {
		return fail(err)
	}
	if err := quote.Validate(m); err != nil {
		return fail(err)
	}

	res, err := export.New(pdfgen.New(), c.out).Export(ctx, m)
	if err != nil {
		return fail(err)
	}

	tot := m.Totals()
	fmt.Printf("total %s (subtotal %s, IVA %s)\n",
		quote.FormatCOP(tot.Total), quote.FormatCOP(tot.Subtotal), quote.FormatCOP(tot.Tax))
	fmt.Println(res.PDFPath)
	fmt.Println(res.HTMLPath)
	return subcommands.ExitSuccess
}
