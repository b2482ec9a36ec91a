// Package render turns a validated quotation into a self-contained
// printable HTML document. User-supplied text is entity-escaped here,
// once, before insertion; the template itself performs no escaping.
package render

import (
	"embed"
	"encoding/base64"
	"fmt"
	"strings"
	"text/template"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
)

//go:embed document.html.tmpl
var documentTmpl string

//go:embed assets/logo.png assets/footer.png
var assets embed.FS

// LegalLine is the static company identifier printed on every document.
const LegalLine = "Gloria Proyectos SAS · NIT 900.123.456-7 · Bogotá, Colombia"

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces &, <, >, " and ' with their entity equivalents.
// Applied exactly once per field; callers must not pass pre-escaped text.
func Escape(s string) string { return markupEscaper.Replace(s) }

type row struct {
	Description string
	Quantity    string
	UnitPrice   string
	LineTotal   string
}

type document struct {
	Date      string
	Reference string
	Rows      []row
	Subtotal  string
	TaxLabel  string
	Tax       string
	Total     string
	LogoURI   string
	FooterURI string
	LegalLine string
}

var tmpl = template.Must(template.New("document").Parse(documentTmpl))

func dataURI(name string) string {
	b, err := assets.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("render: missing embedded asset %s", name))
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b)
}

var (
	logoURI   = dataURI("assets/logo.png")
	footerURI = dataURI("assets/footer.png")
)

// Document renders the model and its totals into HTML. Rows keep model
// order; every amount goes through quote.FormatCOP so the document and
// the live form agree on formatting.
func Document(m *quote.Model, tot quote.Totals) string {
	doc := document{
		Date:      Escape(m.Date),
		Reference: Escape(m.Reference),
		Subtotal:  quote.FormatCOP(tot.Subtotal),
		TaxLabel:  fmt.Sprintf("IVA (%s%%)", quote.ParseAmount(m.TaxPercent)),
		Tax:       quote.FormatCOP(tot.Tax),
		Total:     quote.FormatCOP(tot.Total),
		LogoURI:   logoURI,
		FooterURI: footerURI,
		LegalLine: LegalLine,
	}
	for _, it := range m.Items {
		doc.Rows = append(doc.Rows, row{
			Description: Escape(it.Description),
			Quantity:    Escape(it.Quantity),
			UnitPrice:   quote.FormatCOP(it.Price()),
			LineTotal:   quote.FormatCOP(it.LineTotal()),
		})
	}

	var b strings.Builder
	// the template is embedded and parsed at init; execution over a
	// plain struct cannot fail
	if err := tmpl.Execute(&b, doc); err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	return b.String()
}
