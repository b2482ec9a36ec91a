// Package gofpdf renders a quotation as a PDF with the same rows,
// totals and peso formatting as the HTML document.
package gofpdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/render"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(m *quote.Model, tot quote.Totals) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Cotización", true)
	// core fonts are cp1252; the translator covers the Spanish accents
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Cotización"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Fecha: %s", m.Date)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Referencia: %s", m.Reference)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(90, 7, tr("Descripción"))
	pdf.CellFormat(20, 7, tr("Cant."), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, tr("Vr. unitario"), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, tr("Vr. total"), "", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range m.Items {
		pdf.Cell(90, 6, tr(trim(it.Description, 55)))
		pdf.CellFormat(20, 6, tr(it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, quote.FormatCOP(it.Price()), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, quote.FormatCOP(it.LineTotal()), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(145, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, quote.FormatCOP(tot.Subtotal), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.CellFormat(145, 7, tr(fmt.Sprintf("IVA (%s%%)", quote.ParseAmount(m.TaxPercent))), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, quote.FormatCOP(tot.Tax), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(145, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, quote.FormatCOP(tot.Total), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, tr(render.LegalLine))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
