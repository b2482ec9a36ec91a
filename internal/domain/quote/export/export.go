// Package export turns a validated quotation into files on disk: the
// printable HTML document and its PDF rendition.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/pdf"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/render"
)

// ErrExport wraps any document-generation or file-writing failure.
var ErrExport = errors.New("exportación de cotización")

type Result struct {
	PDFPath  string
	HTMLPath string
}

// Exporter writes export files under Dir. Validation is the caller's
// gate; Export assumes the model already passed quote.Validate.
type Exporter struct {
	gen pdf.Generator
	dir string
	now func() time.Time
}

func New(gen pdf.Generator, dir string) *Exporter {
	return &Exporter{gen: gen, dir: dir, now: time.Now}
}

// Export renders the model and writes cotizacion-<ref>-<stamp>.html and
// .pdf, returning both paths. Nothing is left behind on failure paths
// before the first write; a failed second write leaves the first file,
// which is harmless.
func (e *Exporter) Export(ctx context.Context, m *quote.Model) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExport, err)
	}

	tot := m.Totals()
	doc := render.Document(m, tot)
	pdfBytes, err := e.gen.Generate(m, tot)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExport, err)
	}

	base := fmt.Sprintf("cotizacion-%s-%d", slug(m.Reference), e.now().UnixMilli())
	res := Result{
		HTMLPath: filepath.Join(e.dir, base+".html"),
		PDFPath:  filepath.Join(e.dir, base+".pdf"),
	}
	if err := os.WriteFile(res.HTMLPath, []byte(doc), 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := os.WriteFile(res.PDFPath, pdfBytes, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExport, err)
	}
	return res, nil
}

// slug reduces a reference to a safe file-name fragment.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "sin-referencia"
	}
	return b.String()
}
