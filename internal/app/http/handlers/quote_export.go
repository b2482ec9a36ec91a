package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
)

// ExportQuote validates the quote, writes the export files and streams
// the PDF rendition back. The written file's location travels in the
// X-Export-Path header for clients without a share mechanism.
func (h *Handlers) ExportQuote(w http.ResponseWriter, r *http.Request) {
	if !h.exportBusy.tryAcquire() {
		respondError(w, http.StatusConflict, "ya hay una exportación en curso")
		return
	}
	defer h.exportBusy.release()

	m, ok := decodeQuote(w, r)
	if !ok {
		return
	}
	if err := quote.Validate(m); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := h.Exp.Export(r.Context(), m)
	if err != nil {
		respondError(w, http.StatusBadGateway, fmt.Sprintf("no se pudo exportar: %v", err))
		return
	}
	pdfBytes, err := os.ReadFile(res.PDFPath)
	if err != nil {
		respondError(w, http.StatusBadGateway, fmt.Sprintf("no se pudo leer el PDF exportado: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cotizacion.pdf"`)
	w.Header().Set("X-Export-Path", res.PDFPath)
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
