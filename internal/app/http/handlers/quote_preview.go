package handlers

import (
	"net/http"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
)

type previewResponse struct {
	Items    []itemResponse `json:"items"`
	Subtotal string         `json:"subtotal"`
	Tax      string         `json:"tax"`
	Total    string         `json:"total"`
}

// PreviewQuote recomputes derived totals for a draft. No validation
// gate: the live form shows totals while the quote is still incomplete.
func (h *Handlers) PreviewQuote(w http.ResponseWriter, r *http.Request) {
	m, ok := decodeQuote(w, r)
	if !ok {
		return
	}
	tot := m.Totals()
	respondJSON(w, http.StatusOK, previewResponse{
		Items:    itemsResponse(m),
		Subtotal: quote.FormatCOP(tot.Subtotal),
		Tax:      quote.FormatCOP(tot.Tax),
		Total:    quote.FormatCOP(tot.Total),
	})
}
