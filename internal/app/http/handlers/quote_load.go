package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kruvl/gloria-proyect/internal/domain/quote/store"
)

type loadResponse struct {
	Date       string         `json:"date"`
	Reference  string         `json:"reference"`
	TaxPercent string         `json:"tax_percent"`
	Items      []itemResponse `json:"items"`
}

// LoadQuote materializes one saved quote; the client replaces its form
// state with the response.
func (h *Handlers) LoadQuote(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	m, err := h.Store.LoadOne(r.Context(), key)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "cotización no encontrada")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "no se pudo leer la cotización guardada")
		return
	}

	respondJSON(w, http.StatusOK, loadResponse{
		Date:       m.Date,
		Reference:  m.Reference,
		TaxPercent: m.TaxPercent,
		Items:      itemsResponse(m),
	})
}
