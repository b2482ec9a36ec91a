package handlers

import (
	"net/http"
	"time"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
)

type saveResponse struct {
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveQuote validates the quote and persists a snapshot. The client's
// form state is untouched by a failed save; it just gets the notice.
func (h *Handlers) SaveQuote(w http.ResponseWriter, r *http.Request) {
	if !h.saveBusy.tryAcquire() {
		respondError(w, http.StatusConflict, "ya hay un guardado en curso")
		return
	}
	defer h.saveBusy.release()

	m, ok := decodeQuote(w, r)
	if !ok {
		return
	}
	if err := quote.Validate(m); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := h.Store.Save(r.Context(), m)
	if err != nil {
		respondError(w, http.StatusBadGateway, "no se pudo guardar la cotización")
		return
	}
	respondJSON(w, http.StatusCreated, saveResponse{Key: saved.Key, CreatedAt: saved.CreatedAt})
}
