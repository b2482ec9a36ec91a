package handlers

import (
	"net/http"
	"time"
)

type listEntry struct {
	Key       string    `json:"key"`
	Date      string    `json:"date"`
	Reference string    `json:"reference"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ListQuotes returns saved quotes, most recent first. Store failures
// are surfaced, not degraded to an empty list.
func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListAll(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "no se pudieron leer las cotizaciones guardadas")
		return
	}

	entries := make([]listEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, listEntry{
			Key:       rec.Key,
			Date:      rec.Date,
			Reference: rec.Reference,
			ItemCount: len(rec.Items),
			CreatedAt: rec.CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"quotes": entries})
}
