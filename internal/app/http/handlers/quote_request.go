package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
)

// QuoteRequest carries the form state as the client holds it: every
// numeric field is the raw text the user typed.
type QuoteRequest struct {
	Date       string `json:"date"`
	Reference  string `json:"reference"`
	TaxPercent string `json:"tax_percent"`
	Items      []struct {
		Description string `json:"description"`
		Quantity    string `json:"quantity"`
		UnitPrice   string `json:"unit_price"`
	} `json:"items"`
}

func (req QuoteRequest) model() *quote.Model {
	m := &quote.Model{
		Date:       req.Date,
		Reference:  req.Reference,
		TaxPercent: req.TaxPercent,
	}
	if m.TaxPercent == "" {
		m.TaxPercent = "0"
	}
	for _, it := range req.Items {
		m.AppendItem(it.Description, it.Quantity, it.UnitPrice)
	}
	return m
}

func decodeQuote(w http.ResponseWriter, r *http.Request) (*quote.Model, bool) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad request")
		return nil, false
	}
	return req.model(), true
}

// itemResponse mirrors the stored form of a line item plus its id.
type itemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

func itemsResponse(m *quote.Model) []itemResponse {
	out := make([]itemResponse, 0, len(m.Items))
	for _, it := range m.Items {
		out = append(out, itemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   quote.FormatCOP(it.LineTotal()),
		})
	}
	return out
}
