// Package quote holds the quotation form model: a date, a reference,
// a tax percentage and an ordered list of line items, all kept as the
// raw text the user typed plus parsed numeric caches.
package quote

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field names accepted by UpdateItem.
type Field string

const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldUnitPrice   Field = "unitprice"
)

type LineItem struct {
	ID          string
	Description string
	// Raw text as typed. The parsed values are cached on every commit
	// so totals never reparse.
	Quantity  string
	UnitPrice string

	qty   decimal.Decimal
	price decimal.Decimal
}

// LineTotal is quantity * unit price for this row.
func (it LineItem) LineTotal() decimal.Decimal { return it.qty.Mul(it.price) }

// Qty returns the parsed quantity.
func (it LineItem) Qty() decimal.Decimal { return it.qty }

// Price returns the parsed unit price.
func (it LineItem) Price() decimal.Decimal { return it.price }

type Model struct {
	Date       string // ISO calendar date, e.g. "2024-01-01"
	Reference  string
	TaxPercent string
	Items      []LineItem
}

// New returns a model with a single blank item, the state a fresh form
// starts in.
func New() *Model {
	m := &Model{TaxPercent: "0"}
	m.AddItem()
	return m
}

func newLineItem() LineItem {
	it := LineItem{
		ID:        uuid.NewString(),
		Quantity:  "1",
		UnitPrice: "0",
	}
	it.qty = ParseAmount(it.Quantity)
	it.price = ParseAmount(it.UnitPrice)
	return it
}

// AddItem appends a blank row (quantity "1", unit price "0") and
// returns its id. Existing rows are untouched.
func (m *Model) AddItem() string {
	it := newLineItem()
	m.Items = append(m.Items, it)
	return it.ID
}

// RemoveItem deletes the row with the given id. Unknown ids are a no-op;
// keeping at least one row on screen is the caller's concern, not the
// model's.
func (m *Model) RemoveItem(id string) {
	for i, it := range m.Items {
		if it.ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return
		}
	}
}

// UpdateItem replaces one field of the row with the given id, leaving
// every other field and row untouched. Numeric fields are reparsed on
// commit. Unknown id or field is a no-op.
func (m *Model) UpdateItem(id string, field Field, value string) {
	for i := range m.Items {
		if m.Items[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			m.Items[i].Description = value
		case FieldQuantity:
			m.Items[i].Quantity = value
			m.Items[i].qty = ParseAmount(value)
		case FieldUnitPrice:
			m.Items[i].UnitPrice = value
			m.Items[i].price = ParseAmount(value)
		}
		return
	}
}

// AppendItem rebuilds a row wholesale from raw text and appends it.
// Used when a model is materialized from a request or a saved snapshot.
func (m *Model) AppendItem(description, quantity, unitPrice string) string {
	it := newLineItem()
	it.Description = description
	it.Quantity = quantity
	it.UnitPrice = unitPrice
	it.qty = ParseAmount(quantity)
	it.price = ParseAmount(unitPrice)
	m.Items = append(m.Items, it)
	return it.ID
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Totals derives subtotal, tax and grand total from the current rows.
// Pure: nothing is cached, calling it twice gives identical results.
func (m *Model) Totals() Totals {
	var subtotal decimal.Decimal
	for _, it := range m.Items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	taxPct := ParseAmount(m.TaxPercent)
	tax := subtotal.Mul(taxPct).Div(decimal.NewFromInt(100))
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
