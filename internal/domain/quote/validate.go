package quote

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuote wraps every validation failure so call sites can
// classify without matching message text.
var ErrInvalidQuote = errors.New("cotización inválida")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuote, fmt.Sprintf(format, args...))
}

// Validate checks the model against the business rules that gate export
// and save. Rules run in a fixed order and the first failure wins:
//
//  1. date non-empty
//  2. reference (trimmed) non-empty
//  3. at least one item
//  4. per item, in order: description non-empty, quantity > 0,
//     unit price >= 0
func Validate(m *Model) error {
	if m.Date == "" {
		return invalid("la fecha es obligatoria")
	}
	if strings.TrimSpace(m.Reference) == "" {
		return invalid("la referencia es obligatoria")
	}
	if len(m.Items) == 0 {
		return invalid("agregue al menos un ítem")
	}
	for i, it := range m.Items {
		if strings.TrimSpace(it.Description) == "" {
			return invalid("el ítem %d no tiene descripción", i+1)
		}
		if !it.Qty().IsPositive() {
			return invalid("el ítem %d debe tener cantidad mayor que cero", i+1)
		}
		if it.Price().IsNegative() {
			return invalid("el ítem %d tiene precio unitario negativo", i+1)
		}
	}
	return nil
}
