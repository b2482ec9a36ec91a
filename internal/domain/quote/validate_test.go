package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModel() *Model {
	m := &Model{Date: "2024-01-01", Reference: "Proyecto A", TaxPercent: "19"}
	m.AppendItem("Tornillos", "10", "1000")
	return m
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, Validate(validModel()))
}

func TestValidateRuleOrder(t *testing.T) {
	t.Run("date first", func(t *testing.T) {
		m := validModel()
		m.Date = ""
		m.Reference = "   "
		err := Validate(m)
		require.ErrorIs(t, err, ErrInvalidQuote)
		assert.Contains(t, err.Error(), "fecha")
	})

	t.Run("reference before item rules", func(t *testing.T) {
		// violates rule 2 and rule 4 at once; rule 2 must win
		m := validModel()
		m.Reference = "   "
		m.UpdateItem(m.Items[0].ID, FieldQuantity, "0")
		err := Validate(m)
		require.ErrorIs(t, err, ErrInvalidQuote)
		assert.Contains(t, err.Error(), "referencia")
	})

	t.Run("empty items", func(t *testing.T) {
		m := validModel()
		m.RemoveItem(m.Items[0].ID)
		err := Validate(m)
		require.ErrorIs(t, err, ErrInvalidQuote)
		assert.Contains(t, err.Error(), "ítem")
	})
}

func TestValidateItemRules(t *testing.T) {
	t.Run("blank description", func(t *testing.T) {
		m := validModel()
		m.UpdateItem(m.Items[0].ID, FieldDescription, "  ")
		assert.ErrorIs(t, Validate(m), ErrInvalidQuote)
	})

	t.Run("zero quantity", func(t *testing.T) {
		m := validModel()
		m.UpdateItem(m.Items[0].ID, FieldQuantity, "0")
		assert.ErrorIs(t, Validate(m), ErrInvalidQuote)
	})

	t.Run("negative quantity", func(t *testing.T) {
		m := validModel()
		m.UpdateItem(m.Items[0].ID, FieldQuantity, "-2")
		assert.ErrorIs(t, Validate(m), ErrInvalidQuote)
	})

	t.Run("negative unit price", func(t *testing.T) {
		m := validModel()
		m.UpdateItem(m.Items[0].ID, FieldUnitPrice, "-100")
		assert.ErrorIs(t, Validate(m), ErrInvalidQuote)
	})

	t.Run("zero unit price is allowed", func(t *testing.T) {
		m := validModel()
		m.UpdateItem(m.Items[0].ID, FieldUnitPrice, "0")
		assert.NoError(t, Validate(m))
	})

	t.Run("second item checked after first", func(t *testing.T) {
		m := validModel()
		m.AppendItem("", "1", "0")
		err := Validate(m)
		require.ErrorIs(t, err, ErrInvalidQuote)
		assert.Contains(t, err.Error(), "ítem 2")
	})
}
