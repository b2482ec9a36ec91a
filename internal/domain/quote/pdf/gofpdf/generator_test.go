package gofpdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kruvl/gloria-proyect/internal/domain/quote"
)

func TestGenerate(t *testing.T) {
	m := &quote.Model{Date: "2024-01-01", Reference: "Proyecto A", TaxPercent: "19"}
	m.AppendItem("Tornillos galvanizados 1/2\"", "10", "1000")
	m.AppendItem("Mano de obra", "1", "50.000")

	out, err := New().Generate(m, m.Totals())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
