package pdf

import "github.com/kruvl/gloria-proyect/internal/domain/quote"

type Generator interface {
	Generate(m *quote.Model, tot quote.Totals) ([]byte, error)
}
