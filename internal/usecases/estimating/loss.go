package estimating

import "github.com/shopspring/decimal"

// Loss agrupa os três campos financeiros congelados no fechamento do evento
type Loss struct {
	UnitsNotSold float64
	RevenueLost  float64
	MarginLost   float64
}

// ComputeLoss converte duração × velocidade × economia do produto em perda
// estimada:
//
//	unitsNotSold = avgHourlySales × durationHours (fracionário permitido)
//	revenueLost  = unitsNotSold × price
//	marginLost   = revenueLost × (marginPercent / 100)
//
// O cálculo usa aritmética decimal e arredonda para 2 casas apenas na saída,
// evitando acumular erro binário em multiplicações de dinheiro.
func ComputeLoss(avgHourlySales, durationHours, price, marginPercent float64) Loss {
	units := decimal.NewFromFloat(avgHourlySales).
		Mul(decimal.NewFromFloat(durationHours))

	revenue := units.Mul(decimal.NewFromFloat(price))

	margin := revenue.
		Mul(decimal.NewFromFloat(marginPercent)).
		Div(decimal.NewFromInt(100))

	return Loss{
		UnitsNotSold: units.Round(2).InexactFloat64(),
		RevenueLost:  revenue.Round(2).InexactFloat64(),
		MarginLost:   margin.Round(2).InexactFloat64(),
	}
}
