package detecting

import "github.com/vfg2006/shelf-manager-api/internal/domain"

// Evaluation é o resultado da classificação de ocupação de uma leitura
// contra a leitura anterior do mesmo slot
type Evaluation struct {
	Occupancy         float64
	PreviousOccupancy float64
	IsRupture         bool
	WasRupture        bool
}

// Evaluate classifica a ocupação atual e anterior contra o limiar de ruptura.
// Função pura, sem efeito colateral.
//
// Quando não existe leitura anterior, a ocupação anterior assume 1.0 (gôndola
// cheia): a primeira leitura zerada de um slot é tratada como início genuíno
// de ruptura, nunca como fechamento espúrio de um evento que não existe.
func Evaluate(quantity, capacity int, previous *domain.StockReading, threshold float64) Evaluation {
	occupancy := float64(quantity) / float64(capacity)

	previousOccupancy := 1.0
	if previous != nil {
		previousOccupancy = float64(previous.Quantity) / float64(capacity)
	}

	return Evaluation{
		Occupancy:         occupancy,
		PreviousOccupancy: previousOccupancy,
		IsRupture:         occupancy < threshold,
		WasRupture:        previousOccupancy < threshold,
	}
}
