package detecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		capacity  int
		previous  *domain.StockReading
		threshold float64
		expected  Evaluation
	}{
		{
			name:      "Primeira leitura zerada deve ser início de ruptura, nunca fechamento",
			quantity:  0,
			capacity:  20,
			previous:  nil,
			threshold: 0.10,
			expected: Evaluation{
				Occupancy:         0.0,
				PreviousOccupancy: 1.0,
				IsRupture:         true,
				WasRupture:        false,
			},
		},
		{
			name:      "Primeira leitura saudável não dispara transição",
			quantity:  15,
			capacity:  20,
			previous:  nil,
			threshold: 0.10,
			expected: Evaluation{
				Occupancy:         0.75,
				PreviousOccupancy: 1.0,
				IsRupture:         false,
				WasRupture:        false,
			},
		},
		{
			name:      "Ocupação exatamente no limiar não é ruptura (comparação estrita)",
			quantity:  2,
			capacity:  20,
			previous:  &domain.StockReading{Quantity: 10},
			threshold: 0.10,
			expected: Evaluation{
				Occupancy:         0.10,
				PreviousOccupancy: 0.5,
				IsRupture:         false,
				WasRupture:        false,
			},
		},
		{
			name:      "Ocupação logo abaixo do limiar é ruptura",
			quantity:  1,
			capacity:  20,
			previous:  &domain.StockReading{Quantity: 10},
			threshold: 0.10,
			expected: Evaluation{
				Occupancy:         0.05,
				PreviousOccupancy: 0.5,
				IsRupture:         true,
				WasRupture:        false,
			},
		},
		{
			name:      "Slot já em ruptura continua em ruptura sem nova transição",
			quantity:  0,
			capacity:  20,
			previous:  &domain.StockReading{Quantity: 1},
			threshold: 0.10,
			expected: Evaluation{
				Occupancy:         0.0,
				PreviousOccupancy: 0.05,
				IsRupture:         true,
				WasRupture:        true,
			},
		},
		{
			name:      "Reposição encerra a ruptura",
			quantity:  12,
			capacity:  20,
			previous:  &domain.StockReading{Quantity: 0},
			threshold: 0.10,
			expected: Evaluation{
				Occupancy:         0.6,
				PreviousOccupancy: 0.0,
				IsRupture:         false,
				WasRupture:        true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.quantity, tt.capacity, tt.previous, tt.threshold)

			assert.InDelta(t, tt.expected.Occupancy, result.Occupancy, 1e-9)
			assert.InDelta(t, tt.expected.PreviousOccupancy, result.PreviousOccupancy, 1e-9)
			assert.Equal(t, tt.expected.IsRupture, result.IsRupture)
			assert.Equal(t, tt.expected.WasRupture, result.WasRupture)
		})
	}
}
