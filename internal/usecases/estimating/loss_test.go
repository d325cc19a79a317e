package estimating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLoss(t *testing.T) {
	tests := []struct {
		name           string
		avgHourlySales float64
		durationHours  float64
		price          float64
		marginPercent  float64
		expected       Loss
	}{
		{
			name:           "Cálculo completo com valores inteiros",
			avgHourlySales: 3.0,
			durationHours:  5.0,
			price:          5.0,
			marginPercent:  30.0,
			expected: Loss{
				UnitsNotSold: 15.0,
				RevenueLost:  75.0,
				MarginLost:   22.5,
			},
		},
		{
			name:           "Produto sem giro deve zerar toda a perda",
			avgHourlySales: 0.0,
			durationHours:  48.0,
			price:          19.90,
			marginPercent:  35.0,
			expected: Loss{
				UnitsNotSold: 0.0,
				RevenueLost:  0.0,
				MarginLost:   0.0,
			},
		},
		{
			name:           "Duração zero deve zerar toda a perda",
			avgHourlySales: 7.5,
			durationHours:  0.0,
			price:          12.50,
			marginPercent:  40.0,
			expected: Loss{
				UnitsNotSold: 0.0,
				RevenueLost:  0.0,
				MarginLost:   0.0,
			},
		},
		{
			name:           "Unidades fracionárias são permitidas e arredondadas a 2 casas",
			avgHourlySales: 1.5,
			durationHours:  2.5,
			price:          9.90,
			marginPercent:  25.0,
			expected: Loss{
				UnitsNotSold: 3.75,
				RevenueLost:  37.13, // 3.75 × 9.90 = 37.125
				MarginLost:   9.28,  // 37.125 × 25% = 9.28125
			},
		},
		{
			name:           "Margem de 100% iguala margem perdida à receita perdida",
			avgHourlySales: 2.0,
			durationHours:  3.0,
			price:          10.0,
			marginPercent:  100.0,
			expected: Loss{
				UnitsNotSold: 6.0,
				RevenueLost:  60.0,
				MarginLost:   60.0,
			},
		},
		{
			name:           "Multiplicação de dinheiro não acumula erro binário",
			avgHourlySales: 0.1,
			durationHours:  3.0,
			price:          0.1,
			marginPercent:  10.0,
			expected: Loss{
				UnitsNotSold: 0.3,
				RevenueLost:  0.03,
				MarginLost:   0.0, // 0.003 arredonda para baixo
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeLoss(tt.avgHourlySales, tt.durationHours, tt.price, tt.marginPercent)

			assert.Equal(t, tt.expected.UnitsNotSold, result.UnitsNotSold)
			assert.Equal(t, tt.expected.RevenueLost, result.RevenueLost)
			assert.Equal(t, tt.expected.MarginLost, result.MarginLost)
		})
	}
}

func TestComputeLoss_MargemNuncaExcedeReceita(t *testing.T) {
	losses := []Loss{
		ComputeLoss(3.0, 5.0, 5.0, 30.0),
		ComputeLoss(1.7, 26.5, 19.90, 42.0),
		ComputeLoss(0.25, 120.0, 3.49, 18.5),
	}

	for _, loss := range losses {
		assert.GreaterOrEqual(t, loss.RevenueLost, 0.0)
		assert.GreaterOrEqual(t, loss.MarginLost, 0.0)
		assert.LessOrEqual(t, loss.MarginLost, loss.RevenueLost)
	}
}
