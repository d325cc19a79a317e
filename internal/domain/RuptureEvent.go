package domain

import "time"

// RuptureType classifica a severidade de uma ruptura
type RuptureType string

const (
	// RuptureTotal indica gôndola zerada (quantidade = 0)
	RuptureTotal RuptureType = "total"
	// RuptureFunctional indica gôndola visualmente vazia mas com quantidade > 0
	RuptureFunctional RuptureType = "functional"
)

// RuptureEvent representa um intervalo contíguo em que a ocupação de um slot
// ficou abaixo do limiar de detecção. Os campos financeiros são congelados no
// fechamento e nunca recalculados, mesmo que o histórico de vendas mude depois.
type RuptureEvent struct {
	ID            string      `json:"id"`
	StoreID       string      `json:"store_id"`
	ProductID     string      `json:"product_id"`
	SlotID        string      `json:"slot_id"`
	StartAt       time.Time   `json:"start_at"`
	EndAt         *time.Time  `json:"end_at"` // nulo enquanto o evento está aberto
	Type          RuptureType `json:"type"`
	DurationHours float64     `json:"duration_hours"`
	UnitsNotSold  float64     `json:"units_not_sold"`
	RevenueLost   float64     `json:"revenue_lost"`
	MarginLost    float64     `json:"margin_lost"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// IsOpen indica se o evento ainda não foi fechado
func (e *RuptureEvent) IsOpen() bool {
	return e != nil && e.EndAt == nil
}

// RuptureClosure agrupa os campos gravados uma única vez no fechamento
type RuptureClosure struct {
	EventID       string
	EndAt         time.Time
	DurationHours float64
	UnitsNotSold  float64
	RevenueLost   float64
	MarginLost    float64
}
