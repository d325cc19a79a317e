package domain

import "time"

// StoreLoss é a perda somada de uma loja dentro de uma janela, insumo do
// snapshot diário de ranking
type StoreLoss struct {
	StoreID     string
	StoreName   string
	RevenueLost float64
}

// StoreLossRankingResponse é a resposta do ranking diário de perda por loja
type StoreLossRankingResponse struct {
	Ranking    []StoreLossRankingItem `json:"ranking"`
	LastUpdate time.Time              `json:"last_update"`
}

// StoreLossRankingItem é o snapshot diário da perda estimada de uma loja
type StoreLossRankingItem struct {
	ID               int       `json:"id"`
	StoreID          string    `json:"store_id"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	StoreName        string    `json:"store_name"`
	RevenueLost      float64   `json:"revenue_lost"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
