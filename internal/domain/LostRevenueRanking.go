package domain

import "time"

// LostRevenueFilters delimita a janela da consulta de ranking de perda
type LostRevenueFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// LostRevenueItem agrega os eventos fechados de um produto dentro da janela.
// Product fica nulo quando o produto não existe mais no catálogo; a consulta
// nunca falha por dado relacionado ausente.
type LostRevenueItem struct {
	ProductID         string   `json:"product_id"`
	Product           *Product `json:"product"`
	EventCount        int      `json:"event_count"`
	TotalUnitsNotSold float64  `json:"total_units_not_sold"`
	TotalRevenueLost  float64  `json:"total_revenue_lost"`
	TotalMarginLost   float64  `json:"total_margin_lost"`
}

// LostRevenueRankingResponse é a resposta da consulta de ranking de perda
type LostRevenueRankingResponse struct {
	StoreID   string            `json:"store_id"`
	StartDate time.Time         `json:"start_date"`
	EndDate   time.Time         `json:"end_date"`
	Ranking   []LostRevenueItem `json:"ranking"`
}
