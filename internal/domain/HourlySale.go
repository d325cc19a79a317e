package domain

import "time"

// HourlySale é o agregado histórico de vendas por produto/loja/hora,
// populado pelo pipeline de importação de vendas e consumido aqui
// apenas para cálculo de média
type HourlySale struct {
	ProductID string    `json:"product_id"`
	StoreID   string    `json:"store_id"`
	SoldAt    time.Time `json:"sold_at"`
	Quantity  int       `json:"quantity"`
}
