package domain

import "time"

// ReadingSource identifica a origem de uma leitura de estoque
type ReadingSource string

const (
	SourceManual ReadingSource = "manual" // contagem manual na loja
	SourceApp    ReadingSource = "app"    // aplicativo do promotor
	SourceVision ReadingSource = "vision" // reconhecimento de imagem
)

// ValidSource verifica se a origem informada é conhecida
func ValidSource(source ReadingSource) bool {
	switch source {
	case SourceManual, SourceApp, SourceVision:
		return true
	}
	return false
}

// StockReading é uma observação imutável de ocupação de gôndola.
// Leituras nunca são atualizadas nem removidas (append-only).
type StockReading struct {
	ID       string        `json:"id"`
	SlotID   string        `json:"slot_id"`
	StoreID  string        `json:"store_id"`
	Quantity int           `json:"quantity"`
	Source   ReadingSource `json:"source"`
	ReadAt   time.Time     `json:"read_at"`
}

// NewStockReading é o payload de ingestão de uma leitura
type NewStockReading struct {
	StoreID  string        `json:"store_id"`
	SlotID   string        `json:"slot_id"`
	Quantity int           `json:"quantity"`
	Source   ReadingSource `json:"source"`
}
