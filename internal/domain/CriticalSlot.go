package domain

import "time"

// Rótulos de status dos slots críticos
const (
	SlotStatusOutOfStock = "out_of_stock" // quantidade zerada
	SlotStatusCritical   = "critical"     // abaixo do limiar de ruptura
	SlotStatusLow        = "low"          // abaixo do limiar de alerta, acima do de ruptura
)

// CriticalSlot é um slot cuja última leitura ficou abaixo do limiar de alerta.
// É um retrato pontual da loja, independente do histórico de eventos de ruptura.
type CriticalSlot struct {
	SlotID          string   `json:"slot_id"`
	StoreID         string   `json:"store_id"`
	ProductID       string   `json:"product_id"`
	ProductName     *string  `json:"product_name,omitempty"`
	Section         *string  `json:"section,omitempty"`
	Capacity        int      `json:"capacity"`
	CurrentQuantity int      `json:"current_quantity"`
	Occupation      float64  `json:"occupation"` // arredondada para 2 casas
	Status          string   `json:"status"`
	LastReadAt      time.Time `json:"last_read_at"`
}

// LatestSlotReading combina um slot com sua leitura mais recente, como
// retornado pela varredura de slots da loja
type LatestSlotReading struct {
	Slot        ShelfSlot
	ProductName *string
	Quantity    int
	ReadAt      time.Time
}

// CriticalSlotsResponse é a resposta da consulta de slots críticos
type CriticalSlotsResponse struct {
	StoreID   string         `json:"store_id"`
	Threshold float64        `json:"threshold"`
	Slots     []CriticalSlot `json:"slots"`
}
