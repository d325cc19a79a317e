// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// ShelfSlot representa uma posição física de gôndola vinculada a um único
// produto em uma única loja
type ShelfSlot struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	ProductID string    `json:"product_id"`
	Section   *string   `json:"section,omitempty"`
	Capacity  int       `json:"capacity"` // 0 = capacidade ainda não calculada pelo pipeline de planograma
	CreatedAt time.Time `json:"created_at"`
}

// HasComputedCapacity indica se a capacidade do slot já foi calculada.
// Nenhuma lógica de ocupação roda antes disso.
func (s *ShelfSlot) HasComputedCapacity() bool {
	return s != nil && s.Capacity > 0
}
