// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shelf-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
)

const (
	shelfSlotTable = "shelf_slots ss"
)

type ShelfSlotRepository interface {
	GetByID(ctx context.Context, slotID string) (*domain.ShelfSlot, error)
}

type shelfSlotRepository struct {
	conn *postgres.Connection
}

func NewShelfSlotRepository(conn *postgres.Connection) ShelfSlotRepository {
	return &shelfSlotRepository{
		conn: conn,
	}
}

// GetByID busca um slot pelo identificador. Retorna nil quando o slot não
// existe; capacidade nula no banco vira 0 (ainda não calculada).
func (r *shelfSlotRepository) GetByID(ctx context.Context, slotID string) (*domain.ShelfSlot, error) {
	query, args, err := squirrel.
		Select("ss.id", "ss.store_id", "ss.product_id", "ss.section", "ss.capacity", "ss.created_at").
		From(shelfSlotTable).
		Where(squirrel.Eq{"ss.id": slotID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	slot := &domain.ShelfSlot{}
	var capacity sql.NullInt64

	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(
		&slot.ID,
		&slot.StoreID,
		&slot.ProductID,
		&slot.Section,
		&capacity,
		&slot.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear slot: %w", err)
	}

	slot.Capacity = int(capacity.Int64)

	return slot, nil
}
