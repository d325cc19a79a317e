package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shelf-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
)

const (
	stockReadingTable = "stock_readings sr"
)

type StockReadingRepository interface {
	Insert(ctx context.Context, reading *domain.StockReading) error
	GetPreviousReading(ctx context.Context, slotID string, before time.Time) (*domain.StockReading, error)
	GetLatestByStore(ctx context.Context, storeID string) ([]*domain.LatestSlotReading, error)
}

type stockReadingRepository struct {
	conn *postgres.Connection
}

func NewStockReadingRepository(conn *postgres.Connection) StockReadingRepository {
	return &stockReadingRepository{
		conn: conn,
	}
}

// Insert grava uma leitura. A tabela é append-only: não existe caminho de
// atualização nem remoção de leituras.
func (r *stockReadingRepository) Insert(ctx context.Context, reading *domain.StockReading) error {
	query, args, err := squirrel.
		Insert("stock_readings").
		Columns("id", "slot_id", "store_id", "quantity", "source", "read_at").
		Values(
			reading.ID,
			reading.SlotID,
			reading.StoreID,
			reading.Quantity,
			string(reading.Source),
			reading.ReadAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir leitura: %w", err)
	}

	return nil
}

// GetPreviousReading busca a leitura imediatamente anterior do mesmo slot.
// Retorna nil quando não existe leitura anterior (primeira leitura do slot).
func (r *stockReadingRepository) GetPreviousReading(ctx context.Context, slotID string, before time.Time) (*domain.StockReading, error) {
	query, args, err := squirrel.
		Select("sr.id", "sr.slot_id", "sr.store_id", "sr.quantity", "sr.source", "sr.read_at").
		From(stockReadingTable).
		Where(squirrel.Eq{"sr.slot_id": slotID}).
		Where(squirrel.Lt{"sr.read_at": before}).
		OrderBy("sr.read_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	reading := &domain.StockReading{}
	var source string

	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(
		&reading.ID,
		&reading.SlotID,
		&reading.StoreID,
		&reading.Quantity,
		&source,
		&reading.ReadAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear leitura: %w", err)
	}

	reading.Source = domain.ReadingSource(source)

	return reading, nil
}

// GetLatestByStore retorna a leitura mais recente de cada slot da loja com
// capacidade conhecida. Slots sem leitura alguma ficam de fora do retrato.
func (r *stockReadingRepository) GetLatestByStore(ctx context.Context, storeID string) ([]*domain.LatestSlotReading, error) {
	query, args, err := squirrel.
		Select(
			"ss.id",
			"ss.store_id",
			"ss.product_id",
			"ss.section",
			"ss.capacity",
			"ss.created_at",
			"p.name",
			"sr.quantity",
			"sr.read_at",
		).
		Options("DISTINCT ON (sr.slot_id)").
		From(stockReadingTable).
		Join("shelf_slots ss ON ss.id = sr.slot_id").
		LeftJoin("products p ON p.id = ss.product_id").
		Where(squirrel.Eq{"ss.store_id": storeID}).
		Where(squirrel.Gt{"ss.capacity": 0}).
		OrderBy("sr.slot_id", "sr.read_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	readings := make([]*domain.LatestSlotReading, 0)

	for rows.Next() {
		item := &domain.LatestSlotReading{}
		var productName sql.NullString

		err = rows.Scan(
			&item.Slot.ID,
			&item.Slot.StoreID,
			&item.Slot.ProductID,
			&item.Slot.Section,
			&item.Slot.Capacity,
			&item.Slot.CreatedAt,
			&productName,
			&item.Quantity,
			&item.ReadAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear leitura do slot: %w", err)
		}

		if productName.Valid {
			item.ProductName = &productName.String
		}

		readings = append(readings, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return readings, nil
}
