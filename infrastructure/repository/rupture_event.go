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
	ruptureEventTable = "rupture_events re"
)

type RuptureEventRepository interface {
	// Open tenta criar um evento aberto para o slot. Retorna false quando um
	// evento aberto já existe (a inserção concorrente perdeu a corrida para o
	// índice único parcial).
	Open(ctx context.Context, event *domain.RuptureEvent) (bool, error)
	// GetOpenBySlot lista os eventos abertos do slot, do mais recente para o
	// mais antigo. Pela invariante do índice parcial, o esperado é no máximo um.
	GetOpenBySlot(ctx context.Context, slotID string) ([]*domain.RuptureEvent, error)
	// Close grava o fechamento condicionado a end_at ainda estar nulo.
	// Retorna false quando nenhuma linha foi afetada (fechamento concorrente).
	Close(ctx context.Context, closure domain.RuptureClosure) (bool, error)
	LostRevenueRanking(ctx context.Context, storeID string, filters *domain.LostRevenueFilters) ([]domain.LostRevenueItem, error)
	SumLossByStore(ctx context.Context, filters *domain.LostRevenueFilters) ([]*domain.StoreLoss, error)
}

type ruptureEventRepository struct {
	conn *postgres.Connection
}

func NewRuptureEventRepository(conn *postgres.Connection) RuptureEventRepository {
	return &ruptureEventRepository{
		conn: conn,
	}
}

func (r *ruptureEventRepository) Open(ctx context.Context, event *domain.RuptureEvent) (bool, error) {
	query, args, err := squirrel.
		Insert("rupture_events").
		Columns("id", "store_id", "product_id", "slot_id", "start_at", "type").
		Values(
			event.ID,
			event.StoreID,
			event.ProductID,
			event.SlotID,
			event.StartAt,
			string(event.Type),
		).
		// O índice único parcial em (slot_id) WHERE end_at IS NULL garante a
		// invariante de no máximo um evento aberto por slot, mesmo sob
		// ingestões concorrentes.
		Suffix("ON CONFLICT (slot_id) WHERE end_at IS NULL DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao abrir evento de ruptura: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected == 1, nil
}

func (r *ruptureEventRepository) GetOpenBySlot(ctx context.Context, slotID string) ([]*domain.RuptureEvent, error) {
	query, args, err := squirrel.
		Select(
			"re.id",
			"re.store_id",
			"re.product_id",
			"re.slot_id",
			"re.start_at",
			"re.type",
			"re.created_at",
			"re.updated_at",
		).
		From(ruptureEventTable).
		Where(squirrel.Eq{"re.slot_id": slotID}).
		Where("re.end_at IS NULL").
		OrderBy("re.start_at DESC").
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

	events := make([]*domain.RuptureEvent, 0)

	for rows.Next() {
		event := &domain.RuptureEvent{}
		var eventType string

		err = rows.Scan(
			&event.ID,
			&event.StoreID,
			&event.ProductID,
			&event.SlotID,
			&event.StartAt,
			&eventType,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento de ruptura: %w", err)
		}

		event.Type = domain.RuptureType(eventType)
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

func (r *ruptureEventRepository) Close(ctx context.Context, closure domain.RuptureClosure) (bool, error) {
	query, args, err := squirrel.
		Update("rupture_events").
		Set("end_at", closure.EndAt).
		Set("duration_hours", closure.DurationHours).
		Set("units_not_sold", closure.UnitsNotSold).
		Set("revenue_lost", closure.RevenueLost).
		Set("margin_lost", closure.MarginLost).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": closure.EventID}).
		// A condição end_at IS NULL torna o fechamento idempotente: uma
		// segunda tentativa (retry ou corrida) não afeta linha alguma.
		Where("end_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao fechar evento de ruptura: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected == 1, nil
}

// LostRevenueRanking agrega os eventos fechados da loja por produto dentro da
// janela, ordenando pela receita perdida somada. O join com products é LEFT:
// produto ausente no catálogo vira referência nula, nunca erro.
func (r *ruptureEventRepository) LostRevenueRanking(ctx context.Context, storeID string, filters *domain.LostRevenueFilters) ([]domain.LostRevenueItem, error) {
	queryBuilder := squirrel.
		Select(
			"re.product_id",
			"COUNT(re.id) AS event_count",
			"SUM(re.units_not_sold) AS total_units_not_sold",
			"SUM(re.revenue_lost) AS total_revenue_lost",
			"SUM(re.margin_lost) AS total_margin_lost",
			"p.id",
			"p.name",
			"p.brand",
			"p.price",
			"p.margin_percent",
		).
		From(ruptureEventTable).
		LeftJoin("products p ON p.id = re.product_id").
		Where(squirrel.Eq{"re.store_id": storeID}).
		Where("re.end_at IS NOT NULL").
		Where(squirrel.Gt{"re.revenue_lost": 0}).
		Where(squirrel.GtOrEq{"re.start_at": filters.StartDate}).
		Where(squirrel.LtOrEq{"re.start_at": filters.EndDate}).
		GroupBy("re.product_id", "p.id", "p.name", "p.brand", "p.price", "p.margin_percent").
		OrderBy("total_revenue_lost DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ranking := make([]domain.LostRevenueItem, 0)

	for rows.Next() {
		item := domain.LostRevenueItem{}
		var (
			productID     sql.NullString
			productName   sql.NullString
			productBrand  sql.NullString
			price         sql.NullFloat64
			marginPercent sql.NullFloat64
		)

		err = rows.Scan(
			&item.ProductID,
			&item.EventCount,
			&item.TotalUnitsNotSold,
			&item.TotalRevenueLost,
			&item.TotalMarginLost,
			&productID,
			&productName,
			&productBrand,
			&price,
			&marginPercent,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		if productID.Valid {
			product := &domain.Product{
				ID:            productID.String,
				Name:          productName.String,
				Price:         price.Float64,
				MarginPercent: marginPercent.Float64,
			}
			if productBrand.Valid {
				product.Brand = &productBrand.String
			}
			item.Product = product
		}

		ranking = append(ranking, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ranking, nil
}

// SumLossByStore soma a receita perdida por loja dentro da janela, insumo do
// snapshot diário de ranking de perda
func (r *ruptureEventRepository) SumLossByStore(ctx context.Context, filters *domain.LostRevenueFilters) ([]*domain.StoreLoss, error) {
	query, args, err := squirrel.
		Select(
			"re.store_id",
			"COALESCE(s.name, re.store_id)",
			"SUM(re.revenue_lost) AS total_revenue_lost",
		).
		From(ruptureEventTable).
		LeftJoin("stores s ON s.id = re.store_id").
		Where("re.end_at IS NOT NULL").
		Where(squirrel.Gt{"re.revenue_lost": 0}).
		Where(squirrel.GtOrEq{"re.start_at": filters.StartDate}).
		Where(squirrel.LtOrEq{"re.start_at": filters.EndDate}).
		GroupBy("re.store_id", "s.name").
		OrderBy("total_revenue_lost DESC").
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

	losses := make([]*domain.StoreLoss, 0)

	for rows.Next() {
		loss := &domain.StoreLoss{}

		err = rows.Scan(&loss.StoreID, &loss.StoreName, &loss.RevenueLost)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear perda por loja: %w", err)
		}

		losses = append(losses, loss)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return losses, nil
}
