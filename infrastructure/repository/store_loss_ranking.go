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
	storeLossRankingTable = "store_loss_ranking slr"
)

type StoreLossRankingRepository interface {
	GetByStoreID(ctx context.Context, storeID string, month string) (*domain.StoreLossRankingItem, error)
	GetStoreLossRanking(ctx context.Context) (*domain.StoreLossRankingResponse, error)
	SaveOrUpdateStoreLossRanking(ctx context.Context, rankings []*domain.StoreLossRankingItem) error
}

type storeLossRankingRepository struct {
	conn *postgres.Connection
}

func NewStoreLossRankingRepository(conn *postgres.Connection) StoreLossRankingRepository {
	return &storeLossRankingRepository{
		conn: conn,
	}
}

func (r *storeLossRankingRepository) GetStoreLossRanking(ctx context.Context) (*domain.StoreLossRankingResponse, error) {
	yesterday := time.Now().AddDate(0, 0, -1)
	month := yesterday.Format("01-2006")

	// Construir a query base
	queryBuilder := squirrel.
		Select(
			"slr.id",
			"slr.store_id",
			"slr.month",
			"slr.store_name",
			"slr.revenue_lost",
			"slr.position",
			"slr.position_change",
			"slr.previous_position",
			"slr.created_at",
			"slr.updated_at",
		).
		From(storeLossRankingTable).
		Where(squirrel.Eq{"slr.month": month}).
		OrderBy("slr.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.StoreLossRankingResponse{
				Ranking:    []domain.StoreLossRankingItem{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	// Processar os resultados
	rankings := make([]domain.StoreLossRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := r.scanStoreLossRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// Se não há registros, usar tempo atual para lastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.StoreLossRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *storeLossRankingRepository) GetByStoreID(ctx context.Context, storeID string, month string) (*domain.StoreLossRankingItem, error) {
	query, args, err := squirrel.
		Select("slr.id, slr.store_id, slr.month, slr.store_name, slr.revenue_lost, slr.position, slr.position_change, slr.previous_position, slr.created_at, slr.updated_at").
		From(storeLossRankingTable).
		Where(squirrel.Eq{"slr.store_id": storeID, "slr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	ranking, err := r.scanStoreLossRankingItemRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return ranking, nil
}

func (r *storeLossRankingRepository) SaveOrUpdateStoreLossRanking(ctx context.Context, rankings []*domain.StoreLossRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := squirrel.StatementBuilder.
		Insert("store_loss_ranking").
		Columns(
			"store_id",
			"month",
			"store_name",
			"revenue_lost",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.StoreID,
			ranking.Month,
			ranking.StoreName,
			ranking.RevenueLost,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	// Configurar comportamento de conflito (upsert)
	query = query.Suffix(`
		ON CONFLICT (store_id, month) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			revenue_lost = EXCLUDED.revenue_lost,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *storeLossRankingRepository) scanStoreLossRankingItem(rows *sql.Rows) (*domain.StoreLossRankingItem, error) {
	item := &domain.StoreLossRankingItem{}

	err := rows.Scan(
		&item.ID,
		&item.StoreID,
		&item.Month,
		&item.StoreName,
		&item.RevenueLost,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *storeLossRankingRepository) scanStoreLossRankingItemRow(row *sql.Row) (*domain.StoreLossRankingItem, error) {
	item := &domain.StoreLossRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.StoreID,
		&item.Month,
		&item.StoreName,
		&item.RevenueLost,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
