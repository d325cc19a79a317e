package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shelf-manager-api/infrastructure/database/postgres"
)

const (
	hourlySaleTable = "hourly_sales hs"
)

// HourlySaleRepository lê o histórico de vendas por hora, populado pelo
// pipeline de importação de vendas.
type HourlySaleRepository interface {
	// AverageQuantity calcula a média aritmética de unidades vendidas por
	// hora para o par produto/loja, sobre todo o histórico disponível.
	// Retorna 0 quando não há histórico.
	//
	// Aproximação conhecida: o histórico não exclui as horas em que o próprio
	// produto estava em ruptura, então a média subestima a demanda real.
	AverageQuantity(ctx context.Context, productID, storeID string) (float64, error)
}

type hourlySaleRepository struct {
	conn *postgres.Connection
}

func NewHourlySaleRepository(conn *postgres.Connection) HourlySaleRepository {
	return &hourlySaleRepository{
		conn: conn,
	}
}

func (r *hourlySaleRepository) AverageQuantity(ctx context.Context, productID, storeID string) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(hs.quantity), 0)").
		From(hourlySaleTable).
		Where(squirrel.Eq{"hs.product_id": productID, "hs.store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var average float64

	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&average); err != nil {
		return 0, fmt.Errorf("erro ao escanear média de vendas: %w", err)
	}

	return average, nil
}
