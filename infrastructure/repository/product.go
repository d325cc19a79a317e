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
	productTable = "products p"
)

// ProductRepository lê o catálogo de produtos. O catálogo pertence a outro
// módulo da plataforma; aqui o acesso é somente leitura.
type ProductRepository interface {
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// GetByID retorna nil quando o produto não existe
func (r *productRepository) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id", "p.name", "p.brand", "p.price", "p.margin_percent").
		From(productTable).
		Where(squirrel.Eq{"p.id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}

	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(
		&product.ID,
		&product.Name,
		&product.Brand,
		&product.Price,
		&product.MarginPercent,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}
