// Package estimating calcula a velocidade histórica de vendas e a atribuição
// financeira da perda durante uma ruptura
package estimating

import (
	"context"

	"github.com/vfg2006/shelf-manager-api/infrastructure/repository"
)

// Estimator define a interface de estimativa de velocidade de vendas
type Estimator interface {
	// AverageHourlySales retorna a média de unidades vendidas por hora de
	// loja aberta para o par produto/loja, sobre todo o histórico disponível.
	// Produtos sem histórico retornam 0 (perda estimada nula, não erro).
	AverageHourlySales(ctx context.Context, productID, storeID string) (float64, error)
}

type Service struct {
	hourlySaleRepo repository.HourlySaleRepository
}

func NewService(hourlySaleRepo repository.HourlySaleRepository) Estimator {
	return &Service{
		hourlySaleRepo: hourlySaleRepo,
	}
}

func (s *Service) AverageHourlySales(ctx context.Context, productID, storeID string) (float64, error) {
	return s.hourlySaleRepo.AverageQuantity(ctx, productID, storeID)
}
