// Package reporting implementa as consultas de leitura do motor: slots
// críticos (retrato atual da loja) e ranking de perda de receita (histórico
// de eventos fechados). Os dois caminhos são independentes da ingestão e
// toleram consistência eventual.
package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/shelf-manager-api/infrastructure/repository"
	"github.com/vfg2006/shelf-manager-api/internal/config"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
	"github.com/vfg2006/shelf-manager-api/pkg/utils"
)

type Reporter interface {
	// CriticalSlots retorna os slots da loja cuja última leitura está
	// estritamente abaixo do limiar de alerta. threshold nulo usa o padrão
	// configurado.
	CriticalSlots(ctx context.Context, storeID string, threshold *float64) (*domain.CriticalSlotsResponse, error)
	// LostRevenueRanking agrega eventos fechados por produto na janela
	// informada (padrão: últimos 30 dias), ordenado por receita perdida.
	LostRevenueRanking(ctx context.Context, storeID string, filters *domain.LostRevenueFilters) (*domain.LostRevenueRankingResponse, error)
	// GetStoreLossRanking retorna o snapshot diário de perda por loja.
	GetStoreLossRanking(ctx context.Context) (*domain.StoreLossRankingResponse, error)
}

type Service struct {
	readingRepo     repository.StockReadingRepository
	eventRepo       repository.RuptureEventRepository
	lossRankingRepo repository.StoreLossRankingRepository
	detection       config.Detection
	lostRevenue     config.LostRevenue
}

func NewService(
	readingRepo repository.StockReadingRepository,
	eventRepo repository.RuptureEventRepository,
	lossRankingRepo repository.StoreLossRankingRepository,
	cfg *config.Config,
) Reporter {
	return &Service{
		readingRepo:     readingRepo,
		eventRepo:       eventRepo,
		lossRankingRepo: lossRankingRepo,
		detection:       cfg.Detection,
		lostRevenue:     cfg.LostRevenue,
	}
}

func (s *Service) CriticalSlots(ctx context.Context, storeID string, threshold *float64) (*domain.CriticalSlotsResponse, error) {
	limit := s.detection.CriticalSlotThreshold
	if threshold != nil {
		limit = *threshold
	}

	readings, err := s.readingRepo.GetLatestByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.CriticalSlot, 0)

	for _, reading := range readings {
		occupation := float64(reading.Quantity) / float64(reading.Slot.Capacity)

		// Comparação estrita: ocupação exatamente no limiar não é crítica
		if occupation >= limit {
			continue
		}

		slots = append(slots, domain.CriticalSlot{
			SlotID:          reading.Slot.ID,
			StoreID:         reading.Slot.StoreID,
			ProductID:       reading.Slot.ProductID,
			ProductName:     reading.ProductName,
			Section:         reading.Slot.Section,
			Capacity:        reading.Slot.Capacity,
			CurrentQuantity: reading.Quantity,
			Occupation:      utils.RoundWithTwoDecimalPlace(occupation),
			Status:          s.slotStatus(reading.Quantity, occupation),
			LastReadAt:      reading.ReadAt,
		})
	}

	return &domain.CriticalSlotsResponse{
		StoreID:   storeID,
		Threshold: limit,
		Slots:     slots,
	}, nil
}

// slotStatus classifica o slot em rótulos grosseiros de urgência. O limiar de
// ruptura aqui só rotula; quem registra evento é o detector, na ingestão.
func (s *Service) slotStatus(quantity int, occupation float64) string {
	switch {
	case quantity == 0:
		return domain.SlotStatusOutOfStock
	case occupation < s.detection.RuptureThreshold:
		return domain.SlotStatusCritical
	}
	return domain.SlotStatusLow
}

func (s *Service) LostRevenueRanking(ctx context.Context, storeID string, filters *domain.LostRevenueFilters) (*domain.LostRevenueRankingResponse, error) {
	if filters == nil {
		filters = &domain.LostRevenueFilters{}
	}

	now := time.Now().UTC()

	endDate := now
	if filters.EndDate != nil && !filters.EndDate.IsZero() {
		endDate = *filters.EndDate
	}

	startDate := endDate.AddDate(0, 0, -s.lostRevenue.WindowDays)
	if filters.StartDate != nil && !filters.StartDate.IsZero() {
		startDate = *filters.StartDate
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = s.lostRevenue.DefaultLimit
	}

	ranking, err := s.eventRepo.LostRevenueRanking(ctx, storeID, &domain.LostRevenueFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	return &domain.LostRevenueRankingResponse{
		StoreID:   storeID,
		StartDate: startDate,
		EndDate:   endDate,
		Ranking:   ranking,
	}, nil
}

func (s *Service) GetStoreLossRanking(ctx context.Context) (*domain.StoreLossRankingResponse, error) {
	ranking, err := s.lossRankingRepo.GetStoreLossRanking(ctx)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}
