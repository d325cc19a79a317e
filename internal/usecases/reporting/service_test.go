package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shelf-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shelf-manager-api/internal/config"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(
	readingRepo *mocks.MockStockReadingRepository,
	eventRepo *mocks.MockRuptureEventRepository,
	lossRankingRepo *mocks.MockStoreLossRankingRepository,
) *Service {
	return &Service{
		readingRepo:     readingRepo,
		eventRepo:       eventRepo,
		lossRankingRepo: lossRankingRepo,
		detection: config.Detection{
			RuptureThreshold:      0.10,
			CriticalSlotThreshold: 0.40,
		},
		lostRevenue: config.LostRevenue{
			WindowDays:   30,
			DefaultLimit: 10,
		},
	}
}

func latestReading(slotID string, capacity, quantity int, productName string) *domain.LatestSlotReading {
	name := productName
	return &domain.LatestSlotReading{
		Slot: domain.ShelfSlot{
			ID:        slotID,
			StoreID:   "STORE01",
			ProductID: "PROD-" + slotID,
			Capacity:  capacity,
		},
		ProductName: &name,
		Quantity:    quantity,
		ReadAt:      time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
	}
}

func TestService_CriticalSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockLossRankingRepo := mocks.NewMockStoreLossRankingRepository(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockLossRankingRepo)

	mockReadingRepo.EXPECT().
		GetLatestByStore(gomock.Any(), "STORE01").
		// Ocupações: 0.00 (out_of_stock), 0.05 (critical), 0.25 (low),
		// 0.40 (exatamente no limiar, fora) e 0.75 (fora)
		Return([]*domain.LatestSlotReading{
			latestReading("SLOT-ZERO", 20, 0, "Arroz 5kg"),
			latestReading("SLOT-CRIT", 20, 1, "Feijão 1kg"),
			latestReading("SLOT-LOW", 20, 5, "Óleo de soja"),
			latestReading("SLOT-EDGE", 20, 8, "Açúcar refinado"),
			latestReading("SLOT-OK", 20, 15, "Café torrado"),
		}, nil)

	result, err := service.CriticalSlots(context.Background(), "STORE01", nil)

	assert.NoError(t, err)
	assert.Equal(t, "STORE01", result.StoreID)
	assert.Equal(t, 0.40, result.Threshold)

	// Comparação estrita: ocupação exatamente no limiar não entra na lista
	assert.Len(t, result.Slots, 3)

	assert.Equal(t, "SLOT-ZERO", result.Slots[0].SlotID)
	assert.Equal(t, domain.SlotStatusOutOfStock, result.Slots[0].Status)
	assert.Equal(t, 0.0, result.Slots[0].Occupation)

	assert.Equal(t, "SLOT-CRIT", result.Slots[1].SlotID)
	assert.Equal(t, domain.SlotStatusCritical, result.Slots[1].Status)
	assert.Equal(t, 0.05, result.Slots[1].Occupation)

	assert.Equal(t, "SLOT-LOW", result.Slots[2].SlotID)
	assert.Equal(t, domain.SlotStatusLow, result.Slots[2].Status)
	assert.Equal(t, 0.25, result.Slots[2].Occupation)
}

func TestService_CriticalSlots_ThresholdCustomizado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockLossRankingRepo := mocks.NewMockStoreLossRankingRepository(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockLossRankingRepo)

	mockReadingRepo.EXPECT().
		GetLatestByStore(gomock.Any(), "STORE01").
		// Ocupações 0.25 e 0.75: ambas abaixo do limiar customizado de 0.80
		Return([]*domain.LatestSlotReading{
			latestReading("SLOT-A", 20, 5, "Arroz 5kg"),
			latestReading("SLOT-B", 20, 15, "Café moído"),
		}, nil)

	threshold := 0.80
	result, err := service.CriticalSlots(context.Background(), "STORE01", &threshold)

	assert.NoError(t, err)
	assert.Equal(t, 0.80, result.Threshold)
	assert.Len(t, result.Slots, 2)
}

func TestService_CriticalSlots_LojaSemLeituras(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockLossRankingRepo := mocks.NewMockStoreLossRankingRepository(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockLossRankingRepo)

	mockReadingRepo.EXPECT().
		GetLatestByStore(gomock.Any(), "STORE02").
		Return([]*domain.LatestSlotReading{}, nil)

	result, err := service.CriticalSlots(context.Background(), "STORE02", nil)

	assert.NoError(t, err)
	assert.NotNil(t, result.Slots)
	assert.Empty(t, result.Slots)
}

func TestService_LostRevenueRanking_JanelaPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockLossRankingRepo := mocks.NewMockStoreLossRankingRepository(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockLossRankingRepo)

	mockEventRepo.EXPECT().
		LostRevenueRanking(gomock.Any(), "STORE01", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters *domain.LostRevenueFilters) ([]domain.LostRevenueItem, error) {
			// Sem filtros informados: janela de 30 dias e limite padrão
			assert.Equal(t, 10, filters.Limit)
			assert.NotNil(t, filters.StartDate)
			assert.NotNil(t, filters.EndDate)
			assert.InDelta(t, 30*24.0, filters.EndDate.Sub(*filters.StartDate).Hours(), 0.01)

			return []domain.LostRevenueItem{
				{
					ProductID:         "PROD01",
					Product:           &domain.Product{ID: "PROD01", Name: "Arroz 5kg", Price: 22.90},
					EventCount:        4,
					TotalUnitsNotSold: 37.5,
					TotalRevenueLost:  858.75,
					TotalMarginLost:   214.69,
				},
			}, nil
		})

	result, err := service.LostRevenueRanking(context.Background(), "STORE01", nil)

	assert.NoError(t, err)
	assert.Equal(t, "STORE01", result.StoreID)
	assert.Len(t, result.Ranking, 1)
	assert.Equal(t, 858.75, result.Ranking[0].TotalRevenueLost)
}

func TestService_LostRevenueRanking_ProdutoRemovidoDoCatalogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockLossRankingRepo := mocks.NewMockStoreLossRankingRepository(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockLossRankingRepo)

	// Produto fora do catálogo aparece com Product nulo, sem quebrar a consulta
	mockEventRepo.EXPECT().
		LostRevenueRanking(gomock.Any(), "STORE01", gomock.Any()).
		Return([]domain.LostRevenueItem{
			{
				ProductID:        "PROD-GONE",
				Product:          nil,
				EventCount:       2,
				TotalRevenueLost: 120.0,
			},
		}, nil)

	result, err := service.LostRevenueRanking(context.Background(), "STORE01", nil)

	assert.NoError(t, err)
	assert.Len(t, result.Ranking, 1)
	assert.Nil(t, result.Ranking[0].Product)
	assert.Equal(t, "PROD-GONE", result.Ranking[0].ProductID)
}

func TestService_LostRevenueRanking_JanelaVaziaNaoEhErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockLossRankingRepo := mocks.NewMockStoreLossRankingRepository(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockLossRankingRepo)

	mockEventRepo.EXPECT().
		LostRevenueRanking(gomock.Any(), "STORE01", gomock.Any()).
		Return([]domain.LostRevenueItem{}, nil)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	result, err := service.LostRevenueRanking(context.Background(), "STORE01", &domain.LostRevenueFilters{
		StartDate: &start,
		EndDate:   &end,
		Limit:     5,
	})

	assert.NoError(t, err)
	assert.Empty(t, result.Ranking)
	assert.Equal(t, start, result.StartDate)
	assert.Equal(t, end, result.EndDate)
}

func TestService_GetStoreLossRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockLossRankingRepo := mocks.NewMockStoreLossRankingRepository(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockLossRankingRepo)

	mockLossRankingRepo.EXPECT().
		GetStoreLossRanking(gomock.Any()).
		Return(&domain.StoreLossRankingResponse{
			Ranking: []domain.StoreLossRankingItem{
				{StoreID: "STORE02", Position: 1, RevenueLost: 980.50},
				{StoreID: "STORE01", Position: 2, RevenueLost: 410.00},
			},
		}, nil)

	result, err := service.GetStoreLossRanking(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result.Ranking, 2)
	assert.Equal(t, "STORE02", result.Ranking[0].StoreID)
}
