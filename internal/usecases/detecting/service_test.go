package detecting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shelf-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shelf-manager-api/internal/config"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
	estimatingmocks "github.com/vfg2006/shelf-manager-api/internal/usecases/estimating/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(
	readingRepo *mocks.MockStockReadingRepository,
	eventRepo *mocks.MockRuptureEventRepository,
	productRepo *mocks.MockProductRepository,
	estimator *estimatingmocks.MockEstimator,
) *Service {
	return &Service{
		readingRepo: readingRepo,
		eventRepo:   eventRepo,
		productRepo: productRepo,
		estimator:   estimator,
		config: config.Detection{
			RuptureThreshold:      0.10,
			CriticalSlotThreshold: 0.40,
			StorageTimeoutSeconds: 5,
			StorageMaxRetries:     1,
		},
	}
}

func testSlot() *domain.ShelfSlot {
	return &domain.ShelfSlot{
		ID:        "SLOT01",
		StoreID:   "STORE01",
		ProductID: "PROD01",
		Capacity:  20,
	}
}

// Sequência de leituras [10, 10, 0, 0, 10] em um slot de capacidade 20:
// deve abrir exatamente um evento (na terceira leitura) e fechá-lo exatamente
// uma vez (na quinta), ignorando as leituras que não mudam de estado.
func TestService_HandleReading_SequenciaCompleta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockEstimator := estimatingmocks.NewMockEstimator(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockProductRepo, mockEstimator)

	slot := testSlot()
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	quantities := []int{10, 10, 0, 0, 10}
	readings := make([]*domain.StockReading, len(quantities))
	for i, qty := range quantities {
		readings[i] = &domain.StockReading{
			ID:       "read-" + string(rune('a'+i)),
			SlotID:   slot.ID,
			StoreID:  slot.StoreID,
			Quantity: qty,
			Source:   domain.SourceApp,
			ReadAt:   base.Add(time.Duration(i) * time.Hour),
		}
	}

	// Leitura anterior de cada passo (nil no primeiro)
	mockReadingRepo.EXPECT().GetPreviousReading(gomock.Any(), slot.ID, readings[0].ReadAt).Return(nil, nil)
	mockReadingRepo.EXPECT().GetPreviousReading(gomock.Any(), slot.ID, readings[1].ReadAt).Return(readings[0], nil)
	mockReadingRepo.EXPECT().GetPreviousReading(gomock.Any(), slot.ID, readings[2].ReadAt).Return(readings[1], nil)
	mockReadingRepo.EXPECT().GetPreviousReading(gomock.Any(), slot.ID, readings[3].ReadAt).Return(readings[2], nil)
	mockReadingRepo.EXPECT().GetPreviousReading(gomock.Any(), slot.ID, readings[4].ReadAt).Return(readings[3], nil)

	var openedEvent *domain.RuptureEvent

	// Abertura: exatamente uma, na transição da terceira leitura
	mockEventRepo.EXPECT().
		Open(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.RuptureEvent) (bool, error) {
			openedEvent = event
			assert.Equal(t, slot.ID, event.SlotID)
			assert.Equal(t, readings[2].ReadAt, event.StartAt)
			assert.Equal(t, domain.RuptureTotal, event.Type)
			return true, nil
		}).
		Times(1)

	// Fechamento: exatamente um, na transição da quinta leitura
	mockEventRepo.EXPECT().
		GetOpenBySlot(gomock.Any(), slot.ID).
		DoAndReturn(func(_ context.Context, _ string) ([]*domain.RuptureEvent, error) {
			return []*domain.RuptureEvent{openedEvent}, nil
		}).
		Times(1)

	mockEstimator.EXPECT().
		AverageHourlySales(gomock.Any(), slot.ProductID, slot.StoreID).
		Return(3.0, nil).
		Times(1)

	mockProductRepo.EXPECT().
		GetByID(gomock.Any(), slot.ProductID).
		Return(&domain.Product{ID: slot.ProductID, Price: 5.0, MarginPercent: 30.0}, nil).
		Times(1)

	mockEventRepo.EXPECT().
		Close(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, closure domain.RuptureClosure) (bool, error) {
			assert.Equal(t, openedEvent.ID, closure.EventID)
			assert.Equal(t, readings[4].ReadAt, closure.EndAt)
			// Ruptura da terceira à quinta leitura: 2 horas a 3 unidades/hora,
			// 6 unidades × R$ 5,00 = R$ 30,00 de receita e 30% disso de margem
			assert.Equal(t, 2.0, closure.DurationHours)
			assert.Equal(t, 6.0, closure.UnitsNotSold)
			assert.Equal(t, 30.0, closure.RevenueLost)
			assert.Equal(t, 9.0, closure.MarginLost)
			return true, nil
		}).
		Times(1)

	for _, reading := range readings {
		err := service.HandleReading(context.Background(), slot, reading)
		assert.NoError(t, err)
	}
}

// Evento aberto às 08h e fechado às 13h de um produto a R$ 5,00 com margem de
// 30% e giro médio de 3 unidades/hora: duração 5h, 15 unidades não vendidas,
// R$ 75,00 de receita perdida e R$ 22,50 de margem perdida.
func TestService_HandleReading_CongelaPerdaNoFechamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockEstimator := estimatingmocks.NewMockEstimator(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockProductRepo, mockEstimator)

	slot := testSlot()
	startAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	reading := &domain.StockReading{
		ID:       "read-restock",
		SlotID:   slot.ID,
		StoreID:  slot.StoreID,
		Quantity: 18,
		Source:   domain.SourceManual,
		ReadAt:   startAt.Add(5 * time.Hour),
	}

	mockReadingRepo.EXPECT().
		GetPreviousReading(gomock.Any(), slot.ID, reading.ReadAt).
		Return(&domain.StockReading{Quantity: 0, ReadAt: startAt.Add(4 * time.Hour)}, nil)

	mockEventRepo.EXPECT().
		GetOpenBySlot(gomock.Any(), slot.ID).
		Return([]*domain.RuptureEvent{
			{ID: "EVT001", SlotID: slot.ID, StoreID: slot.StoreID, ProductID: slot.ProductID, StartAt: startAt, Type: domain.RuptureTotal},
		}, nil)

	mockEstimator.EXPECT().
		AverageHourlySales(gomock.Any(), slot.ProductID, slot.StoreID).
		Return(3.0, nil)

	mockProductRepo.EXPECT().
		GetByID(gomock.Any(), slot.ProductID).
		Return(&domain.Product{ID: slot.ProductID, Price: 5.0, MarginPercent: 30.0}, nil)

	mockEventRepo.EXPECT().
		Close(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, closure domain.RuptureClosure) (bool, error) {
			assert.Equal(t, "EVT001", closure.EventID)
			assert.Equal(t, 5.0, closure.DurationHours)
			assert.Equal(t, 15.0, closure.UnitsNotSold)
			assert.Equal(t, 75.0, closure.RevenueLost)
			assert.Equal(t, 22.5, closure.MarginLost)
			return true, nil
		})

	err := service.HandleReading(context.Background(), slot, reading)
	assert.NoError(t, err)
}

func TestService_HandleReading_FechamentoSemEventoAberto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockEstimator := estimatingmocks.NewMockEstimator(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockProductRepo, mockEstimator)

	slot := testSlot()
	reading := &domain.StockReading{
		ID:       "read-orphan",
		SlotID:   slot.ID,
		StoreID:  slot.StoreID,
		Quantity: 15,
		Source:   domain.SourceVision,
		ReadAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	mockReadingRepo.EXPECT().
		GetPreviousReading(gomock.Any(), slot.ID, reading.ReadAt).
		Return(&domain.StockReading{Quantity: 0}, nil)

	// Saiu de ruptura sem evento aberto: anomalia tolerada, nenhum Close
	mockEventRepo.EXPECT().
		GetOpenBySlot(gomock.Any(), slot.ID).
		Return([]*domain.RuptureEvent{}, nil)

	err := service.HandleReading(context.Background(), slot, reading)
	assert.NoError(t, err)
}

func TestService_HandleReading_AberturaJaExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockEstimator := estimatingmocks.NewMockEstimator(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockProductRepo, mockEstimator)

	slot := testSlot()
	reading := &domain.StockReading{
		ID:       "read-race",
		SlotID:   slot.ID,
		StoreID:  slot.StoreID,
		Quantity: 0,
		Source:   domain.SourceApp,
		ReadAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	mockReadingRepo.EXPECT().
		GetPreviousReading(gomock.Any(), slot.ID, reading.ReadAt).
		Return(&domain.StockReading{Quantity: 10}, nil)

	// Ingestão concorrente já abriu o evento: o INSERT condicional não insere
	// e a invariante de no máximo um evento aberto por slot é preservada
	mockEventRepo.EXPECT().
		Open(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := service.HandleReading(context.Background(), slot, reading)
	assert.NoError(t, err)
}

func TestService_HandleReading_MaisDeUmEventoAberto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockEstimator := estimatingmocks.NewMockEstimator(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockProductRepo, mockEstimator)

	slot := testSlot()
	startRecent := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	reading := &domain.StockReading{
		ID:       "read-anomaly",
		SlotID:   slot.ID,
		StoreID:  slot.StoreID,
		Quantity: 16,
		Source:   domain.SourceManual,
		ReadAt:   startRecent.Add(2 * time.Hour),
	}

	mockReadingRepo.EXPECT().
		GetPreviousReading(gomock.Any(), slot.ID, reading.ReadAt).
		Return(&domain.StockReading{Quantity: 0}, nil)

	// Dois eventos abertos (violação da invariante): fecha o mais recente,
	// que o repositório devolve primeiro
	mockEventRepo.EXPECT().
		GetOpenBySlot(gomock.Any(), slot.ID).
		Return([]*domain.RuptureEvent{
			{ID: "EVT-RECENT", SlotID: slot.ID, ProductID: slot.ProductID, StartAt: startRecent, Type: domain.RuptureTotal},
			{ID: "EVT-STALE", SlotID: slot.ID, ProductID: slot.ProductID, StartAt: startRecent.AddDate(0, 0, -3), Type: domain.RuptureTotal},
		}, nil)

	mockEstimator.EXPECT().
		AverageHourlySales(gomock.Any(), slot.ProductID, slot.StoreID).
		Return(1.0, nil)

	mockProductRepo.EXPECT().
		GetByID(gomock.Any(), slot.ProductID).
		Return(&domain.Product{ID: slot.ProductID, Price: 10.0, MarginPercent: 50.0}, nil)

	mockEventRepo.EXPECT().
		Close(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, closure domain.RuptureClosure) (bool, error) {
			assert.Equal(t, "EVT-RECENT", closure.EventID)
			return true, nil
		})

	err := service.HandleReading(context.Background(), slot, reading)
	assert.NoError(t, err)
}

func TestService_HandleReading_ProdutoForaDoCatalogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReadingRepo := mocks.NewMockStockReadingRepository(ctrl)
	mockEventRepo := mocks.NewMockRuptureEventRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockEstimator := estimatingmocks.NewMockEstimator(ctrl)

	service := newTestService(mockReadingRepo, mockEventRepo, mockProductRepo, mockEstimator)

	slot := testSlot()
	startAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	reading := &domain.StockReading{
		ID:       "read-noprod",
		SlotID:   slot.ID,
		StoreID:  slot.StoreID,
		Quantity: 14,
		Source:   domain.SourceApp,
		ReadAt:   startAt.Add(3 * time.Hour),
	}

	mockReadingRepo.EXPECT().
		GetPreviousReading(gomock.Any(), slot.ID, reading.ReadAt).
		Return(&domain.StockReading{Quantity: 0}, nil)

	mockEventRepo.EXPECT().
		GetOpenBySlot(gomock.Any(), slot.ID).
		Return([]*domain.RuptureEvent{
			{ID: "EVT002", SlotID: slot.ID, ProductID: slot.ProductID, StartAt: startAt, Type: domain.RuptureTotal},
		}, nil)

	mockEstimator.EXPECT().
		AverageHourlySales(gomock.Any(), slot.ProductID, slot.StoreID).
		Return(4.0, nil)

	// Produto removido do catálogo: fecha com perda financeira zerada
	mockProductRepo.EXPECT().
		GetByID(gomock.Any(), slot.ProductID).
		Return(nil, nil)

	mockEventRepo.EXPECT().
		Close(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, closure domain.RuptureClosure) (bool, error) {
			assert.Equal(t, 3.0, closure.DurationHours)
			assert.Equal(t, 12.0, closure.UnitsNotSold)
			assert.Equal(t, 0.0, closure.RevenueLost)
			assert.Equal(t, 0.0, closure.MarginLost)
			return true, nil
		})

	err := service.HandleReading(context.Background(), slot, reading)
	assert.NoError(t, err)
}
