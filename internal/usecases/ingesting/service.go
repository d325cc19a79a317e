// Package ingesting valida e persiste leituras de ocupação de gôndola e
// aciona o motor de detecção de ruptura de forma síncrona
package ingesting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shelf-manager-api/infrastructure/repository"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/detecting"
	"github.com/vfg2006/shelf-manager-api/pkg/apiErrors"
)

type Ingestor interface {
	Ingest(ctx context.Context, input domain.NewStockReading) (*domain.StockReading, error)
}

type Service struct {
	slotRepo    repository.ShelfSlotRepository
	readingRepo repository.StockReadingRepository
	detector    detecting.Detector
}

func NewService(
	slotRepo repository.ShelfSlotRepository,
	readingRepo repository.StockReadingRepository,
	detector detecting.Detector,
) Ingestor {
	return &Service{
		slotRepo:    slotRepo,
		readingRepo: readingRepo,
		detector:    detector,
	}
}

// Ingest valida a leitura, grava no log append-only e encaminha ao detector.
// A gravação acontece antes da detecção: mesmo que o motor falhe, a leitura
// permanece persistida e o log continua sendo a fonte de verdade.
func (s *Service) Ingest(ctx context.Context, input domain.NewStockReading) (*domain.StockReading, error) {
	if input.Quantity < 0 {
		return nil, NewIngestError(ErrInvalidQuantity, apiErrors.ErrInvalidRequest, "quantity must be >= 0")
	}

	if !domain.ValidSource(input.Source) {
		return nil, NewIngestError(ErrInvalidSource, apiErrors.ErrInvalidFormat, string(input.Source))
	}

	slot, err := s.slotRepo.GetByID(ctx, input.SlotID)
	if err != nil {
		return nil, NewIngestErrorWithSlot(ErrSaveReading, apiErrors.ErrDatabaseOperation, input.SlotID, err.Error())
	}

	if slot == nil {
		return nil, NewIngestErrorWithSlot(ErrSlotNotFound, apiErrors.ErrSlotNotFound, input.SlotID, "")
	}

	if slot.StoreID != input.StoreID {
		return nil, NewIngestErrorWithSlot(ErrStoreMismatch, apiErrors.ErrStoreMismatch, input.SlotID, "")
	}

	// Capacidade não calculada é um erro explícito e distinto: sem capacidade
	// não existe ocupação, e sem ocupação a máquina de estados não roda.
	if !slot.HasComputedCapacity() {
		return nil, NewIngestErrorWithSlot(ErrCapacityNotComputed, apiErrors.ErrCapacityNotComputed, input.SlotID, "")
	}

	reading := &domain.StockReading{
		ID:       uuid.New().String(),
		SlotID:   slot.ID,
		StoreID:  slot.StoreID,
		Quantity: input.Quantity,
		Source:   input.Source,
		ReadAt:   time.Now().UTC(),
	}

	if err := s.readingRepo.Insert(ctx, reading); err != nil {
		return nil, NewIngestErrorWithSlot(ErrSaveReading, apiErrors.ErrDatabaseOperation, slot.ID, err.Error())
	}

	if err := s.detector.HandleReading(ctx, slot, reading); err != nil {
		// A leitura já é durável; o estado derivado de eventos pode ficar
		// temporariamente atrasado e será corrigido pelas próximas leituras.
		logrus.WithFields(logrus.Fields{
			"slot_id":    slot.ID,
			"reading_id": reading.ID,
		}).WithError(err).Error("Detecção de ruptura falhou após persistir a leitura")

		return nil, NewIngestErrorWithSlot(ErrDetectionFailed, apiErrors.ErrDetectionFailure, slot.ID, err.Error())
	}

	return reading, nil
}
