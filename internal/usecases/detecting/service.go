// Package detecting implementa a máquina de estados de ruptura por slot.
// É o único dono do ciclo de vida de RuptureEvent: abre eventos na transição
// NORMAL→RUPTURED e os fecha, com os campos financeiros congelados, na
// transição RUPTURED→NORMAL.
package detecting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shelf-manager-api/infrastructure/repository"
	"github.com/vfg2006/shelf-manager-api/internal/config"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/estimating"
	"github.com/vfg2006/shelf-manager-api/pkg/utils"
)

// Detector recebe cada leitura recém-persistida e aplica as transições da
// máquina de estados do slot
type Detector interface {
	HandleReading(ctx context.Context, slot *domain.ShelfSlot, reading *domain.StockReading) error
}

type Service struct {
	readingRepo repository.StockReadingRepository
	eventRepo   repository.RuptureEventRepository
	productRepo repository.ProductRepository
	estimator   estimating.Estimator
	config      config.Detection
}

func NewService(
	readingRepo repository.StockReadingRepository,
	eventRepo repository.RuptureEventRepository,
	productRepo repository.ProductRepository,
	estimator estimating.Estimator,
	cfg *config.Config,
) Detector {
	return &Service{
		readingRepo: readingRepo,
		eventRepo:   eventRepo,
		productRepo: productRepo,
		estimator:   estimator,
		config:      cfg.Detection,
	}
}

// HandleReading avalia a leitura contra a anterior e aplica a transição:
//   - NORMAL→RUPTURED: abre um evento (total se quantidade zerada)
//   - RUPTURED→NORMAL: fecha o evento aberto e congela a perda estimada
//   - mesmo estado: nada a fazer
//
// A leitura já está persistida quando este método roda; falha aqui nunca
// desfaz a ingestão.
func (s *Service) HandleReading(ctx context.Context, slot *domain.ShelfSlot, reading *domain.StockReading) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.StorageTimeout())
	defer cancel()

	previous, err := s.readingRepo.GetPreviousReading(ctx, slot.ID, reading.ReadAt)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar leitura anterior do slot")
	}

	evaluation := Evaluate(reading.Quantity, slot.Capacity, previous, s.config.RuptureThreshold)

	logrus.WithFields(logrus.Fields{
		"slot_id":    slot.ID,
		"occupancy":  evaluation.Occupancy,
		"is_rupture": evaluation.IsRupture,
	}).Debug("Leitura avaliada contra o limiar de ruptura")

	switch {
	case evaluation.IsRupture && !evaluation.WasRupture:
		return s.openEvent(ctx, slot, reading)
	case !evaluation.IsRupture && evaluation.WasRupture:
		return s.closeEvent(ctx, slot, reading)
	}

	return nil
}

func (s *Service) openEvent(ctx context.Context, slot *domain.ShelfSlot, reading *domain.StockReading) error {
	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar ID do evento de ruptura")
	}

	eventType := domain.RuptureFunctional
	if reading.Quantity == 0 {
		eventType = domain.RuptureTotal
	}

	event := &domain.RuptureEvent{
		ID:        id,
		StoreID:   slot.StoreID,
		ProductID: slot.ProductID,
		SlotID:    slot.ID,
		StartAt:   reading.ReadAt,
		Type:      eventType,
	}

	var inserted bool
	err = s.withRetry("abertura de evento de ruptura", func() error {
		var retryErr error
		inserted, retryErr = s.eventRepo.Open(ctx, event)
		return retryErr
	})
	if err != nil {
		return err
	}

	if !inserted {
		// Outra ingestão concorrente abriu o evento primeiro. A invariante de
		// no máximo um evento aberto por slot continua valendo.
		logrus.WithFields(logrus.Fields{
			"slot_id": slot.ID,
		}).Warn("Evento de ruptura já aberto para o slot, abertura ignorada")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"event_id": event.ID,
		"slot_id":  slot.ID,
		"type":     string(event.Type),
	}).Info("Evento de ruptura aberto")

	return nil
}

func (s *Service) closeEvent(ctx context.Context, slot *domain.ShelfSlot, reading *domain.StockReading) error {
	openEvents, err := s.eventRepo.GetOpenBySlot(ctx, slot.ID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar eventos abertos do slot")
	}

	if len(openEvents) == 0 {
		// Anomalia recuperável de bootstrap/migração: a leitura saiu de
		// ruptura sem evento aberto correspondente. A leitura já está
		// persistida; apenas registrar e seguir.
		logrus.WithFields(logrus.Fields{
			"slot_id": slot.ID,
		}).Warn("Nenhum evento de ruptura aberto para fechar, ignorando")
		return nil
	}

	if len(openEvents) > 1 {
		// Violação da invariante (bug ou anomalia de dados): fechar o mais
		// recente e registrar, sem bloquear a ingestão.
		logrus.WithFields(logrus.Fields{
			"slot_id":     slot.ID,
			"open_events": len(openEvents),
		}).Warn("Mais de um evento de ruptura aberto para o slot")
	}

	event := openEvents[0]
	endAt := reading.ReadAt
	durationHours := endAt.Sub(event.StartAt).Hours()

	avgHourlySales, err := s.estimator.AverageHourlySales(ctx, slot.ProductID, slot.StoreID)
	if err != nil {
		return errors.Wrap(err, "erro ao calcular velocidade média de vendas")
	}

	var price, marginPercent float64
	product, err := s.productRepo.GetByID(ctx, slot.ProductID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar produto do slot")
	}
	if product != nil {
		price = product.Price
		marginPercent = product.MarginPercent
	} else {
		logrus.WithFields(logrus.Fields{
			"product_id": slot.ProductID,
		}).Warn("Produto não encontrado no catálogo, perda financeira zerada")
	}

	loss := estimating.ComputeLoss(avgHourlySales, durationHours, price, marginPercent)

	closure := domain.RuptureClosure{
		EventID:       event.ID,
		EndAt:         endAt,
		DurationHours: utils.RoundWithTwoDecimalPlace(durationHours),
		UnitsNotSold:  loss.UnitsNotSold,
		RevenueLost:   loss.RevenueLost,
		MarginLost:    loss.MarginLost,
	}

	var closed bool
	err = s.withRetry("fechamento de evento de ruptura", func() error {
		var retryErr error
		closed, retryErr = s.eventRepo.Close(ctx, closure)
		return retryErr
	})
	if err != nil {
		return err
	}

	if !closed {
		// O evento já foi fechado por outra ingestão: nada a alterar.
		logrus.WithFields(logrus.Fields{
			"event_id": event.ID,
			"slot_id":  slot.ID,
		}).Warn("Evento de ruptura já fechado, fechamento ignorado")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"event_id":       event.ID,
		"slot_id":        slot.ID,
		"duration_hours": closure.DurationHours,
		"revenue_lost":   closure.RevenueLost,
	}).Info("Evento de ruptura fechado")

	return nil
}

// withRetry reexecuta escritas de armazenamento com backoff limitado antes de
// propagar o erro ao chamador
func (s *Service) withRetry(operation string, fn func() error) error {
	maxRetries := s.config.StorageMaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"attempt":   attempt,
		}).WithError(err).Warn("Falha de armazenamento, tentando novamente")

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}
	}

	return errors.Wrapf(err, "%s falhou após %d tentativas", operation, maxRetries)
}
