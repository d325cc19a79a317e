// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shelf-manager-api/infrastructure/repository"
	"github.com/vfg2006/shelf-manager-api/internal/config"
	"github.com/vfg2006/shelf-manager-api/internal/domain"
)

type LossRankingSyncConfig struct {
	CronSchedule string
	Enabled      bool
	WindowDays   int
}

// LossRankingSyncService recalcula diariamente o ranking de perda de receita
// por loja e grava o snapshot mensal. A detecção de ruptura em si é sempre
// síncrona na ingestão; este job só materializa o relatório.
type LossRankingSyncService struct {
	scheduler           *gocron.Scheduler
	eventRepo           repository.RuptureEventRepository
	rankingRepo         repository.StoreLossRankingRepository
	config              LossRankingSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewLossRankingSyncService(
	eventRepo repository.RuptureEventRepository,
	rankingRepo repository.StoreLossRankingRepository,
	cfg *config.Config,
) *LossRankingSyncService {
	syncConfig := LossRankingSyncConfig{
		CronSchedule: cfg.LossRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.LossRankingSync.Enabled,      // Default: desabilitado
		WindowDays:   cfg.LossRankingSync.WindowDays,   // Default: 30 dias
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"window_days":   syncConfig.WindowDays,
	}).Info("Configuração do agendador do ranking de perda por loja carregada")

	return &LossRankingSyncService{
		scheduler:   scheduler,
		eventRepo:   eventRepo,
		rankingRepo: rankingRepo,
		config:      syncConfig,
	}
}

func (s *LossRankingSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do ranking de perda desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do ranking de perda por loja")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateStoreLossRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de perda por loja")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do ranking de perda: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de perda por loja")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LossRankingSyncService) UpdateStoreLossRanking() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Snapshot do ranking de perda já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização do ranking de perda por loja")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.processStoreLossRanking(ctx, time.Now()); err != nil {
		return err
	}

	logrus.Info("Atualização do ranking de perda por loja concluída")

	return nil
}

// processStoreLossRanking soma a perda da janela configurada, atribui
// posições e compara com o snapshot anterior do mês
func (s *LossRankingSyncService) processStoreLossRanking(ctx context.Context, processingDate time.Time) ([]*domain.StoreLossRankingItem, error) {
	yesterday := processingDate.AddDate(0, 0, -1)
	month := yesterday.Format("01-2006")

	endDate := processingDate
	startDate := processingDate.AddDate(0, 0, -s.config.WindowDays)

	losses, err := s.eventRepo.SumLossByStore(ctx, &domain.LostRevenueFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao somar perda de receita por loja")
		return nil, err
	}

	if len(losses) == 0 {
		logrus.Info("Nenhum evento de ruptura fechado na janela, snapshot não atualizado")
		return []*domain.StoreLossRankingItem{}, nil
	}

	// As perdas já vêm ordenadas da maior para a menor
	rankings := make([]*domain.StoreLossRankingItem, 0, len(losses))

	for position, loss := range losses {
		item := &domain.StoreLossRankingItem{
			StoreID:     loss.StoreID,
			Month:       month,
			StoreName:   loss.StoreName,
			RevenueLost: loss.RevenueLost,
			Position:    position + 1,
		}

		previous, err := s.rankingRepo.GetByStoreID(ctx, loss.StoreID, month)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"store_id": loss.StoreID,
			}).Error("Erro ao buscar snapshot anterior do ranking de perda")
			return nil, err
		}

		if previous != nil {
			item.PreviousPosition = previous.Position
			item.PositionChange = previous.Position - item.Position
		}

		rankings = append(rankings, item)
	}

	if err := s.rankingRepo.SaveOrUpdateStoreLossRanking(ctx, rankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshot do ranking de perda")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"stores": len(rankings),
		"month":  month,
	}).Info("Snapshot do ranking de perda por loja salvo")

	return rankings, nil
}

// TriggerManualSync inicia manualmente uma atualização do snapshot
func (s *LossRankingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot do ranking de perda já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de perda por loja")
	go func() {
		if err := s.UpdateStoreLossRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de perda")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *LossRankingSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_window_days":       s.config.WindowDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
