package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shelf-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shelf-manager-api/infrastructure/repository"
	"github.com/vfg2006/shelf-manager-api/internal/api"
	"github.com/vfg2006/shelf-manager-api/internal/config"
	"github.com/vfg2006/shelf-manager-api/internal/scheduler"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/detecting"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/estimating"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/ingesting"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	slotRepo := repository.NewShelfSlotRepository(pgConn)
	readingRepo := repository.NewStockReadingRepository(pgConn)
	eventRepo := repository.NewRuptureEventRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	hourlySaleRepo := repository.NewHourlySaleRepository(pgConn)
	lossRankingRepo := repository.NewStoreLossRankingRepository(pgConn)

	estimatorService := estimating.NewService(hourlySaleRepo)

	detectorService := detecting.NewService(
		readingRepo,
		eventRepo,
		productRepo,
		estimatorService,
		cfg,
	)

	ingestService := ingesting.NewService(slotRepo, readingRepo, detectorService)

	reportService := reporting.NewService(
		readingRepo,
		eventRepo,
		lossRankingRepo,
		cfg,
	)

	// Inicializa o agendador do snapshot diário de ranking de perda
	lossRankingSyncService := scheduler.NewLossRankingSyncService(
		eventRepo,
		lossRankingRepo,
		cfg,
	)

	if err := lossRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do ranking de perda")
	} else {
		logrus.Info("Agendador de snapshot do ranking de perda iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestService,
		reportService,
		lossRankingSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
