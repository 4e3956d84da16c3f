package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-attribution-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-attribution-api/infrastructure/repository"
	"github.com/vfg2006/revenue-attribution-api/infrastructure/snapshot"
	"github.com/vfg2006/revenue-attribution-api/internal/api"
	"github.com/vfg2006/revenue-attribution-api/internal/config"
	"github.com/vfg2006/revenue-attribution-api/internal/scheduler"
	"github.com/vfg2006/revenue-attribution-api/internal/usecases/refreshing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		// Configuração inválida (ex.: token do warehouse ausente) é fatal:
		// o processo não sobe para servir nem consultar
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

	warehouseConn := warehouseconn(ctx, cfg.Warehouse)
	defer warehouseConn.Close()

	crmRepo := repository.NewCRMRepository(warehouseConn)
	platformRepo := repository.NewPlatformRepository(warehouseConn)

	snapshotStore := snapshot.NewFileStore(cfg.Snapshot.DataPath, cfg.Snapshot.LastUpdatedPath)

	window, err := cfg.Window()
	if err != nil {
		logrus.Fatal(err)
	}

	refreshService := refreshing.NewService(crmRepo, platformRepo, snapshotStore, window)

	// Inicializa o agendador de atualização do snapshot de receita
	revenueRefreshService := scheduler.NewRevenueRefreshService(refreshService, cfg)

	if err := revenueRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do snapshot de receita")
	} else {
		logrus.Info("Agendador de atualização do snapshot de receita iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		snapshotStore,
		revenueRefreshService,
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

// warehouseconn cria uma conexão com o data warehouse
func warehouseconn(ctx context.Context, warehouseConfig config.Warehouse) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, warehouseConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao warehouse")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o warehouse")
	}

	logrus.Info("Conexão com o warehouse estabelecida com sucesso")
	return conn
}
