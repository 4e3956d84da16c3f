package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-attribution-api/internal/config"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
	"github.com/vfg2006/revenue-attribution-api/internal/usecases/refreshing"
)

// RevenueRefreshConfig representa a configuração do agendador de atualização
// do snapshot de receita
type RevenueRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RevenueRefreshService gerencia o agendamento e a execução da atualização do
// snapshot de receita. Execuções sobrepostas (dois disparos próximos, ou um
// disparo manual durante a execução agendada) são serializadas: a segunda
// aguarda a primeira terminar.
type RevenueRefreshService struct {
	scheduler           *gocron.Scheduler
	config              RevenueRefreshConfig
	refresher           refreshing.Refresher
	runMutex            sync.Mutex
	stateMutex          sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.RunResult
}

// NewRevenueRefreshService cria uma nova instância do serviço de atualização
// do snapshot de receita
func NewRevenueRefreshService(
	refresher refreshing.Refresher,
	appConfig *config.Config,
) *RevenueRefreshService {
	refreshConfig := RevenueRefreshConfig{
		CronSchedule: appConfig.RevenueRefresh.CronSchedule,
		SyncEnabled:  appConfig.RevenueRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de receita carregada")

	return &RevenueRefreshService{
		scheduler: scheduler,
		config:    refreshConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *RevenueRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada do snapshot de receita desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do snapshot de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduled()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do snapshot de receita: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do snapshot de receita")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync executa o pipeline de forma síncrona e devolve o
// resultado da execução. Uma falha não derruba o processo servidor.
func (s *RevenueRefreshService) TriggerManualSync() (*domain.RunResult, error) {
	logrus.Info("Atualização manual do snapshot de receita disparada")
	return s.execute()
}

// runScheduled é o corpo da execução agendada; falhas ficam no log
func (s *RevenueRefreshService) runScheduled() {
	if _, err := s.execute(); err != nil {
		logrus.WithError(err).Error("Erro na atualização agendada do snapshot de receita")
	}
}

// execute serializa as execuções e mantém o estado para o GetStatus
func (s *RevenueRefreshService) execute() (*domain.RunResult, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	s.stateMutex.Lock()
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.stateMutex.Unlock()

	result, err := s.refresher.Run()

	s.stateMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
	s.stateMutex.Unlock()

	return result, err
}

// GetStatus retorna o estado atual do agendador para fins de observação
func (s *RevenueRefreshService) GetStatus() map[string]any {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.SyncEnabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}
	if s.lastResult != nil {
		status["last_result"] = string(s.lastResult.Status)
	}

	return status
}
