package refreshing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-attribution-api/infrastructure/repository"
	"github.com/vfg2006/revenue-attribution-api/infrastructure/snapshot"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
	"github.com/vfg2006/revenue-attribution-api/internal/usecases/attributing"
	"github.com/vfg2006/revenue-attribution-api/pkg/utils"
)

// Refresher executa o pipeline completo de atribuição de receita e grava um
// novo snapshot. Uma execução falha não toca o snapshot anterior.
type Refresher interface {
	Run() (*domain.RunResult, error)
}

type Service struct {
	crmRepo      repository.CRMRepository
	platformRepo repository.PlatformRepository
	store        snapshot.Store
	window       domain.MonthWindow
	now          func() time.Time
}

func NewService(
	crmRepo repository.CRMRepository,
	platformRepo repository.PlatformRepository,
	store snapshot.Store,
	window domain.MonthWindow,
) Refresher {
	return &Service{
		crmRepo:      crmRepo,
		platformRepo: platformRepo,
		store:        store,
		window:       window,
		now:          time.Now,
	}
}

// Run executa uma rodada síncrona do pipeline: busca os dados do warehouse,
// resolve as identidades do CRM, atribui a receita, pivota por mês e grava o
// snapshot. O marcador de atualização só muda quando a gravação teve sucesso.
func (s *Service) Run() (*domain.RunResult, error) {
	startedAt := s.now()
	runID, err := utils.GenerateID()
	if err != nil {
		runID = startedAt.Format("20060102150405")
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando execução do pipeline de atribuição de receita")

	records, stats, err := s.computeSnapshot()
	if err != nil {
		result := s.failure(runID, startedAt, "erro ao calcular o snapshot de receita", err)
		logger.WithError(err).Error("Execução do pipeline de atribuição de receita falhou")
		return result, err
	}

	generatedAt := s.now()
	if err := s.store.Write(records, generatedAt); err != nil {
		result := s.failure(runID, startedAt, "erro ao persistir o snapshot de receita", err)
		logger.WithError(err).Error("Gravação do snapshot de receita falhou; snapshot anterior preservado")
		return result, err
	}

	finishedAt := s.now()
	result := &domain.RunResult{
		ID:         runID,
		Status:     domain.RunStatusSuccess,
		Message:    "snapshot de receita atualizado com sucesso",
		Output:     utils.PrettyJson(stats),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Duration:   finishedAt.Sub(startedAt),
	}

	logger.WithFields(logrus.Fields{
		"owners":   stats["owners"],
		"lines":    stats["revenue_lines"],
		"duration": result.Duration.String(),
	}).Info("Execução do pipeline de atribuição de receita concluída")

	return result, nil
}

// computeSnapshot materializa os dados e aplica as etapas puras do pipeline
func (s *Service) computeSnapshot() ([]domain.SnapshotRecord, map[string]any, error) {
	crmCompanies, err := s.crmRepo.ListCompanies()
	if err != nil {
		return nil, nil, err
	}

	owners, err := s.crmRepo.ListOwners()
	if err != nil {
		return nil, nil, err
	}

	companies, err := s.platformRepo.ListCompanies()
	if err != nil {
		return nil, nil, err
	}

	orders, err := s.platformRepo.ListOrders()
	if err != nil {
		return nil, nil, err
	}

	samples, err := s.platformRepo.ListSamples()
	if err != nil {
		return nil, nil, err
	}

	tests, err := s.platformRepo.ListTests()
	if err != nil {
		return nil, nil, err
	}

	canonical := attributing.ResolveCanonical(crmCompanies)

	dataset := attributing.Dataset{
		Companies: companies,
		Orders:    orders,
		Samples:   samples,
		Tests:     tests,
	}

	lines, err := attributing.Attribute(dataset, canonical, owners, s.window)
	if err != nil {
		return nil, nil, err
	}

	records := attributing.PivotMonthly(lines, s.window)

	stats := map[string]any{
		"crm_companies":     len(crmCompanies),
		"canonical_domains": len(canonical),
		"tests":             len(tests),
		"revenue_lines":     len(lines),
		"owners":            len(records),
		"window_months":     s.window.Keys(),
	}

	return records, stats, nil
}

func (s *Service) failure(runID string, startedAt time.Time, message string, err error) *domain.RunResult {
	finishedAt := s.now()
	return &domain.RunResult{
		ID:         runID,
		Status:     domain.RunStatusError,
		Message:    message,
		Output:     err.Error(),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Duration:   finishedAt.Sub(startedAt),
	}
}
