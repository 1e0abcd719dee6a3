package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/utils"
)

// Service implementa Reporter buscando os dados no integrator de comércio e
// agregando com BuildDashboardSummary. Com cache habilitado, consultas de um
// dia inteiro já encerrado são respondidas pelo snapshot persistido.
type Service struct {
	cfg                *config.Config
	commerceService    commerce.CommerceIntegrator
	snapshotRepository repository.DashboardSnapshotRepository
	useCache           bool
}

// NewService cria uma nova instância do serviço de relatórios do dashboard
func NewService(cfg *config.Config, commerceService commerce.CommerceIntegrator) Reporter {
	return &Service{
		cfg:             cfg,
		commerceService: commerceService,
		useCache:        false, // Inicialmente não usa cache
	}
}

// WithCache habilita o uso de snapshots persistidos do dashboard
func (s *Service) WithCache(snapshotRepo repository.DashboardSnapshotRepository) *Service {
	s.snapshotRepository = snapshotRepo
	s.useCache = snapshotRepo != nil
	return s
}

// DashboardSummary produz o resumo agregado do dashboard. A agregação nunca
// roda sobre dados parciais: qualquer falha na busca das quatro listas
// interrompe a operação com erro, e o handler decide como apresentar.
func (s *Service) DashboardSummary(filters *domain.DashboardFilters) (*domain.DashboardSummary, error) {
	if filters == nil {
		filters = &domain.DashboardFilters{StoreID: domain.AllStores}
	}

	if s.useCache {
		if snapshot := s.lookupSnapshot(filters); snapshot != nil {
			return snapshot.Summary, nil
		}
	}

	data, err := s.commerceService.FetchDashboardData()
	if err != nil {
		return nil, err
	}

	return BuildDashboardSummary(data.Transactions, data.Stores, data.Products, data.Bundles, filters), nil
}

// lookupSnapshot responde pelo cache apenas consultas de exatamente um dia já
// encerrado; qualquer outra combinação de filtros cai na busca ao vivo
func (s *Service) lookupSnapshot(filters *domain.DashboardFilters) *domain.DashboardSnapshot {
	if !filters.HasDateRange() {
		return nil
	}

	start := utils.StartOfDay(*filters.StartDate)
	end := utils.StartOfDay(*filters.EndDate)
	if !start.Equal(end) || !start.Before(utils.StartOfDay(time.Now())) {
		return nil
	}

	scope := filters.StoreID
	if scope == "" {
		scope = domain.AllStores
	}

	snapshot, err := s.snapshotRepository.GetByScopeAndDate(scope, start)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao consultar snapshot do dashboard; usando busca ao vivo")
		return nil
	}
	if snapshot == nil || snapshot.Summary == nil {
		return nil
	}

	return snapshot
}

// RefreshSnapshot recalcula o resumo de um escopo para um dia e o persiste
func (s *Service) RefreshSnapshot(scope string, date time.Time) (*domain.DashboardSnapshot, error) {
	if scope == "" {
		scope = domain.AllStores
	}

	day := utils.StartOfDay(date)
	filters := &domain.DashboardFilters{
		StoreID:   scope,
		StartDate: &day,
		EndDate:   &day,
	}

	data, err := s.commerceService.FetchDashboardData()
	if err != nil {
		return nil, err
	}

	summary := BuildDashboardSummary(data.Transactions, data.Stores, data.Products, data.Bundles, filters)

	snapshot := &domain.DashboardSnapshot{
		Scope:   scope,
		Date:    day,
		Summary: summary,
	}

	if s.snapshotRepository != nil {
		if err := s.snapshotRepository.SaveOrUpdate(snapshot); err != nil {
			return nil, err
		}
	}

	return snapshot, nil
}
