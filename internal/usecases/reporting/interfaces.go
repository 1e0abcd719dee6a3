package reporting

import (
	"time"

	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
)

// Reporter define a interface do resumo de vendas do dashboard
type Reporter interface {
	// DashboardSummary busca os dados do upstream e produz o resumo agregado
	// sob os filtros informados
	DashboardSummary(filters *domain.DashboardFilters) (*domain.DashboardSummary, error)

	// RefreshSnapshot recalcula e persiste o snapshot diário de um escopo
	RefreshSnapshot(scope string, date time.Time) (*domain.DashboardSnapshot, error)
}
