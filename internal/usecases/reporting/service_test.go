package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce"
	commercemocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce/mocks"
	repositorymocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestDashboardSummaryWithCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)
	mockSnapshotRepo := repositorymocks.NewMockDashboardSnapshotRepository(ctrl)

	service := &Service{
		commerceService:    mockIntegrator,
		snapshotRepository: mockSnapshotRepo,
		useCache:           true,
	}

	yesterday := utils.StartOfDay(time.Now().AddDate(0, 0, -1))
	cachedSummary := &domain.DashboardSummary{TotalOverallRevenue: 321.99}

	liveData := &commerce.DashboardData{
		Transactions: []domain.Transaction{
			{
				Id:              "t1",
				StoreId:         "store-1",
				TotalAmount:     50,
				TransactionDate: yesterday.Add(10 * time.Hour),
			},
		},
		Stores: []domain.Store{{Id: "store-1", Name: "Loja Centro"}},
	}

	testCases := []struct {
		name     string
		filters  *domain.DashboardFilters
		setup    func()
		validate func(t *testing.T, summary *domain.DashboardSummary, err error)
	}{
		{
			name: "Consulta de um dia inteiro já encerrado - deve responder pelo snapshot",
			filters: &domain.DashboardFilters{
				StoreID:   "store-1",
				StartDate: &yesterday,
				EndDate:   &yesterday,
			},
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetByScopeAndDate("store-1", yesterday).
					Return(&domain.DashboardSnapshot{
						Scope:   "store-1",
						Date:    yesterday,
						Summary: cachedSummary,
					}, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, cachedSummary, summary)
			},
		},
		{
			name: "Snapshot inexistente - deve cair na busca ao vivo",
			filters: &domain.DashboardFilters{
				StoreID:   "store-1",
				StartDate: &yesterday,
				EndDate:   &yesterday,
			},
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetByScopeAndDate("store-1", yesterday).
					Return(nil, nil)
				mockIntegrator.EXPECT().FetchDashboardData().Return(liveData, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 50.0, summary.TotalOverallRevenue)
				assert.Equal(t, "Loja Centro", summary.TopStores[0].Name)
			},
		},
		{
			name: "Erro ao consultar o snapshot - deve cair na busca ao vivo",
			filters: &domain.DashboardFilters{
				StoreID:   "store-1",
				StartDate: &yesterday,
				EndDate:   &yesterday,
			},
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetByScopeAndDate("store-1", yesterday).
					Return(nil, errors.New("conexão perdida"))
				mockIntegrator.EXPECT().FetchDashboardData().Return(liveData, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 50.0, summary.TotalOverallRevenue)
			},
		},
		{
			name: "Intervalo de mais de um dia - não deve consultar o cache",
			filters: func() *domain.DashboardFilters {
				start := utils.StartOfDay(time.Now().AddDate(0, 0, -7))
				return &domain.DashboardFilters{
					StoreID:   domain.AllStores,
					StartDate: &start,
					EndDate:   &yesterday,
				}
			}(),
			setup: func() {
				mockIntegrator.EXPECT().FetchDashboardData().Return(liveData, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, summary)
			},
		},
		{
			name: "Consulta do dia corrente - não deve consultar o cache",
			filters: func() *domain.DashboardFilters {
				today := utils.StartOfDay(time.Now())
				return &domain.DashboardFilters{
					StoreID:   "store-1",
					StartDate: &today,
					EndDate:   &today,
				}
			}(),
			setup: func() {
				mockIntegrator.EXPECT().FetchDashboardData().Return(liveData, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, summary)
			},
		},
		{
			name:    "Falha na busca ao vivo - deve propagar o erro sem resumo parcial",
			filters: &domain.DashboardFilters{StoreID: domain.AllStores},
			setup: func() {
				mockIntegrator.EXPECT().
					FetchDashboardData().
					Return(nil, errors.New("upstream indisponível"))
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.Error(t, err)
				assert.Nil(t, summary)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			summary, err := service.DashboardSummary(tc.filters)
			tc.validate(t, summary, err)
		})
	}
}

func TestRefreshSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)
	mockSnapshotRepo := repositorymocks.NewMockDashboardSnapshotRepository(ctrl)

	service := &Service{
		commerceService:    mockIntegrator,
		snapshotRepository: mockSnapshotRepo,
		useCache:           true,
	}

	day := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	normalizedDay := utils.StartOfDay(day)

	data := &commerce.DashboardData{
		Transactions: []domain.Transaction{
			{
				Id:              "t1",
				StoreId:         "store-1",
				TotalAmount:     80,
				TransactionDate: normalizedDay.Add(8 * time.Hour),
			},
			{
				Id:              "t2",
				StoreId:         "store-2",
				TotalAmount:     999,
				TransactionDate: normalizedDay.Add(9 * time.Hour),
			},
		},
		Stores: []domain.Store{{Id: "store-1", Name: "Loja Centro"}},
	}

	t.Run("Deve recalcular o resumo do escopo e persistir o snapshot", func(t *testing.T) {
		mockIntegrator.EXPECT().FetchDashboardData().Return(data, nil)

		var saved *domain.DashboardSnapshot
		mockSnapshotRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(snapshot *domain.DashboardSnapshot) error {
				saved = snapshot
				return nil
			})

		snapshot, err := service.RefreshSnapshot("store-1", day)

		assert.NoError(t, err)
		assert.Equal(t, "store-1", snapshot.Scope)
		assert.Equal(t, normalizedDay, snapshot.Date)
		assert.Equal(t, 80.0, snapshot.Summary.TotalOverallRevenue)
		assert.Equal(t, snapshot, saved)
	})

	t.Run("Escopo vazio - deve usar o escopo geral", func(t *testing.T) {
		mockIntegrator.EXPECT().FetchDashboardData().Return(data, nil)
		mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		snapshot, err := service.RefreshSnapshot("", day)

		assert.NoError(t, err)
		assert.Equal(t, domain.AllStores, snapshot.Scope)
		assert.Equal(t, 1079.0, snapshot.Summary.TotalOverallRevenue)
	})

	t.Run("Falha na persistência - deve propagar o erro", func(t *testing.T) {
		mockIntegrator.EXPECT().FetchDashboardData().Return(data, nil)
		mockSnapshotRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(errors.New("erro no banco de dados"))

		snapshot, err := service.RefreshSnapshot("store-1", day)

		assert.Error(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("Falha na busca dos dados - não deve persistir nada", func(t *testing.T) {
		mockIntegrator.EXPECT().
			FetchDashboardData().
			Return(nil, errors.New("upstream indisponível"))

		snapshot, err := service.RefreshSnapshot("store-1", day)

		assert.Error(t, err)
		assert.Nil(t, snapshot)
	})
}
