package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	commercemocks "github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce/mocks"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	reportingmocks "github.com/vfg2006/commerce-backoffice-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestUpdateDashboardSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	stores := []domain.Store{
		{Id: "store-1", Name: "Loja Centro"},
		{Id: "store-2", Name: "Loja Norte"},
	}

	testCases := []struct {
		name     string
		config   DashboardSnapshotConfig
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name:   "Deve gerar um snapshot por dia para o escopo geral e para cada loja",
			config: DashboardSnapshotConfig{LookbackDays: 2},
			setup: func() {
				mockIntegrator.EXPECT().ListStores().Return(stores, nil)

				// 2 dias x 3 escopos (all, store-1, store-2)
				var scopesSeen []string
				mockReporter.EXPECT().
					RefreshSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(func(scope string, date time.Time) (*domain.DashboardSnapshot, error) {
						scopesSeen = append(scopesSeen, scope)
						return &domain.DashboardSnapshot{Scope: scope}, nil
					}).
					Times(6)
				_ = scopesSeen
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Lookback menor que um dia - deve processar ao menos o dia anterior",
			config: DashboardSnapshotConfig{LookbackDays: 0},
			setup: func() {
				mockIntegrator.EXPECT().ListStores().Return(stores, nil)
				mockReporter.EXPECT().
					RefreshSnapshot(gomock.Any(), gomock.Any()).
					Return(&domain.DashboardSnapshot{}, nil).
					Times(3)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Falhas parciais - deve continuar os demais escopos e reportar o total de falhas",
			config: DashboardSnapshotConfig{LookbackDays: 1},
			setup: func() {
				mockIntegrator.EXPECT().ListStores().Return(stores, nil)

				mockReporter.EXPECT().
					RefreshSnapshot(domain.AllStores, gomock.Any()).
					Return(nil, errors.New("upstream indisponível"))
				mockReporter.EXPECT().
					RefreshSnapshot("store-1", gomock.Any()).
					Return(&domain.DashboardSnapshot{}, nil)
				mockReporter.EXPECT().
					RefreshSnapshot("store-2", gomock.Any()).
					Return(nil, errors.New("erro no banco de dados"))
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "2 falha(s)")
			},
		},
		{
			name:   "Falha ao listar lojas - deve abortar sem gerar nenhum snapshot",
			config: DashboardSnapshotConfig{LookbackDays: 3},
			setup: func() {
				mockIntegrator.EXPECT().ListStores().Return(nil, errors.New("upstream indisponível"))
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()

			service := &DashboardSnapshotService{
				reportingService: mockReporter,
				commerceService:  mockIntegrator,
				config:           tc.config,
			}

			err := service.UpdateDashboardSnapshots()
			tc.validate(t, err)
		})
	}
}

func TestUpdateDashboardSnapshotsScopeOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockIntegrator := commercemocks.NewMockCommerceIntegrator(ctrl)

	mockIntegrator.EXPECT().ListStores().Return([]domain.Store{
		{Id: "store-1"},
		{Id: "store-2"},
	}, nil)

	var scopes []string
	mockReporter.EXPECT().
		RefreshSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(scope string, date time.Time) (*domain.DashboardSnapshot, error) {
			scopes = append(scopes, scope)
			return &domain.DashboardSnapshot{}, nil
		}).
		Times(3)

	service := &DashboardSnapshotService{
		reportingService: mockReporter,
		commerceService:  mockIntegrator,
		config:           DashboardSnapshotConfig{LookbackDays: 1},
	}

	err := service.UpdateDashboardSnapshots()

	assert.NoError(t, err)
	assert.Equal(t, []string{domain.AllStores, "store-1", "store-2"}, scopes)
}

func TestGetStatus(t *testing.T) {
	service := &DashboardSnapshotService{
		config: DashboardSnapshotConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  true,
			LookbackDays: 7,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["lookback_days"])
}
