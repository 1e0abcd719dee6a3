// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/reporting"
)

type DashboardSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
	LookbackDays int
}

// DashboardSnapshotService recalcula e persiste os snapshots diários do
// dashboard, no escopo geral e por loja
type DashboardSnapshotService struct {
	scheduler           *gocron.Scheduler
	reportingService    reporting.Reporter
	commerceService     commerce.CommerceIntegrator
	config              DashboardSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardSnapshotService(
	reportingService reporting.Reporter,
	commerceService commerce.CommerceIntegrator,
	cfg *config.Config,
) *DashboardSnapshotService {
	snapshotConfig := DashboardSnapshotConfig{
		CronSchedule: cfg.DashboardSnapshot.CronSchedule, // Default: 3h da manhã todos os dias
		SyncEnabled:  cfg.DashboardSnapshot.Enabled,
		LookbackDays: cfg.DashboardSnapshot.LookbackDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"lookback_days": snapshotConfig.LookbackDays,
	}).Info("Configuração do agendador de snapshots do dashboard carregada")

	return &DashboardSnapshotService{
		scheduler:        scheduler,
		reportingService: reportingService,
		commerceService:  commerceService,
		config:           snapshotConfig,
	}
}

func (s *DashboardSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots do dashboard")

	// Agendar a geração dos snapshots
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateDashboardSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na geração dos snapshots do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de snapshots do dashboard: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateDashboardSnapshots recalcula os snapshots dos últimos LookbackDays
// dias já encerrados, no escopo geral e por loja
func (s *DashboardSnapshotService) UpdateDashboardSnapshots() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Geração de snapshots do dashboard já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando geração dos snapshots do dashboard")

	scopes, err := s.snapshotScopes()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas para geração dos snapshots do dashboard")
		return err
	}

	lookback := s.config.LookbackDays
	if lookback < 1 {
		lookback = 1
	}

	var failures int
	for day := 1; day <= lookback; day++ {
		date := time.Now().AddDate(0, 0, -day)

		for _, scope := range scopes {
			if _, err := s.reportingService.RefreshSnapshot(scope, date); err != nil {
				failures++
				logrus.WithError(err).WithFields(logrus.Fields{
					"scope": scope,
					"date":  date.Format(time.DateOnly),
				}).Error("Erro ao gerar snapshot do dashboard")
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("geração de snapshots concluída com %d falha(s)", failures)
	}

	logrus.Info("Geração dos snapshots do dashboard concluída")

	return nil
}

// snapshotScopes retorna o escopo geral seguido de um escopo por loja
func (s *DashboardSnapshotService) snapshotScopes() ([]string, error) {
	stores, err := s.commerceService.ListStores()
	if err != nil {
		return nil, err
	}

	scopes := make([]string, 0, len(stores)+1)
	scopes = append(scopes, domain.AllStores)
	for _, store := range stores {
		scopes = append(scopes, store.Id)
	}

	return scopes, nil
}

// TriggerManualSync inicia manualmente uma geração de snapshots
func (s *DashboardSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual dos snapshots do dashboard")
	go s.UpdateDashboardSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardSnapshotService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"lookback_days":          s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
