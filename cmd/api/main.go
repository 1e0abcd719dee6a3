package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/integrator/commerce/commerceclient"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/commerce-backoffice-api/internal/api"
	"github.com/vfg2006/commerce-backoffice-api/internal/config"
	"github.com/vfg2006/commerce-backoffice-api/internal/scheduler"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/catalog"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/messaging"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/reporting"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/storefront"
	"github.com/vfg2006/commerce-backoffice-api/internal/usecases/transacting"
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

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)

	// Cliente do backend de comércio com renovação automática de sessão
	commerceClient := commerceclient.NewClient(cfg)
	sessionManager := commerceclient.NewSessionManager(commerceClient, cfg.Commerce.AdminEmail, cfg.Commerce.AdminPassword)
	go sessionManager.StartAutoRefresh()
	defer sessionManager.StopAutoRefresh()

	commerceIntegrator := commerce.New(cfg, commerceClient, sessionManager)

	authenticator := authenticating.NewService(userRepo, commerceIntegrator, cfg)

	// Inicializa o serviço de relatórios com suporte a cache de snapshots
	reportingService := reporting.NewService(cfg, commerceIntegrator)
	cachedReportingService := reportingService.(*reporting.Service).WithCache(snapshotRepo)

	transactingService := transacting.NewService(commerceIntegrator)
	storefrontService := storefront.NewService(commerceIntegrator)
	catalogService := catalog.NewService(commerceIntegrator)
	messagingService := messaging.NewService(commerceIntegrator)

	// Inicializa o agendador de snapshots do dashboard
	dashboardSnapshotService := scheduler.NewDashboardSnapshotService(
		cachedReportingService,
		commerceIntegrator,
		cfg,
	)

	if err := dashboardSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do dashboard")
	} else {
		logrus.Info("Agendador de snapshots do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedReportingService,
		transactingService,
		storefrontService,
		catalogService,
		messagingService,
		authenticator,
		dashboardSnapshotService,
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
