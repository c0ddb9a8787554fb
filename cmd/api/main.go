package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/infrastructure/database/postgres"
	"github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/metaclient"
	"github.com/dealerhub/dealer-ops-api/infrastructure/notification"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/infrastructure/storage"
	"github.com/dealerhub/dealer-ops-api/internal/api"
	"github.com/dealerhub/dealer-ops-api/internal/config"
	"github.com/dealerhub/dealer-ops-api/internal/scheduler"
	"github.com/dealerhub/dealer-ops-api/internal/tenant"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/authenticating"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/budgeting"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/campaigning"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/dealering"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/incentives"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/pushing"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/visuals"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if err := cfg.Meta.Validate(); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Um banco por marca. Cada requisição resolve a conexão a partir da
	// marca do contexto; nada é compartilhado entre elas.
	cluster := postgres.NewCluster(map[tenant.Brand]*postgres.Connection{
		tenant.BrandFord:  pgconn(ctx, cfg.Databases.FordDSN, string(tenant.BrandFord)),
		tenant.BrandTofas: pgconn(ctx, cfg.Databases.TofasDSN, string(tenant.BrandTofas)),
	})
	defer cluster.Close()

	userRepo := repository.NewUserRepository(cluster)
	dealerRepo := repository.NewDealerRepository(cluster)
	campaignRepo := repository.NewCampaignRequestRepository(cluster)
	creativeRepo := repository.NewCreativeFileRepository(cluster)
	activityRepo := repository.NewActivityLogRepository(cluster)
	budgetPlanRepo := repository.NewBudgetPlanRepository(cluster)
	incentiveRepo := repository.NewIncentiveRepository(cluster)
	visualRepo := repository.NewVisualRequestRepository(cluster)

	objectStore, err := storage.NewS3Storage(cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o storage de objetos")
	}

	mailer := notification.NewMailer(cfg.SMTP)
	metaClient := metaclient.NewClient(cfg)

	authenticator := authenticating.NewService(userRepo, cfg)
	budgetService := budgeting.NewService(budgetPlanRepo)
	campaignService := campaigning.NewService(campaignRepo, dealerRepo, creativeRepo, activityRepo, budgetService, objectStore, mailer)
	pushService := pushing.NewService(cfg, campaignRepo, dealerRepo, creativeRepo, activityRepo, objectStore, metaClient)
	dealerService := dealering.NewService(dealerRepo, userRepo, mailer)
	incentiveService := incentives.NewService(incentiveRepo, dealerRepo, mailer)
	visualService := visuals.NewService(visualRepo, dealerRepo, mailer)

	campaignCompletionService := scheduler.NewCampaignCompletionService(campaignRepo, activityRepo, cfg)
	if err := campaignCompletionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de conclusão de campanhas")
	} else {
		logrus.Info("Agendador de conclusão de campanhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		campaignService,
		pushService,
		dealerService,
		budgetService,
		incentiveService,
		visualService,
		campaignCompletionService,
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

// pgconn cria uma conexão com o banco de dados da marca
func pgconn(ctx context.Context, dsn, brand string) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dsn)
	if err != nil {
		logrus.WithError(err).WithField("brand", brand).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).WithField("brand", brand).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.WithField("brand", brand).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
