package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/internal/api/handler"
	"github.com/dealerhub/dealer-ops-api/internal/api/handler/router"
	"github.com/dealerhub/dealer-ops-api/internal/config"
	"github.com/dealerhub/dealer-ops-api/internal/scheduler"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/authenticating"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/budgeting"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/campaigning"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/dealering"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/incentives"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/pushing"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/visuals"
	"github.com/dealerhub/dealer-ops-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	campaignService campaigning.Manager,
	pushService pushing.Pusher,
	dealerService dealering.Manager,
	budgetService budgeting.Checker,
	incentiveService incentives.Manager,
	visualService visuals.Manager,
	campaignCompletionService *scheduler.CampaignCompletionService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		CampaignCompletionService: campaignCompletionService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Campaigns(campaignService, pushService)...),
		router.WithRoutes(handler.Dealers(dealerService, budgetService)...),
		router.WithRoutes(handler.Incentives(incentiveService)...),
		router.WithRoutes(handler.Visuals(visualService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
		middleware.BrandMiddleware(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	// Aqui você pode adicionar operações de limpeza adicionais
	// como fechar conexões com bancos de dados, limpar recursos, etc.

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
