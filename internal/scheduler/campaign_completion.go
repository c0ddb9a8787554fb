package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/internal/config"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/tenant"
)

// CampaignCompletionService move campanhas em veiculação cuja data final já
// passou para o status concluído. Roda por marca: jobs de lote não herdam
// tenant de requisição nenhuma, então cada iteração define a marca
// explicitamente no contexto.
type CampaignCompletionService struct {
	scheduler    *gocron.Scheduler
	appConfig    *config.Config
	campaignRepo repository.CampaignRequestRepository
	activityRepo repository.ActivityLogRepository

	syncRunning bool
	syncMutex   sync.Mutex
	lastRunAt   time.Time
}

func NewCampaignCompletionService(
	campaignRepo repository.CampaignRequestRepository,
	activityRepo repository.ActivityLogRepository,
	appConfig *config.Config,
) *CampaignCompletionService {
	return &CampaignCompletionService{
		scheduler:    gocron.NewScheduler(time.UTC),
		appConfig:    appConfig,
		campaignRepo: campaignRepo,
		activityRepo: activityRepo,
	}
}

// Start inicia o agendador
func (s *CampaignCompletionService) Start(ctx context.Context) error {
	if !s.appConfig.CampaignCompletionSync.Enabled {
		logrus.Info("Conclusão automática de campanhas desabilitada por configuração")
		return nil
	}

	cron := s.appConfig.CampaignCompletionSync.CronSchedule
	logrus.WithField("cron", cron).Info("Iniciando agendador de conclusão de campanhas")

	_, err := s.scheduler.Cron(cron).Do(func() {
		s.CompleteExpiredCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar conclusão de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de conclusão de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// CompleteExpiredCampaigns processa todas as marcas em sequência.
func (s *CampaignCompletionService) CompleteExpiredCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Conclusão de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	s.lastRunAt = startTime

	for _, brand := range tenant.Brands() {
		s.completeForBrand(brand, startTime)
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Conclusão de campanhas finalizada")
}

func (s *CampaignCompletionService) completeForBrand(brand tenant.Brand, reference time.Time) {
	ctx := tenant.WithBrand(context.Background(), brand)

	completed, err := s.campaignRepo.CompleteExpired(ctx, reference)
	if err != nil {
		logrus.WithError(err).WithField("brand", brand).Error("Erro ao concluir campanhas expiradas")
		return
	}

	for _, campaignID := range completed {
		entry := &domain.ActivityLogEntry{
			CampaignID: campaignID,
			Kind:       domain.ActivityStatusChanged,
			Message:    "Campanha concluída automaticamente: data final atingida",
			Detail: map[string]interface{}{
				"from": string(domain.CampaignStatusLive),
				"to":   string(domain.CampaignStatusCompleted),
			},
		}
		if err := s.activityRepo.Append(ctx, entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"brand":       brand,
				"campaign_id": campaignID,
			}).Error("Erro ao gravar entrada de auditoria da conclusão")
		}
	}

	if len(completed) > 0 {
		logrus.WithFields(logrus.Fields{
			"brand":     brand,
			"completed": len(completed),
		}).Info("Campanhas concluídas automaticamente")
	}
}

// TriggerManualSync dispara uma execução fora do horário agendado.
func (s *CampaignCompletionService) TriggerManualSync() {
	logrus.Info("Iniciando conclusão manual de campanhas")
	go s.CompleteExpiredCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignCompletionService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":     s.appConfig.CampaignCompletionSync.Enabled,
		"cron":        s.appConfig.CampaignCompletionSync.CronSchedule,
		"last_run_at": s.lastRunAt,
	}
}
