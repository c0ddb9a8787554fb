package campaigning

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/infrastructure/notification"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/infrastructure/storage"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/budgeting"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

type Manager interface {
	Create(ctx context.Context, req *domain.CreateCampaignRequest, actor *domain.Claims) (*domain.CampaignRequest, *domain.BudgetCheckResult, error)
	Get(ctx context.Context, id string, actor *domain.Claims) (*domain.CampaignRequest, error)
	List(ctx context.Context, filter repository.CampaignFilter, actor *domain.Claims) ([]*domain.CampaignRequest, error)
	ChangeStatus(ctx context.Context, id string, next domain.CampaignStatus, note string, actor *domain.Claims) (*domain.CampaignRequest, error)
	Activity(ctx context.Context, id string, actor *domain.Claims) ([]*domain.ActivityLogEntry, error)
	UploadCreative(ctx context.Context, campaignID, fileName string, fileType domain.CreativeFileType, contentType string, data []byte, actor *domain.Claims) (*domain.CreativeFile, error)
	DeleteCreative(ctx context.Context, campaignID, fileID string, actor *domain.Claims) error
	ListCreatives(ctx context.Context, campaignID string, actor *domain.Claims) ([]*domain.CreativeFile, error)
}

type Service struct {
	campaignRepo repository.CampaignRequestRepository
	dealerRepo   repository.DealerRepository
	creativeRepo repository.CreativeFileRepository
	activityRepo repository.ActivityLogRepository
	budget       budgeting.Checker
	objectStore  storage.ObjectStorage
	mailer       notification.Mailer
}

func NewService(
	campaignRepo repository.CampaignRequestRepository,
	dealerRepo repository.DealerRepository,
	creativeRepo repository.CreativeFileRepository,
	activityRepo repository.ActivityLogRepository,
	budget budgeting.Checker,
	objectStore storage.ObjectStorage,
	mailer notification.Mailer,
) Manager {
	return &Service{
		campaignRepo: campaignRepo,
		dealerRepo:   dealerRepo,
		creativeRepo: creativeRepo,
		activityRepo: activityRepo,
		budget:       budget,
		objectStore:  objectStore,
		mailer:       mailer,
	}
}

// Create valida e registra uma nova solicitação de campanha. O resultado da
// checagem de verba volta junto como aviso; ele não bloqueia a criação, a
// decisão final é do aprovador.
func (s *Service) Create(ctx context.Context, req *domain.CreateCampaignRequest, actor *domain.Claims) (*domain.CampaignRequest, *domain.BudgetCheckResult, error) {
	// Usuário de dealer só cria campanha para o próprio dealer.
	if actor != nil && actor.UserDealerID != nil {
		req.DealerID = *actor.UserDealerID
	}

	start, end, err := s.validate(req)
	if err != nil {
		return nil, nil, err
	}

	dealer, err := s.dealerRepo.GetByID(ctx, req.DealerID)
	if err != nil {
		return nil, nil, err
	}
	if dealer == nil {
		return nil, nil, &ValidationError{Reason: "dealer não encontrado"}
	}

	budgetResult, err := s.budget.Check(ctx, req.DealerID, start, end, req.Budget)
	if err != nil {
		logrus.WithError(err).WithField("dealer_id", req.DealerID).Error("Erro na checagem de verba, campanha segue sem o resultado")
		budgetResult = nil
	}

	campaign := &domain.CampaignRequest{
		DealerID:     req.DealerID,
		CampaignName: req.CampaignName,
		Budget:       req.Budget,
		StartDate:    start,
		EndDate:      end,
		Platforms:    req.Platforms,
		AdMessage:    req.AdMessage,
		CTAType:      req.CTAType,
		WebsiteURL:   req.WebsiteURL,
		RedirectType: req.RedirectType,
		Notes:        req.Notes,
		Status:       domain.CampaignStatusPendingApproval,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, nil, err
	}

	s.appendBestEffort(ctx, &domain.ActivityLogEntry{
		CampaignID: campaign.ID,
		Kind:       domain.ActivityCreated,
		Message:    "Solicitação de campanha criada",
		Detail: map[string]interface{}{
			"campaign_name": campaign.CampaignName,
			"budget":        campaign.Budget.String(),
		},
		ActorID: actorID(actor),
	})

	s.mailer.Send(dealer.NotificationRecipients(),
		fmt.Sprintf("Nova campanha: %s", campaign.CampaignName),
		fmt.Sprintf("A solicitação de campanha %q foi registrada e aguarda aprovação.", campaign.CampaignName))

	return campaign, budgetResult, nil
}

func (s *Service) validate(req *domain.CreateCampaignRequest) (time.Time, time.Time, error) {
	var zero time.Time

	if req.DealerID == "" {
		return zero, zero, &ValidationError{Reason: "dealer_id é obrigatório"}
	}
	if strings.TrimSpace(req.CampaignName) == "" {
		return zero, zero, &ValidationError{Reason: "campaign_name é obrigatório"}
	}
	if req.Budget.LessThanOrEqual(decimal.Zero) {
		return zero, zero, &ValidationError{Reason: "budget deve ser maior que zero"}
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return zero, zero, &ValidationError{Reason: "start_date inválida, use o formato YYYY-MM-DD"}
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return zero, zero, &ValidationError{Reason: "end_date inválida, use o formato YYYY-MM-DD"}
	}
	if start.IsZero() || end.IsZero() {
		return zero, zero, &ValidationError{Reason: "start_date e end_date são obrigatórias"}
	}
	if end.Before(*start) {
		return zero, zero, &ValidationError{Reason: "end_date não pode ser anterior a start_date"}
	}

	if len(req.Platforms) == 0 {
		return zero, zero, &ValidationError{Reason: "informe ao menos uma plataforma"}
	}
	for _, p := range req.Platforms {
		if p != domain.PlatformInstagram && p != domain.PlatformFacebook {
			return zero, zero, &ValidationError{Reason: fmt.Sprintf("plataforma inválida: %s", p)}
		}
	}

	if req.CTAType != "" {
		if _, ok := domain.ValidCTATypes[req.CTAType]; !ok {
			return zero, zero, &ValidationError{Reason: fmt.Sprintf("cta_type inválido: %s", req.CTAType)}
		}
	}

	return *start, *end, nil
}

func (s *Service) Get(ctx context.Context, id string, actor *domain.Claims) (*domain.CampaignRequest, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrNotFound
	}
	if err := checkScope(campaign, actor); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *Service) List(ctx context.Context, filter repository.CampaignFilter, actor *domain.Claims) ([]*domain.CampaignRequest, error) {
	// Usuário de dealer enxerga apenas as próprias campanhas.
	if actor != nil && actor.UserDealerID != nil {
		filter.DealerID = *actor.UserDealerID
	}
	return s.campaignRepo.List(ctx, filter)
}

// ChangeStatus aplica a máquina de estados do fluxo de aprovação. Transições
// inválidas são recusadas antes de qualquer escrita.
func (s *Service) ChangeStatus(ctx context.Context, id string, next domain.CampaignStatus, note string, actor *domain.Claims) (*domain.CampaignRequest, error) {
	if !domain.ValidCampaignStatus(next) {
		return nil, &ValidationError{Reason: fmt.Sprintf("status inválido: %s", next)}
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrNotFound
	}

	if !campaign.Status.CanTransitionTo(next) {
		return nil, &ValidationError{Reason: fmt.Sprintf("transição de %s para %s não é permitida", campaign.Status, next)}
	}

	entry := &domain.ActivityLogEntry{
		CampaignID: id,
		Kind:       domain.ActivityStatusChanged,
		Message:    fmt.Sprintf("Status alterado de %s para %s", campaign.Status, next),
		Detail: map[string]interface{}{
			"from": string(campaign.Status),
			"to":   string(next),
		},
		ActorID: actorID(actor),
	}
	if note != "" {
		entry.Detail["note"] = note
	}

	if err := s.campaignRepo.SetStatus(ctx, id, next, entry); err != nil {
		return nil, err
	}

	if dealer, err := s.dealerRepo.GetByID(ctx, campaign.DealerID); err == nil && dealer != nil {
		s.mailer.Send(dealer.NotificationRecipients(),
			fmt.Sprintf("Campanha %s: %s", campaign.CampaignName, next),
			fmt.Sprintf("O status da campanha %q mudou para %s.", campaign.CampaignName, next))
	}

	return s.campaignRepo.GetByID(ctx, id)
}

func (s *Service) Activity(ctx context.Context, id string, actor *domain.Claims) ([]*domain.ActivityLogEntry, error) {
	if _, err := s.Get(ctx, id, actor); err != nil {
		return nil, err
	}
	return s.activityRepo.ListByCampaign(ctx, id)
}

func (s *Service) UploadCreative(ctx context.Context, campaignID, fileName string, fileType domain.CreativeFileType, contentType string, data []byte, actor *domain.Claims) (*domain.CreativeFile, error) {
	if fileType != domain.CreativeFilePost && fileType != domain.CreativeFileStory {
		return nil, &ValidationError{Reason: fmt.Sprintf("tipo de arquivo inválido: %s", fileType)}
	}
	if len(data) == 0 {
		return nil, &ValidationError{Reason: "arquivo vazio"}
	}

	campaign, err := s.Get(ctx, campaignID, actor)
	if err != nil {
		return nil, err
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("campaigns/%s/%s%s", campaign.ID, suffix, strings.ToLower(filepath.Ext(fileName)))

	if err := s.objectStore.Upload(ctx, key, data, contentType); err != nil {
		return nil, err
	}

	file := &domain.CreativeFile{
		CampaignID:  campaign.ID,
		FileName:    fileName,
		FileType:    fileType,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		StorageKey:  key,
		URL:         s.objectStore.PublicURL(key),
	}

	if err := s.creativeRepo.Create(ctx, file); err != nil {
		// O registro falhou depois do upload: remover o objeto órfão.
		if delErr := s.objectStore.Delete(ctx, key); delErr != nil {
			logrus.WithError(delErr).WithField("key", key).Error("Erro ao remover objeto órfão do storage")
		}
		return nil, err
	}

	s.appendBestEffort(ctx, &domain.ActivityLogEntry{
		CampaignID: campaign.ID,
		Kind:       domain.ActivityFileUploaded,
		Message:    fmt.Sprintf("Arquivo de criativo enviado: %s", fileName),
		Detail: map[string]interface{}{
			"file_id":   file.ID,
			"file_name": fileName,
			"file_type": string(fileType),
		},
		ActorID: actorID(actor),
	})

	return file, nil
}

func (s *Service) DeleteCreative(ctx context.Context, campaignID, fileID string, actor *domain.Claims) error {
	if _, err := s.Get(ctx, campaignID, actor); err != nil {
		return err
	}

	file, err := s.creativeRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if file == nil || file.CampaignID != campaignID {
		return ErrNotFound
	}

	if err := s.objectStore.Delete(ctx, file.StorageKey); err != nil {
		return err
	}

	if err := s.creativeRepo.Delete(ctx, fileID); err != nil {
		return err
	}

	s.appendBestEffort(ctx, &domain.ActivityLogEntry{
		CampaignID: campaignID,
		Kind:       domain.ActivityFileDeleted,
		Message:    fmt.Sprintf("Arquivo de criativo removido: %s", file.FileName),
		Detail: map[string]interface{}{
			"file_id":   file.ID,
			"file_name": file.FileName,
		},
		ActorID: actorID(actor),
	})

	return nil
}

func (s *Service) ListCreatives(ctx context.Context, campaignID string, actor *domain.Claims) ([]*domain.CreativeFile, error) {
	if _, err := s.Get(ctx, campaignID, actor); err != nil {
		return nil, err
	}
	return s.creativeRepo.ListByCampaign(ctx, campaignID)
}

func checkScope(campaign *domain.CampaignRequest, actor *domain.Claims) error {
	if actor != nil && actor.UserDealerID != nil && campaign.DealerID != *actor.UserDealerID {
		return ErrForbidden
	}
	return nil
}

func (s *Service) appendBestEffort(ctx context.Context, entry *domain.ActivityLogEntry) {
	if err := s.activityRepo.Append(ctx, entry); err != nil {
		logrus.WithError(err).WithField("campaign_id", entry.CampaignID).Error("Erro ao gravar entrada de auditoria")
	}
}

func actorID(actor *domain.Claims) *int {
	if actor == nil {
		return nil
	}
	id := actor.UserID
	return &id
}
