package pushing

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
	"github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/metaclient"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/infrastructure/storage"
	"github.com/dealerhub/dealer-ops-api/internal/config"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
)

const minDailyBudgetMinorUnits = 100 // 100 kuruş = 1 TRY, mínimo aceito pela plataforma

type Pusher interface {
	PushToFacebook(ctx context.Context, requestID string, actor *domain.Claims) (*domain.CampaignRequest, error)
	CheckRemoteStatus(ctx context.Context, requestID string, actor *domain.Claims) (*metadomain.CampaignStatus, error)
}

type stepStatus string

const (
	stepSuccess        stepStatus = "success"
	stepSkipped        stepStatus = "skipped"
	stepFailedNonFatal stepStatus = "failed_nonfatal"
	stepFailedFatal    stepStatus = "failed_fatal"
)

// stepResult registra o desfecho de cada passo do push na ordem em que
// aconteceram. Vai inteiro para o detail da entrada de auditoria final.
type stepResult struct {
	Step   string     `json:"step"`
	Status stepStatus `json:"status"`
	Detail string     `json:"detail,omitempty"`
}

type Service struct {
	cfg          *config.Config
	campaignRepo repository.CampaignRequestRepository
	dealerRepo   repository.DealerRepository
	creativeRepo repository.CreativeFileRepository
	activityRepo repository.ActivityLogRepository
	objectStore  storage.ObjectStorage
	client       metaclient.Client
}

func NewService(
	cfg *config.Config,
	campaignRepo repository.CampaignRequestRepository,
	dealerRepo repository.DealerRepository,
	creativeRepo repository.CreativeFileRepository,
	activityRepo repository.ActivityLogRepository,
	objectStore storage.ObjectStorage,
	client metaclient.Client,
) Pusher {
	return &Service{
		cfg:          cfg,
		campaignRepo: campaignRepo,
		dealerRepo:   dealerRepo,
		creativeRepo: creativeRepo,
		activityRepo: activityRepo,
		objectStore:  objectStore,
		client:       client,
	}
}

// PushToFacebook executa a cadeia Campaign -> AdSet -> Creative -> Ad na
// plataforma de anúncios. Pré-condições são verificadas antes de qualquer
// chamada externa; violação não deixa rastro nem no banco nem na auditoria.
func (s *Service) PushToFacebook(ctx context.Context, requestID string, actor *domain.Claims) (*domain.CampaignRequest, error) {
	request, err := s.campaignRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrNotFound
	}

	if request.Status != domain.CampaignStatusApproved {
		return nil, &PreconditionError{Reason: fmt.Sprintf("campanha precisa estar aprovada para o push (status atual: %s)", request.Status)}
	}
	if request.FBPushStatus == domain.PushStatusSucceeded {
		return nil, &PreconditionError{Reason: "campanha já foi enviada para a plataforma de anúncios"}
	}

	dealer, err := s.dealerRepo.GetByID(ctx, request.DealerID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, &PreconditionError{Reason: "dealer da campanha não encontrado"}
	}
	if dealer.FBPageID == nil || *dealer.FBPageID == "" {
		return nil, &PreconditionError{Reason: fmt.Sprintf("dealer %s não tem Facebook Page ID configurado", dealer.DealerName)}
	}

	websiteURL := s.resolveWebsiteURL(request, dealer)
	if websiteURL == "" {
		return nil, &PreconditionError{Reason: "URL de destino não encontrada: informe na campanha ou no cadastro do dealer"}
	}

	// CAS: só um push por vez; succeeded nunca é re-empurrado.
	ok, err := s.campaignRepo.BeginPush(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &PreconditionError{Reason: "push já em andamento ou concluído para esta campanha"}
	}

	s.appendBestEffort(ctx, &domain.ActivityLogEntry{
		CampaignID: requestID,
		Kind:       domain.ActivityPushAttempted,
		Message:    "Push para a plataforma de anúncios iniciado",
		ActorID:    actorID(actor),
	})

	steps := make([]stepResult, 0, 5)
	result := repository.PushResult{}

	// Passo 1: campanha
	campaignID, err := s.client.CreateCampaign(ctx, &metadomain.CreateCampaignParams{
		Name:                request.CampaignName,
		Objective:           s.cfg.Meta.Objective,
		Status:              metadomain.StatusPaused,
		SpecialAdCategories: []string{"NONE"},
	})
	if err != nil {
		steps = append(steps, stepResult{Step: "create_campaign", Status: stepFailedFatal, Detail: err.Error()})
		return nil, s.failPush(ctx, requestID, "create_campaign", err, result, steps, actor)
	}
	result.CampaignID = campaignID
	steps = append(steps, stepResult{Step: "create_campaign", Status: stepSuccess})

	// Passo 2: conjunto de anúncios
	adSetParams := s.buildAdSetParams(request, campaignID)
	adSetID, err := s.client.CreateAdSet(ctx, adSetParams)
	if err != nil {
		steps = append(steps, stepResult{Step: "create_adset", Status: stepFailedFatal, Detail: err.Error()})
		return nil, s.failPush(ctx, requestID, "create_adset", err, result, steps, actor)
	}
	result.AdSetID = adSetID
	steps = append(steps, stepResult{Step: "create_adset", Status: stepSuccess})

	// Passo 3: imagem (opcional, falha não aborta o push)
	imageHash, imageStep := s.resolveImageHash(ctx, request, actor)
	steps = append(steps, imageStep)

	// Passo 4: criativo, com uma única re-tentativa sem o instagram_actor_id
	creativeID, err := s.createCreative(ctx, request, dealer, websiteURL, imageHash)
	if err != nil {
		steps = append(steps, stepResult{Step: "create_creative", Status: stepFailedFatal, Detail: err.Error()})
		return nil, s.failPush(ctx, requestID, "create_creative", err, result, steps, actor)
	}
	result.CreativeID = creativeID
	steps = append(steps, stepResult{Step: "create_creative", Status: stepSuccess})

	// Passo 5: anúncio
	adID, err := s.client.CreateAd(ctx, &metadomain.CreateAdParams{
		Name:     fmt.Sprintf("%s - Reklam", request.CampaignName),
		AdSetID:  adSetID,
		Creative: metadomain.AdCreativeRef{CreativeID: creativeID},
		Status:   metadomain.StatusPaused,
	})
	if err != nil {
		steps = append(steps, stepResult{Step: "create_ad", Status: stepFailedFatal, Detail: err.Error()})
		return nil, s.failPush(ctx, requestID, "create_ad", err, result, steps, actor)
	}
	result.AdID = adID
	steps = append(steps, stepResult{Step: "create_ad", Status: stepSuccess})

	entry := &domain.ActivityLogEntry{
		CampaignID: requestID,
		Kind:       domain.ActivityPushSucceeded,
		Message:    "Campanha publicada na plataforma de anúncios",
		Detail: map[string]interface{}{
			"fb_campaign_id": result.CampaignID,
			"fb_adset_id":    result.AdSetID,
			"fb_creative_id": result.CreativeID,
			"fb_ad_id":       result.AdID,
			"steps":          steps,
		},
		ActorID: actorID(actor),
	}

	if err := s.campaignRepo.SavePushSuccess(ctx, requestID, result, entry); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":    requestID,
		"fb_campaign_id": result.CampaignID,
		"fb_ad_id":       result.AdID,
	}).Info("Push concluído com sucesso")

	return s.campaignRepo.GetByID(ctx, requestID)
}

// CheckRemoteStatus consulta o estado da campanha na plataforma sem alterar
// nada localmente além da entrada de auditoria.
func (s *Service) CheckRemoteStatus(ctx context.Context, requestID string, actor *domain.Claims) (*metadomain.CampaignStatus, error) {
	request, err := s.campaignRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrNotFound
	}
	if request.FBCampaignID == "" {
		return nil, &PreconditionError{Reason: "campanha ainda não foi enviada para a plataforma de anúncios"}
	}

	status, err := s.client.GetCampaignStatus(ctx, request.FBCampaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o status remoto da campanha")
	}

	s.appendBestEffort(ctx, &domain.ActivityLogEntry{
		CampaignID: requestID,
		Kind:       domain.ActivityStatusQueried,
		Message:    "Status remoto consultado",
		Detail: map[string]interface{}{
			"status":            status.Status,
			"effective_status":  status.EffectiveStatus,
			"configured_status": status.ConfiguredStatus,
		},
		ActorID: actorID(actor),
	})

	return status, nil
}

func (s *Service) resolveWebsiteURL(request *domain.CampaignRequest, dealer *domain.Dealer) string {
	if request.WebsiteURL != "" {
		return request.WebsiteURL
	}

	switch request.RedirectType {
	case domain.RedirectSales:
		if dealer.SalesURL != nil {
			return *dealer.SalesURL
		}
	case domain.RedirectService:
		if dealer.ServiceURL != nil {
			return *dealer.ServiceURL
		}
	}

	return ""
}

func (s *Service) buildAdSetParams(request *domain.CampaignRequest, campaignID string) *metadomain.CreateAdSetParams {
	daily := dailyBudgetMinorUnits(request.Budget, request.StartDate, request.EndDate)

	// REACH + IMPRESSIONS exige lance manual: ~10% do orçamento diário,
	// nunca abaixo do mínimo da plataforma.
	var bid int64
	if s.cfg.Meta.OptimizationGoal == "REACH" && s.cfg.Meta.BillingEvent == "IMPRESSIONS" {
		bid = daily / 10
		if bid < minDailyBudgetMinorUnits {
			bid = minDailyBudgetMinorUnits
		}
	}

	return &metadomain.CreateAdSetParams{
		Name:             fmt.Sprintf("%s - Reklam Seti", request.CampaignName),
		CampaignID:       campaignID,
		OptimizationGoal: s.cfg.Meta.OptimizationGoal,
		BillingEvent:     s.cfg.Meta.BillingEvent,
		DailyBudget:      daily,
		BidAmount:        bid,
		Targeting: metadomain.Targeting{
			GeoLocations: metadomain.GeoLocations{Countries: []string{s.cfg.Meta.TargetCountry}},
			AgeMin:       18,
			AgeMax:       65,
		},
		StartTime: request.StartDate.Format("2006-01-02") + "T00:00:00Z",
		EndTime:   request.EndDate.Format("2006-01-02") + "T23:59:59Z",
		Status:    metadomain.StatusPaused,
	}
}

func (s *Service) resolveImageHash(ctx context.Context, request *domain.CampaignRequest, actor *domain.Claims) (string, stepResult) {
	file, err := s.creativeRepo.GetLatestByCampaign(ctx, request.ID)
	if err == nil && file == nil {
		return "", stepResult{Step: "upload_image", Status: stepSkipped, Detail: "nenhum arquivo de criativo anexado"}
	}

	var hash string
	if err == nil {
		var data []byte
		data, err = s.objectStore.Download(ctx, file.StorageKey)
		if err == nil {
			hash, err = s.client.UploadImage(ctx, file.FileName, data)
		}
	}

	if err != nil {
		logrus.WithError(err).WithField("campaign_id", request.ID).Warn("Falha ao subir imagem, push continua sem image_hash")

		s.appendBestEffort(ctx, &domain.ActivityLogEntry{
			CampaignID: request.ID,
			Kind:       domain.ActivityNote,
			Message:    "Falha ao enviar a imagem do criativo; o anúncio foi criado sem imagem",
			Detail:     map[string]interface{}{"error": err.Error()},
			ActorID:    actorID(actor),
		})

		return "", stepResult{Step: "upload_image", Status: stepFailedNonFatal, Detail: err.Error()}
	}

	return hash, stepResult{Step: "upload_image", Status: stepSuccess}
}

func (s *Service) createCreative(ctx context.Context, request *domain.CampaignRequest, dealer *domain.Dealer, websiteURL, imageHash string) (string, error) {
	message := request.AdMessage
	if message == "" {
		message = request.CampaignName
	}

	ctaType := request.CTAType
	if ctaType == "" {
		ctaType = "LEARN_MORE"
	}

	spec := metadomain.ObjectStorySpec{
		PageID: *dealer.FBPageID,
		LinkData: metadomain.LinkData{
			Message:      message,
			Link:         websiteURL,
			CallToAction: metadomain.CallToAction{Type: ctaType},
			ImageHash:    imageHash,
		},
	}
	if dealer.InstagramActorID != nil && *dealer.InstagramActorID != "" {
		spec.InstagramActorID = *dealer.InstagramActorID
	}

	params := &metadomain.CreateCreativeParams{
		Name:            fmt.Sprintf("%s - Creative", request.CampaignName),
		ObjectStorySpec: spec,
	}

	creativeID, err := s.client.CreateCreative(ctx, params)
	if err == nil {
		return creativeID, nil
	}

	// O instagram_actor_id pode estar desvinculado da página. Uma única
	// re-tentativa sem o campo, só para essa classificação de erro.
	var apiErr *metadomain.APIError
	if spec.InstagramActorID != "" && errors.As(err, &apiErr) && apiErr.IsInvalidInstagramActor() {
		logrus.WithField("campaign_id", request.ID).Warn("instagram_actor_id recusado, re-tentando criativo sem o campo")

		params.ObjectStorySpec.InstagramActorID = ""
		return s.client.CreateCreative(ctx, params)
	}

	return "", err
}

// failPush grava o desfecho de falha em uma única transação: fb_push_status,
// texto bruto do erro e a entrada push-failed com os IDs parciais.
func (s *Service) failPush(ctx context.Context, requestID, step string, pushErr error, result repository.PushResult, steps []stepResult, actor *domain.Claims) error {
	entry := &domain.ActivityLogEntry{
		CampaignID: requestID,
		Kind:       domain.ActivityPushFailed,
		Message:    fmt.Sprintf("Push falhou no passo %s", step),
		Detail: map[string]interface{}{
			"step":           step,
			"error":          pushErr.Error(),
			"fb_campaign_id": result.CampaignID,
			"fb_adset_id":    result.AdSetID,
			"fb_creative_id": result.CreativeID,
			"steps":          steps,
		},
		ActorID: actorID(actor),
	}

	if err := s.campaignRepo.SavePushFailure(ctx, requestID, pushErr.Error(), entry); err != nil {
		logrus.WithError(err).WithField("campaign_id", requestID).Error("Erro ao gravar a falha do push")
	}

	return &PushError{Step: step, Err: pushErr}
}

func (s *Service) appendBestEffort(ctx context.Context, entry *domain.ActivityLogEntry) {
	if err := s.activityRepo.Append(ctx, entry); err != nil {
		logrus.WithError(err).WithField("campaign_id", entry.CampaignID).Error("Erro ao gravar entrada de auditoria")
	}
}

// dailyBudgetMinorUnits converte o orçamento total para kuruş e divide pelos
// dias da campanha (janela inclusiva), respeitando o mínimo da plataforma.
func dailyBudgetMinorUnits(budget decimal.Decimal, start, end time.Time) int64 {
	days := int64(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	total := budget.Mul(decimal.NewFromInt(100)).IntPart()

	daily := total / days
	if daily < minDailyBudgetMinorUnits {
		daily = minDailyBudgetMinorUnits
	}

	return daily
}

func actorID(actor *domain.Claims) *int {
	if actor == nil {
		return nil
	}
	id := actor.UserID
	return &id
}
