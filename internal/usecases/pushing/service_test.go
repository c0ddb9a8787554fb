package pushing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository/mocks"
	storagemocks "github.com/dealerhub/dealer-ops-api/infrastructure/storage/mocks"
	"github.com/dealerhub/dealer-ops-api/internal/config"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type pushMocks struct {
	campaignRepo *mocks.MockCampaignRequestRepository
	dealerRepo   *mocks.MockDealerRepository
	creativeRepo *mocks.MockCreativeFileRepository
	activityRepo *mocks.MockActivityLogRepository
	objectStore  *storagemocks.MockObjectStorage
	client       *metamocks.MockClient
}

func newPushService(ctrl *gomock.Controller) (Pusher, *pushMocks) {
	m := &pushMocks{
		campaignRepo: mocks.NewMockCampaignRequestRepository(ctrl),
		dealerRepo:   mocks.NewMockDealerRepository(ctrl),
		creativeRepo: mocks.NewMockCreativeFileRepository(ctrl),
		activityRepo: mocks.NewMockActivityLogRepository(ctrl),
		objectStore:  storagemocks.NewMockObjectStorage(ctrl),
		client:       metamocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{
		Meta: config.Meta{
			Objective:        "OUTCOME_AWARENESS",
			BillingEvent:     "IMPRESSIONS",
			OptimizationGoal: "REACH",
			TargetCountry:    "TR",
		},
	}

	service := NewService(cfg, m.campaignRepo, m.dealerRepo, m.creativeRepo, m.activityRepo, m.objectStore, m.client)
	return service, m
}

func date(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)
	return parsed
}

func stringPtr(s string) *string {
	return &s
}

func approvedCampaign() *domain.CampaignRequest {
	return &domain.CampaignRequest{
		ID:           "CMP001",
		DealerID:     "DLR001",
		CampaignName: "Lansman Mart",
		Budget:       decimal.NewFromInt(30000),
		StartDate:    date("2025-03-01"),
		EndDate:      date("2025-03-10"),
		WebsiteURL:   "https://dealer.example.com/ofertas",
		Status:       domain.CampaignStatusApproved,
	}
}

func activeDealer() *domain.Dealer {
	return &domain.Dealer{
		ID:         "DLR001",
		DealerName: "Dealer Merkez",
		Email:      "merkez@example.com",
		Status:     domain.DealerStatusActive,
		FBPageID:   stringPtr("PAGE123"),
	}
}

func TestService_PushToFacebook_Preconditions(t *testing.T) {
	actor := &domain.Claims{UserID: 7}
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(m *pushMocks)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Campanha inexistente retorna ErrNotFound",
			setup: func(m *pushMocks) {
				m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name: "Campanha não aprovada é recusada antes de qualquer chamada externa",
			setup: func(m *pushMocks) {
				campaign := approvedCampaign()
				campaign.Status = domain.CampaignStatusPendingApproval
				m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)
			},
			validate: func(t *testing.T, err error) {
				var preconditionErr *PreconditionError
				assert.ErrorAs(t, err, &preconditionErr)
				assert.Contains(t, preconditionErr.Reason, "aprovada")
			},
		},
		{
			name: "Campanha já publicada não é re-empurrada",
			setup: func(m *pushMocks) {
				campaign := approvedCampaign()
				campaign.FBPushStatus = domain.PushStatusSucceeded
				m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)
			},
			validate: func(t *testing.T, err error) {
				var preconditionErr *PreconditionError
				assert.ErrorAs(t, err, &preconditionErr)
				assert.Contains(t, preconditionErr.Reason, "já foi enviada")
			},
		},
		{
			name: "Dealer sem Facebook Page ID é recusado",
			setup: func(m *pushMocks) {
				dealer := activeDealer()
				dealer.FBPageID = nil
				m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)
				m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(dealer, nil)
			},
			validate: func(t *testing.T, err error) {
				var preconditionErr *PreconditionError
				assert.ErrorAs(t, err, &preconditionErr)
				assert.Contains(t, preconditionErr.Reason, "Facebook Page ID")
			},
		},
		{
			name: "Sem URL de destino na campanha nem no dealer",
			setup: func(m *pushMocks) {
				campaign := approvedCampaign()
				campaign.WebsiteURL = ""
				campaign.RedirectType = domain.RedirectSales
				m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)
				m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(activeDealer(), nil)
			},
			validate: func(t *testing.T, err error) {
				var preconditionErr *PreconditionError
				assert.ErrorAs(t, err, &preconditionErr)
				assert.Contains(t, preconditionErr.Reason, "URL de destino")
			},
		},
		{
			name: "Push concorrente perde o CAS e é recusado",
			setup: func(m *pushMocks) {
				m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)
				m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(activeDealer(), nil)
				m.campaignRepo.EXPECT().BeginPush(ctx, "CMP001").Return(false, nil)
			},
			validate: func(t *testing.T, err error) {
				var preconditionErr *PreconditionError
				assert.ErrorAs(t, err, &preconditionErr)
				assert.Contains(t, preconditionErr.Reason, "já em andamento")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Controller por caso: pré-condição violada não pode gerar nenhuma
			// chamada externa nem entrada de auditoria, e o Finish garante isso.
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newPushService(ctrl)
			tt.setup(m)

			result, err := service.PushToFacebook(ctx, "CMP001", actor)

			assert.Nil(t, result)
			tt.validate(t, err)
		})
	}
}

func TestService_PushToFacebook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newPushService(ctrl)

	ctx := context.Background()
	actor := &domain.Claims{UserID: 7}

	m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)
	m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(activeDealer(), nil)
	m.campaignRepo.EXPECT().BeginPush(ctx, "CMP001").Return(true, nil)

	m.activityRepo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.ActivityLogEntry) error {
			assert.Equal(t, domain.ActivityPushAttempted, entry.Kind)
			assert.Equal(t, 7, *entry.ActorID)
			return nil
		})

	m.client.EXPECT().
		CreateCampaign(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params *metadomain.CreateCampaignParams) (string, error) {
			assert.Equal(t, "Lansman Mart", params.Name)
			assert.Equal(t, "OUTCOME_AWARENESS", params.Objective)
			assert.Equal(t, metadomain.StatusPaused, params.Status)
			return "fb-campaign-1", nil
		})

	m.client.EXPECT().
		CreateAdSet(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params *metadomain.CreateAdSetParams) (string, error) {
			assert.Equal(t, "fb-campaign-1", params.CampaignID)
			// 30000 TRY em 10 dias (janela inclusiva) = 300000 kuruş por dia.
			assert.Equal(t, int64(300000), params.DailyBudget)
			// REACH + IMPRESSIONS: lance manual de 10% do orçamento diário.
			assert.Equal(t, int64(30000), params.BidAmount)
			assert.Equal(t, []string{"TR"}, params.Targeting.GeoLocations.Countries)
			return "fb-adset-1", nil
		})

	// Nenhum criativo anexado: passo de imagem é pulado sem falha.
	m.creativeRepo.EXPECT().GetLatestByCampaign(ctx, "CMP001").Return(nil, nil)

	m.client.EXPECT().
		CreateCreative(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params *metadomain.CreateCreativeParams) (string, error) {
			assert.Equal(t, "PAGE123", params.ObjectStorySpec.PageID)
			assert.Equal(t, "https://dealer.example.com/ofertas", params.ObjectStorySpec.LinkData.Link)
			assert.Equal(t, "LEARN_MORE", params.ObjectStorySpec.LinkData.CallToAction.Type)
			assert.Empty(t, params.ObjectStorySpec.LinkData.ImageHash)
			return "fb-creative-1", nil
		})

	m.client.EXPECT().
		CreateAd(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params *metadomain.CreateAdParams) (string, error) {
			assert.Equal(t, "fb-adset-1", params.AdSetID)
			assert.Equal(t, "fb-creative-1", params.Creative.CreativeID)
			return "fb-ad-1", nil
		})

	m.campaignRepo.EXPECT().
		SavePushSuccess(ctx, "CMP001", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result repository.PushResult, entry *domain.ActivityLogEntry) error {
			assert.Equal(t, "fb-campaign-1", result.CampaignID)
			assert.Equal(t, "fb-adset-1", result.AdSetID)
			assert.Equal(t, "fb-creative-1", result.CreativeID)
			assert.Equal(t, "fb-ad-1", result.AdID)
			assert.Equal(t, domain.ActivityPushSucceeded, entry.Kind)
			return nil
		})

	pushed := approvedCampaign()
	pushed.FBPushStatus = domain.PushStatusSucceeded
	pushed.FBCampaignID = "fb-campaign-1"
	m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(pushed, nil)

	result, err := service.PushToFacebook(ctx, "CMP001", actor)

	assert.NoError(t, err)
	assert.Equal(t, domain.PushStatusSucceeded, result.FBPushStatus)
	assert.Equal(t, "fb-campaign-1", result.FBCampaignID)
}

func TestService_PushToFacebook_FailureMidChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newPushService(ctrl)

	ctx := context.Background()
	remoteErr := errors.New("rate limit")

	m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)
	m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(activeDealer(), nil)
	m.campaignRepo.EXPECT().BeginPush(ctx, "CMP001").Return(true, nil)
	m.activityRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)

	m.client.EXPECT().CreateCampaign(ctx, gomock.Any()).Return("fb-campaign-1", nil)
	m.client.EXPECT().CreateAdSet(ctx, gomock.Any()).Return("", remoteErr)

	// A falha grava o push como failed junto da entrada com os IDs parciais.
	m.campaignRepo.EXPECT().
		SavePushFailure(ctx, "CMP001", remoteErr.Error(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, entry *domain.ActivityLogEntry) error {
			assert.Equal(t, domain.ActivityPushFailed, entry.Kind)
			assert.Equal(t, "create_adset", entry.Detail["step"])
			assert.Equal(t, "fb-campaign-1", entry.Detail["fb_campaign_id"])
			return nil
		})

	result, err := service.PushToFacebook(ctx, "CMP001", nil)

	assert.Nil(t, result)
	var pushErr *PushError
	assert.ErrorAs(t, err, &pushErr)
	assert.Equal(t, "create_adset", pushErr.Step)
	assert.ErrorIs(t, err, remoteErr)
}

func TestService_PushToFacebook_ImageFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newPushService(ctrl)

	ctx := context.Background()

	m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)
	m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(activeDealer(), nil)
	m.campaignRepo.EXPECT().BeginPush(ctx, "CMP001").Return(true, nil)
	m.activityRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)

	m.client.EXPECT().CreateCampaign(ctx, gomock.Any()).Return("fb-campaign-1", nil)
	m.client.EXPECT().CreateAdSet(ctx, gomock.Any()).Return("fb-adset-1", nil)

	m.creativeRepo.EXPECT().GetLatestByCampaign(ctx, "CMP001").Return(&domain.CreativeFile{
		ID:         "FIL001",
		CampaignID: "CMP001",
		FileName:   "banner.png",
		StorageKey: "campaigns/CMP001/abc.png",
	}, nil)
	m.objectStore.EXPECT().Download(ctx, "campaigns/CMP001/abc.png").Return(nil, errors.New("objeto não encontrado"))

	// Falha no download vira nota de auditoria e o push segue sem imagem.
	m.activityRepo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.ActivityLogEntry) error {
			assert.Equal(t, domain.ActivityNote, entry.Kind)
			return nil
		})

	m.client.EXPECT().
		CreateCreative(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params *metadomain.CreateCreativeParams) (string, error) {
			assert.Empty(t, params.ObjectStorySpec.LinkData.ImageHash)
			return "fb-creative-1", nil
		})
	m.client.EXPECT().CreateAd(ctx, gomock.Any()).Return("fb-ad-1", nil)
	m.campaignRepo.EXPECT().SavePushSuccess(ctx, "CMP001", gomock.Any(), gomock.Any()).Return(nil)
	m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)

	_, err := service.PushToFacebook(ctx, "CMP001", nil)

	assert.NoError(t, err)
}

func TestService_PushToFacebook_InstagramActorRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newPushService(ctrl)

	ctx := context.Background()

	dealer := activeDealer()
	dealer.InstagramActorID = stringPtr("IG123")

	m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)
	m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(dealer, nil)
	m.campaignRepo.EXPECT().BeginPush(ctx, "CMP001").Return(true, nil)
	m.activityRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)

	m.client.EXPECT().CreateCampaign(ctx, gomock.Any()).Return("fb-campaign-1", nil)
	m.client.EXPECT().CreateAdSet(ctx, gomock.Any()).Return("fb-adset-1", nil)
	m.creativeRepo.EXPECT().GetLatestByCampaign(ctx, "CMP001").Return(nil, nil)

	// Primeira tentativa leva o instagram_actor_id e é recusada pela API.
	m.client.EXPECT().
		CreateCreative(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params *metadomain.CreateCreativeParams) (string, error) {
			assert.Equal(t, "IG123", params.ObjectStorySpec.InstagramActorID)
			return "", &metadomain.APIError{
				Code:    100,
				Message: "Invalid parameter",
				ErrorData: &metadomain.ErrorData{
					BlameFieldSpecs: [][]string{{"instagram_actor_id"}},
				},
			}
		})

	// Re-tentativa única sem o campo.
	m.client.EXPECT().
		CreateCreative(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params *metadomain.CreateCreativeParams) (string, error) {
			assert.Empty(t, params.ObjectStorySpec.InstagramActorID)
			return "fb-creative-2", nil
		})

	m.client.EXPECT().CreateAd(ctx, gomock.Any()).Return("fb-ad-1", nil)
	m.campaignRepo.EXPECT().
		SavePushSuccess(ctx, "CMP001", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result repository.PushResult, _ *domain.ActivityLogEntry) error {
			assert.Equal(t, "fb-creative-2", result.CreativeID)
			return nil
		})
	m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)

	_, err := service.PushToFacebook(ctx, "CMP001", nil)

	assert.NoError(t, err)
}

func TestService_CheckRemoteStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Campanha nunca publicada é recusada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newPushService(ctrl)
		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(approvedCampaign(), nil)

		status, err := service.CheckRemoteStatus(ctx, "CMP001", nil)

		assert.Nil(t, status)
		var preconditionErr *PreconditionError
		assert.ErrorAs(t, err, &preconditionErr)
	})

	t.Run("Consulta retorna o status remoto e registra auditoria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newPushService(ctrl)

		campaign := approvedCampaign()
		campaign.FBCampaignID = "fb-campaign-1"
		campaign.FBPushStatus = domain.PushStatusSucceeded

		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)
		m.client.EXPECT().GetCampaignStatus(ctx, "fb-campaign-1").Return(&metadomain.CampaignStatus{
			ID:              "fb-campaign-1",
			Status:          "PAUSED",
			EffectiveStatus: "PAUSED",
		}, nil)
		m.activityRepo.EXPECT().
			Append(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *domain.ActivityLogEntry) error {
				assert.Equal(t, domain.ActivityStatusQueried, entry.Kind)
				return nil
			})

		status, err := service.CheckRemoteStatus(ctx, "CMP001", nil)

		assert.NoError(t, err)
		assert.Equal(t, "PAUSED", status.Status)
	})
}

func TestDailyBudgetMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		budget decimal.Decimal
		start  string
		end    string
		want   int64
	}{
		{
			name:   "30000 TRY em 10 dias",
			budget: decimal.NewFromInt(30000),
			start:  "2025-03-01",
			end:    "2025-03-10",
			want:   300000,
		},
		{
			name:   "Divisão trunca para baixo",
			budget: decimal.NewFromInt(100),
			start:  "2025-03-01",
			end:    "2025-03-03",
			want:   3333,
		},
		{
			name:   "Orçamento diário nunca fica abaixo do mínimo da plataforma",
			budget: decimal.NewFromInt(1),
			start:  "2025-03-01",
			end:    "2025-03-30",
			want:   100,
		},
		{
			name:   "Campanha de um dia usa o orçamento inteiro",
			budget: decimal.NewFromInt(500),
			start:  "2025-03-01",
			end:    "2025-03-01",
			want:   50000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dailyBudgetMinorUnits(tt.budget, date(tt.start), date(tt.end))

			assert.Equal(t, tt.want, got)
		})
	}
}
