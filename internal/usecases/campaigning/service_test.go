package campaigning

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	notificationmocks "github.com/dealerhub/dealer-ops-api/infrastructure/notification/mocks"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository/mocks"
	storagemocks "github.com/dealerhub/dealer-ops-api/infrastructure/storage/mocks"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/internal/usecases/budgeting"
	"go.uber.org/mock/gomock"
)

type campaignMocks struct {
	campaignRepo *mocks.MockCampaignRequestRepository
	dealerRepo   *mocks.MockDealerRepository
	creativeRepo *mocks.MockCreativeFileRepository
	activityRepo *mocks.MockActivityLogRepository
	planRepo     *mocks.MockBudgetPlanRepository
	objectStore  *storagemocks.MockObjectStorage
	mailer       *notificationmocks.MockMailer
}

func newCampaignService(ctrl *gomock.Controller) (Manager, *campaignMocks) {
	m := &campaignMocks{
		campaignRepo: mocks.NewMockCampaignRequestRepository(ctrl),
		dealerRepo:   mocks.NewMockDealerRepository(ctrl),
		creativeRepo: mocks.NewMockCreativeFileRepository(ctrl),
		activityRepo: mocks.NewMockActivityLogRepository(ctrl),
		planRepo:     mocks.NewMockBudgetPlanRepository(ctrl),
		objectStore:  storagemocks.NewMockObjectStorage(ctrl),
		mailer:       notificationmocks.NewMockMailer(ctrl),
	}

	service := NewService(
		m.campaignRepo,
		m.dealerRepo,
		m.creativeRepo,
		m.activityRepo,
		budgeting.NewService(m.planRepo),
		m.objectStore,
		m.mailer,
	)
	return service, m
}

func stringPtr(s string) *string {
	return &s
}

func validCreateRequest() *domain.CreateCampaignRequest {
	return &domain.CreateCampaignRequest{
		DealerID:     "DLR001",
		CampaignName: "Bahar Kampanyası",
		Budget:       decimal.NewFromInt(25000),
		StartDate:    "2025-04-01",
		EndDate:      "2025-04-30",
		Platforms:    []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram},
		AdMessage:    "Ofertas de primavera",
		CTAType:      "LEARN_MORE",
		WebsiteURL:   "https://dealer.example.com",
	}
}

func TestService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *domain.CreateCampaignRequest)
		reason string
	}{
		{
			name:   "dealer_id é obrigatório",
			mutate: func(req *domain.CreateCampaignRequest) { req.DealerID = "" },
			reason: "dealer_id",
		},
		{
			name:   "campaign_name é obrigatório",
			mutate: func(req *domain.CreateCampaignRequest) { req.CampaignName = "   " },
			reason: "campaign_name",
		},
		{
			name:   "budget deve ser positivo",
			mutate: func(req *domain.CreateCampaignRequest) { req.Budget = decimal.Zero },
			reason: "budget",
		},
		{
			name:   "start_date em formato inválido",
			mutate: func(req *domain.CreateCampaignRequest) { req.StartDate = "01/04/2025" },
			reason: "start_date",
		},
		{
			name:   "end_date anterior a start_date",
			mutate: func(req *domain.CreateCampaignRequest) { req.EndDate = "2025-03-01" },
			reason: "end_date",
		},
		{
			name:   "ao menos uma plataforma",
			mutate: func(req *domain.CreateCampaignRequest) { req.Platforms = nil },
			reason: "plataforma",
		},
		{
			name:   "plataforma desconhecida",
			mutate: func(req *domain.CreateCampaignRequest) { req.Platforms = []domain.Platform{"tiktok"} },
			reason: "plataforma inválida",
		},
		{
			name:   "cta_type fora da lista aceita",
			mutate: func(req *domain.CreateCampaignRequest) { req.CTAType = "BUY_NOW" },
			reason: "cta_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Requisição inválida não pode tocar em nenhum repositório.
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, _ := newCampaignService(ctrl)

			req := validCreateRequest()
			tt.mutate(req)

			campaign, budgetResult, err := service.Create(ctx, req, nil)

			assert.Nil(t, campaign)
			assert.Nil(t, budgetResult)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Reason, tt.reason)
		})
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	dealer := &domain.Dealer{
		ID:         "DLR001",
		DealerName: "Dealer Merkez",
		Email:      "merkez@example.com",
		Status:     domain.DealerStatusActive,
	}

	t.Run("Usuário de dealer só cria campanha para o próprio dealer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR001")}
		req := validCreateRequest()
		req.DealerID = "DLR999" // ignorado: o dealer do token prevalece

		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(dealer, nil)
		m.planRepo.EXPECT().ListOverlapping(ctx, "DLR001", gomock.Any(), gomock.Any()).Return(nil, nil)
		m.campaignRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.CampaignRequest) error {
				c.ID = "CMP001"
				return nil
			})
		m.activityRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send([]string{"merkez@example.com"}, gomock.Any(), gomock.Any())

		campaign, budgetResult, err := service.Create(ctx, req, actor)

		assert.NoError(t, err)
		assert.Equal(t, "DLR001", campaign.DealerID)
		assert.Equal(t, domain.CampaignStatusPendingApproval, campaign.Status)
		assert.NotNil(t, budgetResult)
		assert.False(t, budgetResult.HasPlan)
	})

	t.Run("Dealer inexistente é recusado antes da persistência", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(nil, nil)

		campaign, _, err := service.Create(ctx, validCreateRequest(), nil)

		assert.Nil(t, campaign)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Falha na checagem de verba não bloqueia a criação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(dealer, nil)
		m.planRepo.EXPECT().
			ListOverlapping(ctx, "DLR001", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout no banco"))
		m.campaignRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		m.activityRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any())

		campaign, budgetResult, err := service.Create(ctx, validCreateRequest(), nil)

		assert.NoError(t, err)
		assert.NotNil(t, campaign)
		assert.Nil(t, budgetResult)
	})
}

func TestService_Get_Scoping(t *testing.T) {
	ctx := context.Background()

	campaign := &domain.CampaignRequest{
		ID:       "CMP001",
		DealerID: "DLR001",
		Status:   domain.CampaignStatusPendingApproval,
	}

	t.Run("Usuário de outro dealer não enxerga a campanha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)
		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)

		actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR002")}
		result, err := service.Get(ctx, "CMP001", actor)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Administrador sem dealer vinculado enxerga qualquer campanha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)
		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)

		result, err := service.Get(ctx, "CMP001", &domain.Claims{UserID: 1})

		assert.NoError(t, err)
		assert.Equal(t, "CMP001", result.ID)
	})

	t.Run("Campanha inexistente retorna ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)
		m.campaignRepo.EXPECT().GetByID(ctx, "CMP404").Return(nil, nil)

		_, err := service.Get(ctx, "CMP404", nil)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_List_DealerScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newCampaignService(ctrl)
	ctx := context.Background()

	actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR001")}

	// O filtro pedido tenta outro dealer; o escopo do token prevalece.
	m.campaignRepo.EXPECT().
		List(ctx, repository.CampaignFilter{DealerID: "DLR001"}).
		Return([]*domain.CampaignRequest{}, nil)

	_, err := service.List(ctx, repository.CampaignFilter{DealerID: "DLR999"}, actor)

	assert.NoError(t, err)
}

func TestService_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	dealer := &domain.Dealer{
		ID:         "DLR001",
		DealerName: "Dealer Merkez",
		Email:      "merkez@example.com",
	}

	t.Run("Status desconhecido é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newCampaignService(ctrl)

		_, err := service.ChangeStatus(ctx, "CMP001", "archived", "", nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Transição fora da máquina de estados é recusada sem escrita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(&domain.CampaignRequest{
			ID:       "CMP001",
			DealerID: "DLR001",
			Status:   domain.CampaignStatusCompleted,
		}, nil)

		_, err := service.ChangeStatus(ctx, "CMP001", domain.CampaignStatusLive, "", nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "não é permitida")
	})

	t.Run("Aprovação registra auditoria com a nota e notifica o dealer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		pending := &domain.CampaignRequest{
			ID:           "CMP001",
			DealerID:     "DLR001",
			CampaignName: "Bahar Kampanyası",
			Status:       domain.CampaignStatusPendingApproval,
		}
		approved := *pending
		approved.Status = domain.CampaignStatusApproved

		actor := &domain.Claims{UserID: 1}

		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(pending, nil)
		m.campaignRepo.EXPECT().
			SetStatus(ctx, "CMP001", domain.CampaignStatusApproved, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ domain.CampaignStatus, entry *domain.ActivityLogEntry) error {
				assert.Equal(t, domain.ActivityStatusChanged, entry.Kind)
				assert.Equal(t, "pending_approval", entry.Detail["from"])
				assert.Equal(t, "approved", entry.Detail["to"])
				assert.Equal(t, "verba confirmada", entry.Detail["note"])
				return nil
			})
		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(dealer, nil)
		m.mailer.EXPECT().Send([]string{"merkez@example.com"}, gomock.Any(), gomock.Any())
		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(&approved, nil)

		result, err := service.ChangeStatus(ctx, "CMP001", domain.CampaignStatusApproved, "verba confirmada", actor)

		assert.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusApproved, result.Status)
	})
}

func TestService_UploadCreative(t *testing.T) {
	ctx := context.Background()

	campaign := &domain.CampaignRequest{
		ID:       "CMP001",
		DealerID: "DLR001",
		Status:   domain.CampaignStatusPendingApproval,
	}

	t.Run("Tipo de arquivo inválido é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newCampaignService(ctrl)

		_, err := service.UploadCreative(ctx, "CMP001", "banner.png", "thumbnail", "image/png", []byte{1}, nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Upload bem-sucedido grava o arquivo e a auditoria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		data := []byte("conteudo-png")

		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)
		m.objectStore.EXPECT().Upload(ctx, gomock.Any(), data, "image/png").Return(nil)
		m.objectStore.EXPECT().PublicURL(gomock.Any()).Return("https://cdn.example.com/campaigns/CMP001/abc.png")
		m.creativeRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, file *domain.CreativeFile) error {
				assert.Equal(t, "CMP001", file.CampaignID)
				assert.Equal(t, domain.CreativeFilePost, file.FileType)
				assert.Equal(t, int64(len(data)), file.SizeBytes)
				assert.Contains(t, file.StorageKey, "campaigns/CMP001/")
				return nil
			})
		m.activityRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)

		file, err := service.UploadCreative(ctx, "CMP001", "banner.png", domain.CreativeFilePost, "image/png", data, nil)

		assert.NoError(t, err)
		assert.Equal(t, "banner.png", file.FileName)
		assert.Equal(t, "https://cdn.example.com/campaigns/CMP001/abc.png", file.URL)
	})

	t.Run("Falha ao registrar remove o objeto órfão do storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		repoErr := errors.New("violação de constraint")

		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)
		m.objectStore.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "image/png").Return(nil)
		m.objectStore.EXPECT().PublicURL(gomock.Any()).Return("https://cdn.example.com/x.png")
		m.creativeRepo.EXPECT().Create(ctx, gomock.Any()).Return(repoErr)
		m.objectStore.EXPECT().Delete(ctx, gomock.Any()).Return(nil)

		_, err := service.UploadCreative(ctx, "CMP001", "banner.png", domain.CreativeFilePost, "image/png", []byte{1}, nil)

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestService_DeleteCreative(t *testing.T) {
	ctx := context.Background()

	campaign := &domain.CampaignRequest{
		ID:       "CMP001",
		DealerID: "DLR001",
		Status:   domain.CampaignStatusPendingApproval,
	}

	t.Run("Arquivo de outra campanha não pode ser removido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)
		m.creativeRepo.EXPECT().GetByID(ctx, "FIL001").Return(&domain.CreativeFile{
			ID:         "FIL001",
			CampaignID: "CMP999",
		}, nil)

		err := service.DeleteCreative(ctx, "CMP001", "FIL001", nil)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Remoção apaga do storage, do banco e registra auditoria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newCampaignService(ctrl)

		m.campaignRepo.EXPECT().GetByID(ctx, "CMP001").Return(campaign, nil)
		m.creativeRepo.EXPECT().GetByID(ctx, "FIL001").Return(&domain.CreativeFile{
			ID:         "FIL001",
			CampaignID: "CMP001",
			FileName:   "banner.png",
			StorageKey: "campaigns/CMP001/abc.png",
		}, nil)
		m.objectStore.EXPECT().Delete(ctx, "campaigns/CMP001/abc.png").Return(nil)
		m.creativeRepo.EXPECT().Delete(ctx, "FIL001").Return(nil)
		m.activityRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)

		assert.NoError(t, service.DeleteCreative(ctx, "CMP001", "FIL001", nil))
	})
}
