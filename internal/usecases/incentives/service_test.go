package incentives

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	notificationmocks "github.com/dealerhub/dealer-ops-api/infrastructure/notification/mocks"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository/mocks"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type incentiveMocks struct {
	incentiveRepo *mocks.MockIncentiveRepository
	dealerRepo    *mocks.MockDealerRepository
	mailer        *notificationmocks.MockMailer
}

func newIncentiveService(ctrl *gomock.Controller) (Manager, *incentiveMocks) {
	m := &incentiveMocks{
		incentiveRepo: mocks.NewMockIncentiveRepository(ctrl),
		dealerRepo:    mocks.NewMockDealerRepository(ctrl),
		mailer:        notificationmocks.NewMockMailer(ctrl),
	}
	return NewService(m.incentiveRepo, m.dealerRepo, m.mailer), m
}

func stringPtr(s string) *string {
	return &s
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	validRequest := func() *domain.CreateIncentiveRequest {
		return &domain.CreateIncentiveRequest{
			DealerID:    "DLR001",
			Title:       "Apoio campanha regional",
			Description: "Verba extra para o lançamento",
			Amount:      decimal.NewFromInt(15000),
			PeriodStart: "2025-05-01",
			PeriodEnd:   "2025-05-31",
		}
	}

	t.Run("Valor não positivo é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newIncentiveService(ctrl)

		req := validRequest()
		req.Amount = decimal.Zero

		_, err := service.Create(ctx, req, nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Período invertido é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newIncentiveService(ctrl)

		req := validRequest()
		req.PeriodEnd = "2025-04-01"

		_, err := service.Create(ctx, req, nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Usuário de dealer cria apenas para o próprio dealer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newIncentiveService(ctrl)

		actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR001")}
		req := validRequest()
		req.DealerID = "DLR999"

		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(&domain.Dealer{
			ID:         "DLR001",
			DealerName: "Dealer Merkez",
		}, nil)
		m.incentiveRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, incentive *domain.IncentiveRequest) error {
				incentive.ID = "INC001"
				return nil
			})

		incentive, err := service.Create(ctx, req, actor)

		assert.NoError(t, err)
		assert.Equal(t, "DLR001", incentive.DealerID)
		assert.Equal(t, domain.IncentiveStatusPending, incentive.Status)
		assert.Equal(t, "Dealer Merkez", incentive.DealerName)
	})
}

func TestService_List_DealerScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newIncentiveService(ctrl)
	ctx := context.Background()

	actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR001")}

	m.incentiveRepo.EXPECT().
		List(ctx, &repository.IncentiveFilter{DealerID: "DLR001"}).
		Return([]*domain.IncentiveRequest{}, nil)

	_, err := service.List(ctx, &repository.IncentiveFilter{DealerID: "DLR999"}, actor)

	assert.NoError(t, err)
}

func TestService_Decide(t *testing.T) {
	ctx := context.Background()

	pending := func() *domain.IncentiveRequest {
		return &domain.IncentiveRequest{
			ID:       "INC001",
			DealerID: "DLR001",
			Title:    "Apoio campanha regional",
			Status:   domain.IncentiveStatusPending,
		}
	}

	t.Run("Decisão precisa ser approved ou rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newIncentiveService(ctrl)

		_, err := service.Decide(ctx, "INC001", domain.IncentiveStatusPending, "")

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Solicitação já decidida não pode ser re-decidida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newIncentiveService(ctrl)

		decided := pending()
		decided.Status = domain.IncentiveStatusApproved
		m.incentiveRepo.EXPECT().GetByID(ctx, "INC001").Return(decided, nil)

		_, err := service.Decide(ctx, "INC001", domain.IncentiveStatusRejected, "")

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "já decidida")
	})

	t.Run("Solicitação inexistente retorna ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newIncentiveService(ctrl)
		m.incentiveRepo.EXPECT().GetByID(ctx, "INC404").Return(nil, nil)

		_, err := service.Decide(ctx, "INC404", domain.IncentiveStatusApproved, "")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Aprovação grava a nota e notifica o dealer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newIncentiveService(ctrl)

		approved := pending()
		approved.Status = domain.IncentiveStatusApproved
		approved.AdminNote = "dentro do orçamento"

		m.incentiveRepo.EXPECT().GetByID(ctx, "INC001").Return(pending(), nil)
		m.incentiveRepo.EXPECT().
			SetStatus(ctx, "INC001", domain.IncentiveStatusApproved, "dentro do orçamento").
			Return(nil)
		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(&domain.Dealer{
			ID:    "DLR001",
			Email: "merkez@example.com",
		}, nil)
		m.mailer.EXPECT().Send([]string{"merkez@example.com"}, gomock.Any(), gomock.Any())
		m.incentiveRepo.EXPECT().GetByID(ctx, "INC001").Return(approved, nil)

		result, err := service.Decide(ctx, "INC001", domain.IncentiveStatusApproved, "dentro do orçamento")

		assert.NoError(t, err)
		assert.Equal(t, domain.IncentiveStatusApproved, result.Status)
		assert.Equal(t, "dentro do orçamento", result.AdminNote)
	})
}
