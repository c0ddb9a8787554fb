package visuals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	notificationmocks "github.com/dealerhub/dealer-ops-api/infrastructure/notification/mocks"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository/mocks"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type visualMocks struct {
	visualRepo *mocks.MockVisualRequestRepository
	dealerRepo *mocks.MockDealerRepository
	mailer     *notificationmocks.MockMailer
}

func newVisualService(ctrl *gomock.Controller) (Manager, *visualMocks) {
	m := &visualMocks{
		visualRepo: mocks.NewMockVisualRequestRepository(ctrl),
		dealerRepo: mocks.NewMockDealerRepository(ctrl),
		mailer:     notificationmocks.NewMockMailer(ctrl),
	}
	return NewService(m.visualRepo, m.dealerRepo, m.mailer), m
}

func stringPtr(s string) *string {
	return &s
}

func assigneePtr(a domain.VisualAssignee) *domain.VisualAssignee {
	return &a
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	validRequest := func() *domain.CreateVisualRequest {
		return &domain.CreateVisualRequest{
			DealerID:      "DLR001",
			WorkRequest:   "Pôsteres para o lançamento do novo modelo",
			Quantity:      50,
			WorkDetails:   "Formato A2, acabamento fosco",
			Deadline:      "2025-06-15",
			CreativeTypes: []string{"poster", "rollup"},
		}
	}

	t.Run("Pedido sem descrição do trabalho é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newVisualService(ctrl)

		req := validRequest()
		req.WorkRequest = "  "

		_, err := service.Create(ctx, req, nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "work_request")
	})

	t.Run("Quantidade não positiva é recusada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newVisualService(ctrl)

		req := validRequest()
		req.Quantity = 0

		_, err := service.Create(ctx, req, nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Tipo de material desconhecido é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newVisualService(ctrl)

		req := validRequest()
		req.CreativeTypes = []string{"hologram"}

		_, err := service.Create(ctx, req, nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "hologram")
	})

	t.Run("Prazo inválido é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newVisualService(ctrl)

		req := validRequest()
		req.Deadline = "15/06/2025"

		_, err := service.Create(ctx, req, nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Usuário de dealer cria apenas para o próprio dealer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newVisualService(ctrl)

		actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR001")}
		req := validRequest()
		req.DealerID = "DLR999"

		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(&domain.Dealer{
			ID:         "DLR001",
			DealerName: "Dealer Merkez",
		}, nil)
		m.visualRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, visual *domain.VisualRequest) error {
				assert.Equal(t, domain.VisualStatusPending, visual.Status)
				assert.Equal(t, []string{"poster", "rollup"}, visual.CreativeTypes)
				visual.ID = "VIS001"
				return nil
			})

		visual, err := service.Create(ctx, req, actor)

		assert.NoError(t, err)
		assert.Equal(t, "DLR001", visual.DealerID)
		assert.Equal(t, "Dealer Merkez", visual.DealerName)
	})
}

func TestService_List_DealerScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newVisualService(ctrl)
	ctx := context.Background()

	actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR001")}

	m.visualRepo.EXPECT().
		List(ctx, &repository.VisualRequestFilter{DealerID: "DLR001"}).
		Return([]*domain.VisualRequest{}, nil)

	_, err := service.List(ctx, &repository.VisualRequestFilter{DealerID: "DLR999"}, actor)

	assert.NoError(t, err)
}

func TestService_Get_Scoping(t *testing.T) {
	ctx := context.Background()

	t.Run("Usuário de dealer não enxerga pedido de outro dealer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newVisualService(ctrl)

		m.visualRepo.EXPECT().GetByID(ctx, "VIS001").Return(&domain.VisualRequest{
			ID:       "VIS001",
			DealerID: "DLR002",
		}, nil)

		actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR001")}
		_, err := service.Get(ctx, "VIS001", actor)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Pedido inexistente retorna ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newVisualService(ctrl)
		m.visualRepo.EXPECT().GetByID(ctx, "VIS404").Return(nil, nil)

		_, err := service.Get(ctx, "VIS404", nil)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	pending := func() *domain.VisualRequest {
		return &domain.VisualRequest{
			ID:          "VIS001",
			DealerID:    "DLR001",
			WorkRequest: "Pôsteres para o lançamento",
			Status:      domain.VisualStatusPending,
		}
	}

	t.Run("Status desconhecido é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newVisualService(ctrl)

		_, err := service.ChangeStatus(ctx, "VIS001", "archived", "", nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Pedido concluído não muda mais de status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newVisualService(ctrl)

		completed := pending()
		completed.Status = domain.VisualStatusCompleted
		m.visualRepo.EXPECT().GetByID(ctx, "VIS001").Return(completed, nil)

		_, err := service.ChangeStatus(ctx, "VIS001", domain.VisualStatusApproved, "", nil)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "concluído")
	})

	t.Run("Pedido inexistente retorna ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newVisualService(ctrl)
		m.visualRepo.EXPECT().GetByID(ctx, "VIS404").Return(nil, nil)

		_, err := service.ChangeStatus(ctx, "VIS404", domain.VisualStatusApproved, "", nil)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Encaminhar para a agência grava a atribuição sem notificar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newVisualService(ctrl)

		assigned := pending()
		assigned.Status = domain.VisualStatusAwaitingArtwork
		assigned.AssignedTo = assigneePtr(domain.AssigneeCreativeAgency)

		m.visualRepo.EXPECT().GetByID(ctx, "VIS001").Return(pending(), nil)
		m.visualRepo.EXPECT().
			SetStatus(ctx, "VIS001", domain.VisualStatusAwaitingArtwork, "briefing aprovado",
				assigneePtr(domain.AssigneeCreativeAgency)).
			Return(nil)
		m.visualRepo.EXPECT().GetByID(ctx, "VIS001").Return(assigned, nil)

		result, err := service.ChangeStatus(ctx, "VIS001", domain.VisualStatusAwaitingArtwork,
			"briefing aprovado", assigneePtr(domain.AssigneeCreativeAgency))

		assert.NoError(t, err)
		assert.Equal(t, domain.VisualStatusAwaitingArtwork, result.Status)
		assert.Equal(t, domain.AssigneeCreativeAgency, *result.AssignedTo)
	})

	t.Run("Devolver o material pronto para o dealer notifica por e-mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newVisualService(ctrl)

		delivered := pending()
		delivered.Status = domain.VisualStatusAwaitingDealer

		m.visualRepo.EXPECT().GetByID(ctx, "VIS001").Return(pending(), nil)
		m.visualRepo.EXPECT().
			SetStatus(ctx, "VIS001", domain.VisualStatusAwaitingDealer, "artes finais anexadas", gomock.Nil()).
			Return(nil)
		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(&domain.Dealer{
			ID:    "DLR001",
			Email: "merkez@example.com",
		}, nil)
		m.mailer.EXPECT().Send([]string{"merkez@example.com"}, gomock.Any(), gomock.Any())
		m.visualRepo.EXPECT().GetByID(ctx, "VIS001").Return(delivered, nil)

		result, err := service.ChangeStatus(ctx, "VIS001", domain.VisualStatusAwaitingDealer,
			"artes finais anexadas", nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.VisualStatusAwaitingDealer, result.Status)
	})
}
