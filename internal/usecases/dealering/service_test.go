package dealering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	notificationmocks "github.com/dealerhub/dealer-ops-api/infrastructure/notification/mocks"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository/mocks"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type dealerMocks struct {
	dealerRepo *mocks.MockDealerRepository
	userRepo   *mocks.MockUserRepository
	mailer     *notificationmocks.MockMailer
}

func newDealerService(ctrl *gomock.Controller) (Manager, *dealerMocks) {
	m := &dealerMocks{
		dealerRepo: mocks.NewMockDealerRepository(ctrl),
		userRepo:   mocks.NewMockUserRepository(ctrl),
		mailer:     notificationmocks.NewMockMailer(ctrl),
	}
	return NewService(m.dealerRepo, m.userRepo, m.mailer), m
}

func stringPtr(s string) *string {
	return &s
}

func validRegisterRequest() *domain.RegisterDealerRequest {
	return &domain.RegisterDealerRequest{
		Brand:         "ford",
		DealerCode:    "FRD-042",
		DealerName:    "Dealer Merkez",
		City:          "Istanbul",
		Email:         "merkez@example.com",
		ContactPerson: "Ayşe Yılmaz",
		Password:      "senha-bem-longa",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Senha curta é recusada sem tocar no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newDealerService(ctrl)

		req := validRegisterRequest()
		req.Password = "1234"

		dealer, err := service.Register(ctx, req)

		assert.Nil(t, dealer)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Código de dealer já cadastrado é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDealerService(ctrl)

		m.dealerRepo.EXPECT().GetByCode(ctx, "FRD-042").Return(&domain.Dealer{ID: "DLR001"}, nil)

		_, err := service.Register(ctx, validRegisterRequest())

		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Cadastro cria dealer inativo e usuário desativado vinculado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDealerService(ctrl)

		m.dealerRepo.EXPECT().GetByCode(ctx, "FRD-042").Return(nil, nil)
		m.dealerRepo.EXPECT().GetByEmail(ctx, "merkez@example.com").Return(nil, nil)
		m.userRepo.EXPECT().GetUserByEmail(ctx, "merkez@example.com").Return(nil, nil)

		m.dealerRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, dealer *domain.Dealer) error {
				assert.Equal(t, domain.DealerStatusInactive, dealer.Status)
				assert.Equal(t, domain.DealerTypeAuthorized, dealer.DealerType)
				dealer.ID = "DLR001"
				return nil
			})

		m.userRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.False(t, user.Active)
				assert.Equal(t, middleware.RoleDealer, user.RoleID)
				assert.Equal(t, "DLR001", *user.DealerID)
				// A senha nunca é persistida em claro.
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-bem-longa")))
				return user, nil
			})

		m.mailer.EXPECT().Send([]string{"merkez@example.com"}, gomock.Any(), gomock.Any())

		dealer, err := service.Register(ctx, validRegisterRequest())

		assert.NoError(t, err)
		assert.Equal(t, "DLR001", dealer.ID)
	})
}

func TestService_Get_Scoping(t *testing.T) {
	ctx := context.Background()

	t.Run("Usuário de dealer não enxerga outro cadastro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newDealerService(ctrl)

		actor := &domain.Claims{UserID: 9, UserDealerID: stringPtr("DLR002")}
		_, err := service.Get(ctx, "DLR001", actor)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Dealer inexistente retorna ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDealerService(ctrl)
		m.dealerRepo.EXPECT().GetByID(ctx, "DLR404").Return(nil, nil)

		_, err := service.Get(ctx, "DLR404", nil)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Update_Activation(t *testing.T) {
	ctx := context.Background()

	inactiveDealer := func() *domain.Dealer {
		return &domain.Dealer{
			ID:         "DLR001",
			DealerName: "Dealer Merkez",
			Email:      "merkez@example.com",
			Status:     domain.DealerStatusInactive,
		}
	}

	t.Run("Aprovar o dealer ativa o usuário vinculado e notifica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDealerService(ctrl)

		active := domain.DealerStatusActive
		req := &domain.UpdateDealerRequest{ID: "DLR001", Status: &active}

		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(inactiveDealer(), nil)
		m.dealerRepo.EXPECT().Update(ctx, req).Return(nil)

		m.userRepo.EXPECT().GetUserByEmail(ctx, "merkez@example.com").Return(&domain.User{
			ID:    42,
			Email: "merkez@example.com",
		}, nil)
		m.userRepo.EXPECT().
			UpdateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, update *domain.UpdateUserRequest) error {
				assert.Equal(t, 42, update.ID)
				assert.True(t, *update.Active)
				return nil
			})

		m.mailer.EXPECT().Send([]string{"merkez@example.com"}, gomock.Any(), gomock.Any())

		approved := inactiveDealer()
		approved.Status = domain.DealerStatusActive
		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(approved, nil)

		result, err := service.Update(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, domain.DealerStatusActive, result.Status)
	})

	t.Run("Atualização sem mudança de status não mexe no usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDealerService(ctrl)

		req := &domain.UpdateDealerRequest{ID: "DLR001", City: stringPtr("Ankara")}

		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(inactiveDealer(), nil)
		m.dealerRepo.EXPECT().Update(ctx, req).Return(nil)
		m.dealerRepo.EXPECT().GetByID(ctx, "DLR001").Return(inactiveDealer(), nil)

		_, err := service.Update(ctx, req)

		assert.NoError(t, err)
	})
}
