package dealering

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"github.com/dealerhub/dealer-ops-api/infrastructure/notification"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/middleware"
)

var (
	ErrNotFound     = errors.New("dealer não encontrado")
	ErrDuplicate    = errors.New("dealer já cadastrado com este código ou e-mail")
	ErrForbidden    = errors.New("acesso negado a este dealer")
	ErrInvalidInput = errors.New("dados de cadastro inválidos")
)

type Manager interface {
	Register(ctx context.Context, req *domain.RegisterDealerRequest) (*domain.Dealer, error)
	Get(ctx context.Context, id string, actor *domain.Claims) (*domain.Dealer, error)
	List(ctx context.Context) ([]*domain.Dealer, error)
	Update(ctx context.Context, req *domain.UpdateDealerRequest) (*domain.Dealer, error)
}

type Service struct {
	dealerRepo repository.DealerRepository
	userRepo   repository.UserRepository
	mailer     notification.Mailer
}

func NewService(
	dealerRepo repository.DealerRepository,
	userRepo repository.UserRepository,
	mailer notification.Mailer,
) Manager {
	return &Service{
		dealerRepo: dealerRepo,
		userRepo:   userRepo,
		mailer:     mailer,
	}
}

// Register faz o cadastro público de um dealer: cria o dealer inativo e um
// usuário desativado vinculado a ele. A ativação dos dois acontece junto, na
// aprovação do administrador.
func (s *Service) Register(ctx context.Context, req *domain.RegisterDealerRequest) (*domain.Dealer, error) {
	if strings.TrimSpace(req.DealerCode) == "" || strings.TrimSpace(req.DealerName) == "" ||
		strings.TrimSpace(req.Email) == "" || len(req.Password) < 8 {
		return nil, ErrInvalidInput
	}

	if existing, err := s.dealerRepo.GetByCode(ctx, req.DealerCode); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicate
	}

	if existing, err := s.dealerRepo.GetByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicate
	}

	if existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existingUser != nil {
		return nil, ErrDuplicate
	}

	dealer := &domain.Dealer{
		DealerCode:    req.DealerCode,
		DealerName:    req.DealerName,
		City:          req.City,
		District:      req.District,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
		DealerType:    domain.DealerTypeAuthorized,
		Status:        domain.DealerStatusInactive,
	}

	if err := s.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o hash da senha")
	}

	user := &domain.User{
		Name:         req.ContactPerson,
		Lastname:     "",
		Email:        req.Email,
		PasswordHash: string(hash),
		Active:       false,
		RoleID:       middleware.RoleDealer,
		DealerID:     &dealer.ID,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dealer_id":   dealer.ID,
		"dealer_code": dealer.DealerCode,
	}).Info("Dealer registrado, aguardando aprovação")

	s.mailer.Send([]string{dealer.Email},
		"Cadastro recebido",
		fmt.Sprintf("Olá %s, recebemos o cadastro do dealer %s. O acesso será liberado após a aprovação.", req.ContactPerson, dealer.DealerName))

	return dealer, nil
}

func (s *Service) Get(ctx context.Context, id string, actor *domain.Claims) (*domain.Dealer, error) {
	// Usuário de dealer só enxerga o próprio cadastro.
	if actor != nil && actor.UserDealerID != nil && *actor.UserDealerID != id {
		return nil, ErrForbidden
	}

	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, ErrNotFound
	}
	return dealer, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Dealer, error) {
	return s.dealerRepo.List(ctx)
}

// Update aplica alterações parciais. Ativar um dealer inativo também ativa o
// usuário vinculado a ele.
func (s *Service) Update(ctx context.Context, req *domain.UpdateDealerRequest) (*domain.Dealer, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, ErrNotFound
	}

	activating := req.Status != nil && *req.Status == domain.DealerStatusActive && !dealer.IsActive()

	if err := s.dealerRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if activating {
		if err := s.activateDealerUser(ctx, dealer); err != nil {
			logrus.WithError(err).WithField("dealer_id", dealer.ID).Error("Erro ao ativar o usuário do dealer")
		}

		s.mailer.Send(dealer.NotificationRecipients(),
			"Cadastro aprovado",
			fmt.Sprintf("O dealer %s foi aprovado. O acesso ao painel está liberado.", dealer.DealerName))
	}

	return s.dealerRepo.GetByID(ctx, req.ID)
}

func (s *Service) activateDealerUser(ctx context.Context, dealer *domain.Dealer) error {
	user, err := s.userRepo.GetUserByEmail(ctx, dealer.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("usuário do dealer %s não encontrado", dealer.ID)
	}

	active := true
	return s.userRepo.UpdateUser(ctx, &domain.UpdateUserRequest{
		ID:     user.ID,
		Active: &active,
	})
}
