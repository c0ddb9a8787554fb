package incentives

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/dealerhub/dealer-ops-api/infrastructure/notification"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

var (
	ErrNotFound  = errors.New("solicitação de incentivo não encontrada")
	ErrForbidden = errors.New("acesso negado a esta solicitação")
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type Manager interface {
	Create(ctx context.Context, req *domain.CreateIncentiveRequest, actor *domain.Claims) (*domain.IncentiveRequest, error)
	Get(ctx context.Context, id string, actor *domain.Claims) (*domain.IncentiveRequest, error)
	List(ctx context.Context, filter *repository.IncentiveFilter, actor *domain.Claims) ([]*domain.IncentiveRequest, error)
	Decide(ctx context.Context, id string, status domain.IncentiveStatus, note string) (*domain.IncentiveRequest, error)
}

type Service struct {
	incentiveRepo repository.IncentiveRepository
	dealerRepo    repository.DealerRepository
	mailer        notification.Mailer
}

func NewService(
	incentiveRepo repository.IncentiveRepository,
	dealerRepo repository.DealerRepository,
	mailer notification.Mailer,
) Manager {
	return &Service{
		incentiveRepo: incentiveRepo,
		dealerRepo:    dealerRepo,
		mailer:        mailer,
	}
}

func (s *Service) Create(ctx context.Context, req *domain.CreateIncentiveRequest, actor *domain.Claims) (*domain.IncentiveRequest, error) {
	if actor != nil && actor.UserDealerID != nil {
		req.DealerID = *actor.UserDealerID
	}

	if req.DealerID == "" {
		return nil, &ValidationError{Reason: "dealer_id é obrigatório"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Reason: "title é obrigatório"}
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Reason: "amount deve ser maior que zero"}
	}

	start, err := utils.ParseDate(req.PeriodStart)
	if err != nil || start.IsZero() {
		return nil, &ValidationError{Reason: "period_start inválido, use o formato YYYY-MM-DD"}
	}
	end, err := utils.ParseDate(req.PeriodEnd)
	if err != nil || end.IsZero() {
		return nil, &ValidationError{Reason: "period_end inválido, use o formato YYYY-MM-DD"}
	}
	if end.Before(*start) {
		return nil, &ValidationError{Reason: "period_end não pode ser anterior a period_start"}
	}

	dealer, err := s.dealerRepo.GetByID(ctx, req.DealerID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, &ValidationError{Reason: "dealer não encontrado"}
	}

	incentive := &domain.IncentiveRequest{
		DealerID:    req.DealerID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		PeriodStart: *start,
		PeriodEnd:   *end,
		Status:      domain.IncentiveStatusPending,
	}

	if err := s.incentiveRepo.Create(ctx, incentive); err != nil {
		return nil, err
	}

	incentive.DealerName = dealer.DealerName

	return incentive, nil
}

func (s *Service) Get(ctx context.Context, id string, actor *domain.Claims) (*domain.IncentiveRequest, error) {
	incentive, err := s.incentiveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if incentive == nil {
		return nil, ErrNotFound
	}
	if actor != nil && actor.UserDealerID != nil && incentive.DealerID != *actor.UserDealerID {
		return nil, ErrForbidden
	}
	return incentive, nil
}

func (s *Service) List(ctx context.Context, filter *repository.IncentiveFilter, actor *domain.Claims) ([]*domain.IncentiveRequest, error) {
	if filter == nil {
		filter = &repository.IncentiveFilter{}
	}
	// Usuário de dealer enxerga só as próprias solicitações.
	if actor != nil && actor.UserDealerID != nil {
		filter.DealerID = *actor.UserDealerID
	}
	return s.incentiveRepo.List(ctx, filter)
}

// Decide registra a decisão do administrador. Só solicitações pendentes podem
// ser aprovadas ou rejeitadas.
func (s *Service) Decide(ctx context.Context, id string, status domain.IncentiveStatus, note string) (*domain.IncentiveRequest, error) {
	if status != domain.IncentiveStatusApproved && status != domain.IncentiveStatusRejected {
		return nil, &ValidationError{Reason: fmt.Sprintf("status de decisão inválido: %s", status)}
	}

	incentive, err := s.incentiveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if incentive == nil {
		return nil, ErrNotFound
	}
	if incentive.Status != domain.IncentiveStatusPending {
		return nil, &ValidationError{Reason: fmt.Sprintf("solicitação já decidida (status atual: %s)", incentive.Status)}
	}

	if err := s.incentiveRepo.SetStatus(ctx, id, status, note); err != nil {
		return nil, err
	}

	if dealer, err := s.dealerRepo.GetByID(ctx, incentive.DealerID); err == nil && dealer != nil {
		s.mailer.Send(dealer.NotificationRecipients(),
			fmt.Sprintf("Incentivo %s: %s", incentive.Title, status),
			fmt.Sprintf("A solicitação de incentivo %q foi %s.", incentive.Title, status))
	}

	return s.incentiveRepo.GetByID(ctx, id)
}
