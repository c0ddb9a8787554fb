package visuals

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/dealerhub/dealer-ops-api/infrastructure/notification"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

var (
	ErrNotFound  = errors.New("pedido de material não encontrado")
	ErrForbidden = errors.New("acesso negado a este pedido")
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type Manager interface {
	Create(ctx context.Context, req *domain.CreateVisualRequest, actor *domain.Claims) (*domain.VisualRequest, error)
	Get(ctx context.Context, id string, actor *domain.Claims) (*domain.VisualRequest, error)
	List(ctx context.Context, filter *repository.VisualRequestFilter, actor *domain.Claims) ([]*domain.VisualRequest, error)
	ChangeStatus(ctx context.Context, id string, status domain.VisualRequestStatus, note string, assignedTo *domain.VisualAssignee) (*domain.VisualRequest, error)
}

type Service struct {
	visualRepo repository.VisualRequestRepository
	dealerRepo repository.DealerRepository
	mailer     notification.Mailer
}

func NewService(
	visualRepo repository.VisualRequestRepository,
	dealerRepo repository.DealerRepository,
	mailer notification.Mailer,
) Manager {
	return &Service{
		visualRepo: visualRepo,
		dealerRepo: dealerRepo,
		mailer:     mailer,
	}
}

func (s *Service) Create(ctx context.Context, req *domain.CreateVisualRequest, actor *domain.Claims) (*domain.VisualRequest, error) {
	if actor != nil && actor.UserDealerID != nil {
		req.DealerID = *actor.UserDealerID
	}

	if req.DealerID == "" {
		return nil, &ValidationError{Reason: "dealer_id é obrigatório"}
	}
	if strings.TrimSpace(req.WorkRequest) == "" {
		return nil, &ValidationError{Reason: "work_request é obrigatório"}
	}
	if req.Quantity <= 0 {
		return nil, &ValidationError{Reason: "quantity deve ser maior que zero"}
	}

	deadline, err := utils.ParseDate(req.Deadline)
	if err != nil || deadline.IsZero() {
		return nil, &ValidationError{Reason: "deadline inválido, use o formato YYYY-MM-DD"}
	}

	for _, creativeType := range req.CreativeTypes {
		if _, ok := domain.ValidVisualCreativeTypes[creativeType]; !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("tipo de material inválido: %s", creativeType)}
		}
	}

	dealer, err := s.dealerRepo.GetByID(ctx, req.DealerID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, &ValidationError{Reason: "dealer não encontrado"}
	}

	visual := &domain.VisualRequest{
		DealerID:        req.DealerID,
		WorkRequest:     req.WorkRequest,
		Quantity:        req.Quantity,
		WorkDetails:     req.WorkDetails,
		IntendedMessage: req.IntendedMessage,
		LegalText:       req.LegalText,
		Deadline:        *deadline,
		CreativeTypes:   req.CreativeTypes,
		Status:          domain.VisualStatusPending,
	}

	if err := s.visualRepo.Create(ctx, visual); err != nil {
		return nil, err
	}

	visual.DealerName = dealer.DealerName

	return visual, nil
}

func (s *Service) Get(ctx context.Context, id string, actor *domain.Claims) (*domain.VisualRequest, error) {
	visual, err := s.visualRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visual == nil {
		return nil, ErrNotFound
	}
	if actor != nil && actor.UserDealerID != nil && visual.DealerID != *actor.UserDealerID {
		return nil, ErrForbidden
	}
	return visual, nil
}

func (s *Service) List(ctx context.Context, filter *repository.VisualRequestFilter, actor *domain.Claims) ([]*domain.VisualRequest, error) {
	if filter == nil {
		filter = &repository.VisualRequestFilter{}
	}
	// Usuário de dealer enxerga só os próprios pedidos.
	if actor != nil && actor.UserDealerID != nil {
		filter.DealerID = *actor.UserDealerID
	}
	return s.visualRepo.List(ctx, filter)
}

// ChangeStatus move o pedido pelo fluxo de produção. Encaminhar para a
// agência normalmente acompanha assignedTo=creative_agency; devolver o
// material pronto para o dealer, assignedTo=dealer.
func (s *Service) ChangeStatus(ctx context.Context, id string, status domain.VisualRequestStatus, note string, assignedTo *domain.VisualAssignee) (*domain.VisualRequest, error) {
	if !domain.ValidVisualStatus(status) {
		return nil, &ValidationError{Reason: fmt.Sprintf("status inválido: %s", status)}
	}
	if assignedTo != nil && !domain.ValidVisualAssignee(*assignedTo) {
		return nil, &ValidationError{Reason: fmt.Sprintf("unidade atribuída inválida: %s", *assignedTo)}
	}

	visual, err := s.visualRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visual == nil {
		return nil, ErrNotFound
	}
	if visual.Status == domain.VisualStatusCompleted {
		return nil, &ValidationError{Reason: "pedido já concluído não pode mudar de status"}
	}

	if err := s.visualRepo.SetStatus(ctx, id, status, note, assignedTo); err != nil {
		return nil, err
	}

	// O dealer só é notificado quando a bola volta para o lado dele.
	switch status {
	case domain.VisualStatusApproved, domain.VisualStatusRejected, domain.VisualStatusAwaitingDealer:
		if dealer, err := s.dealerRepo.GetByID(ctx, visual.DealerID); err == nil && dealer != nil {
			s.mailer.Send(dealer.NotificationRecipients(),
				fmt.Sprintf("Pedido de material %s: %s", visual.ID, status),
				fmt.Sprintf("O pedido de material %q mudou para %s.", visual.WorkRequest, status))
		}
	}

	return s.visualRepo.GetByID(ctx, id)
}
