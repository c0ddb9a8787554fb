package budgeting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/infrastructure/repository"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
)

type Checker interface {
	Check(ctx context.Context, dealerID string, start, end time.Time, amount decimal.Decimal) (*domain.BudgetCheckResult, error)
	ListPlans(ctx context.Context, dealerID string) ([]*domain.BudgetPlan, error)
	CreatePlan(ctx context.Context, plan *domain.BudgetPlan) error
	ConsumeBudget(ctx context.Context, planID string, amount decimal.Decimal) error
}

type Service struct {
	planRepo repository.BudgetPlanRepository
}

func NewService(planRepo repository.BudgetPlanRepository) Checker {
	return &Service{planRepo: planRepo}
}

// Check valida a verba do dealer para o período pedido. O resultado tem três
// vias: plano que contém o período inteiro (válido ou não conforme a verba
// disponível), sobreposição apenas parcial (warning, nunca válido) e nenhum
// plano no período.
func (s *Service) Check(ctx context.Context, dealerID string, start, end time.Time, amount decimal.Decimal) (*domain.BudgetCheckResult, error) {
	plans, err := s.planRepo.ListOverlapping(ctx, dealerID, start, end)
	if err != nil {
		return nil, err
	}

	result := &domain.BudgetCheckResult{
		RequestedBudget: amount,
		AvailableBudget: decimal.Zero,
	}

	if len(plans) == 0 {
		result.WarningMessage = "Nenhum plano de verba cobre o período solicitado"
		return result, nil
	}

	result.HasPlan = true

	// Entre os planos que contêm o período inteiro, vence o mais estreito.
	var exact *domain.BudgetPlan
	for _, plan := range plans {
		if !plan.Contains(start, end) {
			continue
		}
		if exact == nil || plan.SpanDays() < exact.SpanDays() {
			exact = plan
		}
	}

	if exact == nil {
		// Só sobreposição parcial: o período pedido vaza para fora de todos
		// os planos. Nunca é válido, mas a UI mostra o plano de maior
		// interseção com o período pedido.
		closest := plans[0]
		best := overlapDays(closest, start, end)
		for _, plan := range plans[1:] {
			if days := overlapDays(plan, start, end); days > best {
				closest = plan
				best = days
			}
		}
		result.Warning = true
		result.AvailableBudget = closest.Remaining()
		result.PlanID = closest.ID
		result.PlanStartDate = closest.StartDate.Format(time.DateOnly)
		result.PlanEndDate = closest.EndDate.Format(time.DateOnly)
		result.WarningMessage = fmt.Sprintf(
			"O período solicitado cobre apenas parcialmente o plano de verba (%s a %s, disponível %s)",
			result.PlanStartDate, result.PlanEndDate, closest.Remaining().StringFixed(2),
		)
		return result, nil
	}

	remaining := exact.Remaining()
	result.AvailableBudget = remaining
	result.PlanID = exact.ID
	result.PlanStartDate = exact.StartDate.Format(time.DateOnly)
	result.PlanEndDate = exact.EndDate.Format(time.DateOnly)

	after := remaining.Sub(amount)
	result.RemainingAfter = &after

	if amount.GreaterThan(remaining) {
		result.WarningMessage = fmt.Sprintf(
			"Verba insuficiente: solicitado %s, disponível %s",
			amount.StringFixed(2), remaining.StringFixed(2),
		)
		return result, nil
	}

	result.Valid = true

	logrus.WithFields(logrus.Fields{
		"dealer_id": dealerID,
		"plan_id":   exact.ID,
		"requested": amount.String(),
		"remaining": after.String(),
	}).Debug("Verba validada para o período")

	return result, nil
}

// overlapDays mede a interseção entre o plano e o período pedido, em dias
// inclusivos. Zero quando não há interseção.
func overlapDays(plan *domain.BudgetPlan, start, end time.Time) int {
	from := plan.StartDate
	if start.After(from) {
		from = start
	}
	to := plan.EndDate
	if end.Before(to) {
		to = end
	}
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

func (s *Service) ListPlans(ctx context.Context, dealerID string) ([]*domain.BudgetPlan, error) {
	return s.planRepo.ListByDealer(ctx, dealerID)
}

func (s *Service) CreatePlan(ctx context.Context, plan *domain.BudgetPlan) error {
	if plan.EndDate.Before(plan.StartDate) {
		return fmt.Errorf("data final do plano não pode ser anterior à inicial")
	}
	if plan.TotalBudget.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("verba total do plano deve ser positiva")
	}
	return s.planRepo.Create(ctx, plan)
}

func (s *Service) ConsumeBudget(ctx context.Context, planID string, amount decimal.Decimal) error {
	return s.planRepo.AddUsage(ctx, planID, amount)
}
