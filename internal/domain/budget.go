package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPlan é um envelope de verba por dealer dentro de um intervalo de
// datas. Um dealer pode ter vários planos; a admissão de uma campanha procura
// um plano que contenha integralmente o período solicitado.
type BudgetPlan struct {
	ID          string          `json:"id"`
	DealerID    string          `json:"dealer_id"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	UsedBudget  decimal.Decimal `json:"used_budget"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Remaining retorna a verba disponível do plano. Pode ser negativa quando o
// consumo ultrapassou o total; cabe ao chamador sinalizar isso como aviso.
func (p *BudgetPlan) Remaining() decimal.Decimal {
	return p.TotalBudget.Sub(p.UsedBudget)
}

// Contains informa se o plano cobre integralmente o período solicitado.
func (p *BudgetPlan) Contains(start, end time.Time) bool {
	return !start.Before(p.StartDate) && !end.After(p.EndDate)
}

// Overlaps informa se o plano tem qualquer interseção com o período.
func (p *BudgetPlan) Overlaps(start, end time.Time) bool {
	return !start.After(p.EndDate) && !end.Before(p.StartDate)
}

// SpanDays é a duração do plano em dias, usada no desempate por ajuste mais
// estreito.
func (p *BudgetPlan) SpanDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}

type BudgetCheckRequest struct {
	DealerID     string          `json:"dealer_id"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
}

// BudgetCheckResult preserva o resultado de três vias da validação de verba:
// plano exato (válido ou não), sobreposição parcial (warning) e nenhum plano.
// A UI depende dessa distinção; não colapsar em booleano.
type BudgetCheckResult struct {
	Valid           bool             `json:"valid"`
	HasPlan         bool             `json:"has_plan"`
	Warning         bool             `json:"warning"`
	WarningMessage  string           `json:"warning_message,omitempty"`
	AvailableBudget decimal.Decimal  `json:"available_budget"`
	RequestedBudget decimal.Decimal  `json:"requested_budget"`
	RemainingAfter  *decimal.Decimal `json:"remaining_after,omitempty"`
	PlanID          string           `json:"plan_id,omitempty"`
	PlanStartDate   string           `json:"plan_start_date,omitempty"`
	PlanEndDate     string           `json:"plan_end_date,omitempty"`
}
