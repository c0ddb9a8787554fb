package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/dealerhub/dealer-ops-api/infrastructure/database/postgres"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

const budgetPlansTable = "budget_plans bp"

var budgetPlanColumns = []string{
	"bp.id", "bp.dealer_id", "bp.start_date", "bp.end_date",
	"bp.total_budget", "bp.used_budget", "bp.created_at", "bp.updated_at",
}

type BudgetPlanRepository interface {
	ListByDealer(ctx context.Context, dealerID string) ([]*domain.BudgetPlan, error)
	ListOverlapping(ctx context.Context, dealerID string, start, end time.Time) ([]*domain.BudgetPlan, error)
	Create(ctx context.Context, plan *domain.BudgetPlan) error
	AddUsage(ctx context.Context, planID string, amount decimal.Decimal) error
}

type budgetPlanRepository struct {
	cluster *postgres.Cluster
}

func NewBudgetPlanRepository(cluster *postgres.Cluster) BudgetPlanRepository {
	return &budgetPlanRepository{cluster: cluster}
}

func (r *budgetPlanRepository) ListByDealer(ctx context.Context, dealerID string) ([]*domain.BudgetPlan, error) {
	return r.listPlans(ctx, squirrel.Eq{"bp.dealer_id": dealerID})
}

// ListOverlapping retorna os planos do dealer com qualquer interseção com o
// período pedido. A classificação exato/parcial fica no usecase de budget.
func (r *budgetPlanRepository) ListOverlapping(ctx context.Context, dealerID string, start, end time.Time) ([]*domain.BudgetPlan, error) {
	return r.listPlans(ctx, squirrel.And{
		squirrel.Eq{"bp.dealer_id": dealerID},
		squirrel.LtOrEq{"bp.start_date": end},
		squirrel.GtOrEq{"bp.end_date": start},
	})
}

func (r *budgetPlanRepository) listPlans(ctx context.Context, whereClause squirrel.Sqlizer) ([]*domain.BudgetPlan, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(budgetPlanColumns...).
		From(budgetPlansTable).
		Where(whereClause).
		OrderBy("bp.start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, querySQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	plans := make([]*domain.BudgetPlan, 0)
	for rows.Next() {
		plan := &domain.BudgetPlan{}
		if err := rows.Scan(
			&plan.ID,
			&plan.DealerID,
			&plan.StartDate,
			&plan.EndDate,
			&plan.TotalBudget,
			&plan.UsedBudget,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

func (r *budgetPlanRepository) Create(ctx context.Context, plan *domain.BudgetPlan) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	if plan.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		plan.ID = id
	}

	querySQL, args, err := squirrel.
		Insert("budget_plans").
		Columns("id", "dealer_id", "start_date", "end_date", "total_budget", "used_budget").
		Values(plan.ID, plan.DealerID, plan.StartDate, plan.EndDate, plan.TotalBudget, plan.UsedBudget).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = conn.ExecContext(ctx, querySQL, args...)
	return err
}

func (r *budgetPlanRepository) AddUsage(ctx context.Context, planID string, amount decimal.Decimal) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	querySQL, args, err := squirrel.
		Update("budget_plans").
		Set("used_budget", squirrel.Expr("used_budget + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": planID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := conn.ExecContext(ctx, querySQL, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("budget plan not found")
	}

	return nil
}
