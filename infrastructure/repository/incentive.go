package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dealerhub/dealer-ops-api/infrastructure/database/postgres"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

const incentivesTable = "incentive_requests ir"

var incentiveColumns = []string{
	"ir.id", "ir.dealer_id", "d.dealer_name", "ir.title", "ir.description",
	"ir.amount", "ir.period_start", "ir.period_end", "ir.status",
	"ir.admin_note", "ir.created_at", "ir.updated_at",
}

type IncentiveFilter struct {
	DealerID string
	Status   domain.IncentiveStatus
}

type IncentiveRepository interface {
	GetByID(ctx context.Context, id string) (*domain.IncentiveRequest, error)
	List(ctx context.Context, filter *IncentiveFilter) ([]*domain.IncentiveRequest, error)
	Create(ctx context.Context, req *domain.IncentiveRequest) error
	SetStatus(ctx context.Context, id string, status domain.IncentiveStatus, adminNote string) error
}

type incentiveRepository struct {
	cluster *postgres.Cluster
}

func NewIncentiveRepository(cluster *postgres.Cluster) IncentiveRepository {
	return &incentiveRepository{cluster: cluster}
}

func (r *incentiveRepository) GetByID(ctx context.Context, id string) (*domain.IncentiveRequest, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(incentiveColumns...).
		From(incentivesTable).
		Join("dealers d ON ir.dealer_id = d.id").
		Where(squirrel.Eq{"ir.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	req, err := deserializeIncentive(conn.QueryRowContext(ctx, querySQL, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return req, nil
}

func (r *incentiveRepository) List(ctx context.Context, filter *IncentiveFilter) ([]*domain.IncentiveRequest, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Select(incentiveColumns...).
		From(incentivesTable).
		Join("dealers d ON ir.dealer_id = d.id").
		OrderBy("ir.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.DealerID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"ir.dealer_id": filter.DealerID})
		}
		if filter.Status != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"ir.status": filter.Status})
		}
	}

	querySQL, args, err := queryBuilder.ToSql()
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

	requests := make([]*domain.IncentiveRequest, 0)
	for rows.Next() {
		req, err := deserializeIncentive(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *incentiveRepository) Create(ctx context.Context, req *domain.IncentiveRequest) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	if req.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		req.ID = id
	}

	querySQL, args, err := squirrel.
		Insert("incentive_requests").
		Columns("id", "dealer_id", "title", "description", "amount",
			"period_start", "period_end", "status").
		Values(req.ID, req.DealerID, req.Title, req.Description, req.Amount,
			req.PeriodStart, req.PeriodEnd, req.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = conn.ExecContext(ctx, querySQL, args...)
	return err
}

func (r *incentiveRepository) SetStatus(ctx context.Context, id string, status domain.IncentiveStatus, adminNote string) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	querySQL, args, err := squirrel.
		Update("incentive_requests").
		Set("status", status).
		Set("admin_note", adminNote).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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
		return fmt.Errorf("incentive request not found")
	}

	return nil
}

func deserializeIncentive(row rowScanner) (*domain.IncentiveRequest, error) {
	req := &domain.IncentiveRequest{}

	var adminNote sql.NullString

	if err := row.Scan(
		&req.ID,
		&req.DealerID,
		&req.DealerName,
		&req.Title,
		&req.Description,
		&req.Amount,
		&req.PeriodStart,
		&req.PeriodEnd,
		&req.Status,
		&adminNote,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}

	req.AdminNote = adminNote.String

	return req, nil
}
