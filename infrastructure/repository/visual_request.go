package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/dealerhub/dealer-ops-api/infrastructure/database/postgres"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

const visualsTable = "visual_requests vr"

var visualColumns = []string{
	"vr.id", "vr.dealer_id", "d.dealer_name", "vr.work_request", "vr.quantity",
	"vr.work_details", "vr.intended_message", "vr.legal_text", "vr.deadline",
	"vr.creative_types", "vr.status", "vr.assigned_to", "vr.admin_note",
	"vr.created_at", "vr.updated_at",
}

type VisualRequestFilter struct {
	DealerID   string
	Status     domain.VisualRequestStatus
	AssignedTo domain.VisualAssignee
}

type VisualRequestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.VisualRequest, error)
	List(ctx context.Context, filter *VisualRequestFilter) ([]*domain.VisualRequest, error)
	Create(ctx context.Context, req *domain.VisualRequest) error
	// SetStatus grava a decisão e a nota; assignedTo só é alterado quando
	// informado.
	SetStatus(ctx context.Context, id string, status domain.VisualRequestStatus, adminNote string, assignedTo *domain.VisualAssignee) error
}

type visualRequestRepository struct {
	cluster *postgres.Cluster
}

func NewVisualRequestRepository(cluster *postgres.Cluster) VisualRequestRepository {
	return &visualRequestRepository{cluster: cluster}
}

func (r *visualRequestRepository) GetByID(ctx context.Context, id string) (*domain.VisualRequest, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(visualColumns...).
		From(visualsTable).
		Join("dealers d ON vr.dealer_id = d.id").
		Where(squirrel.Eq{"vr.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	req, err := deserializeVisualRequest(conn.QueryRowContext(ctx, querySQL, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return req, nil
}

func (r *visualRequestRepository) List(ctx context.Context, filter *VisualRequestFilter) ([]*domain.VisualRequest, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Select(visualColumns...).
		From(visualsTable).
		Join("dealers d ON vr.dealer_id = d.id").
		OrderBy("vr.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.DealerID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"vr.dealer_id": filter.DealerID})
		}
		if filter.Status != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"vr.status": filter.Status})
		}
		if filter.AssignedTo != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"vr.assigned_to": filter.AssignedTo})
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

	requests := make([]*domain.VisualRequest, 0)
	for rows.Next() {
		req, err := deserializeVisualRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *visualRequestRepository) Create(ctx context.Context, req *domain.VisualRequest) error {
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
		Insert("visual_requests").
		Columns("id", "dealer_id", "work_request", "quantity", "work_details",
			"intended_message", "legal_text", "deadline", "creative_types", "status").
		Values(req.ID, req.DealerID, req.WorkRequest, req.Quantity, req.WorkDetails,
			req.IntendedMessage, req.LegalText, req.Deadline,
			pq.Array(req.CreativeTypes), req.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = conn.ExecContext(ctx, querySQL, args...)
	return err
}

func (r *visualRequestRepository) SetStatus(ctx context.Context, id string, status domain.VisualRequestStatus, adminNote string, assignedTo *domain.VisualAssignee) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	queryBuilder := squirrel.
		Update("visual_requests").
		Set("status", status).
		Set("admin_note", adminNote).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if assignedTo != nil {
		queryBuilder = queryBuilder.Set("assigned_to", *assignedTo)
	}

	querySQL, args, err := queryBuilder.ToSql()
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
		return fmt.Errorf("visual request not found")
	}

	return nil
}

func deserializeVisualRequest(row rowScanner) (*domain.VisualRequest, error) {
	req := &domain.VisualRequest{}

	var assignedTo sql.NullString
	var adminNote sql.NullString

	if err := row.Scan(
		&req.ID,
		&req.DealerID,
		&req.DealerName,
		&req.WorkRequest,
		&req.Quantity,
		&req.WorkDetails,
		&req.IntendedMessage,
		&req.LegalText,
		&req.Deadline,
		pq.Array(&req.CreativeTypes),
		&req.Status,
		&assignedTo,
		&adminNote,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if assignedTo.Valid {
		assignee := domain.VisualAssignee(assignedTo.String)
		req.AssignedTo = &assignee
	}
	req.AdminNote = adminNote.String

	return req, nil
}
