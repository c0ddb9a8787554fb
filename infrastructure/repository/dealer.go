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

const dealersTable = "dealers d"

var dealerColumns = []string{
	"d.id", "d.dealer_code", "d.dealer_name", "d.city", "d.district", "d.address",
	"d.phone", "d.email", "d.contact_person", "d.regional_manager", "d.region",
	"d.tax_number", "d.dealer_type", "d.status", "d.fb_page_id",
	"d.instagram_actor_id", "d.sales_url", "d.service_url", "d.additional_emails",
	"d.membership_date", "d.updated_at",
}

type DealerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Dealer, error)
	GetByCode(ctx context.Context, code string) (*domain.Dealer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Dealer, error)
	List(ctx context.Context) ([]*domain.Dealer, error)
	Create(ctx context.Context, dealer *domain.Dealer) error
	Update(ctx context.Context, req *domain.UpdateDealerRequest) error
}

type dealerRepository struct {
	cluster *postgres.Cluster
}

func NewDealerRepository(cluster *postgres.Cluster) DealerRepository {
	return &dealerRepository{cluster: cluster}
}

func (r *dealerRepository) GetByID(ctx context.Context, id string) (*domain.Dealer, error) {
	return r.getDealer(ctx, squirrel.Eq{"d.id": id})
}

func (r *dealerRepository) GetByCode(ctx context.Context, code string) (*domain.Dealer, error) {
	return r.getDealer(ctx, squirrel.Eq{"d.dealer_code": code})
}

func (r *dealerRepository) GetByEmail(ctx context.Context, email string) (*domain.Dealer, error) {
	return r.getDealer(ctx, squirrel.Eq{"d.email": email})
}

func (r *dealerRepository) getDealer(ctx context.Context, whereClause map[string]interface{}) (*domain.Dealer, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(dealerColumns...).
		From(dealersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := conn.QueryRowContext(ctx, querySQL, args...)

	dealer, err := deserializeDealer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return dealer, nil
}

func (r *dealerRepository) List(ctx context.Context) ([]*domain.Dealer, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(dealerColumns...).
		From(dealersTable).
		OrderBy("d.dealer_name ASC").
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

	dealers := make([]*domain.Dealer, 0)
	for rows.Next() {
		dealer, err := deserializeDealer(rows)
		if err != nil {
			return nil, err
		}
		dealers = append(dealers, dealer)
	}

	return dealers, rows.Err()
}

func (r *dealerRepository) Create(ctx context.Context, dealer *domain.Dealer) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	if dealer.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		dealer.ID = id
	}

	querySQL, args, err := squirrel.
		Insert("dealers").
		Columns(
			"id", "dealer_code", "dealer_name", "city", "district", "address",
			"phone", "email", "contact_person", "regional_manager", "region",
			"tax_number", "dealer_type", "status", "fb_page_id",
			"instagram_actor_id", "sales_url", "service_url", "additional_emails",
		).
		Values(
			dealer.ID, dealer.DealerCode, dealer.DealerName, dealer.City,
			dealer.District, dealer.Address, dealer.Phone, dealer.Email,
			dealer.ContactPerson, dealer.RegionalManager, dealer.Region,
			dealer.TaxNumber, dealer.DealerType, dealer.Status, dealer.FBPageID,
			dealer.InstagramActorID, dealer.SalesURL, dealer.ServiceURL,
			pq.Array(dealer.AdditionalEmails),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := conn.ExecContext(ctx, querySQL, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *dealerRepository) Update(ctx context.Context, req *domain.UpdateDealerRequest) error {
	if req.ID == "" {
		return fmt.Errorf("ID is required")
	}

	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	queryBuilder := squirrel.
		Update("dealers").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.DealerName != nil {
		queryBuilder = queryBuilder.Set("dealer_name", *req.DealerName)
	}
	if req.City != nil {
		queryBuilder = queryBuilder.Set("city", *req.City)
	}
	if req.District != nil {
		queryBuilder = queryBuilder.Set("district", *req.District)
	}
	if req.Address != nil {
		queryBuilder = queryBuilder.Set("address", *req.Address)
	}
	if req.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", *req.Phone)
	}
	if req.ContactPerson != nil {
		queryBuilder = queryBuilder.Set("contact_person", *req.ContactPerson)
	}
	if req.RegionalManager != nil {
		queryBuilder = queryBuilder.Set("regional_manager", *req.RegionalManager)
	}
	if req.Region != nil {
		queryBuilder = queryBuilder.Set("region", *req.Region)
	}
	if req.Status != nil {
		queryBuilder = queryBuilder.Set("status", *req.Status)
	}
	if req.FBPageID != nil {
		queryBuilder = queryBuilder.Set("fb_page_id", *req.FBPageID)
	}
	if req.InstagramActorID != nil {
		queryBuilder = queryBuilder.Set("instagram_actor_id", *req.InstagramActorID)
	}
	if req.SalesURL != nil {
		queryBuilder = queryBuilder.Set("sales_url", *req.SalesURL)
	}
	if req.ServiceURL != nil {
		queryBuilder = queryBuilder.Set("service_url", *req.ServiceURL)
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
		return fmt.Errorf("dealer not found")
	}

	return nil
}

func deserializeDealer(row rowScanner) (*domain.Dealer, error) {
	dealer := &domain.Dealer{}

	var additionalEmails pq.StringArray

	if err := row.Scan(
		&dealer.ID,
		&dealer.DealerCode,
		&dealer.DealerName,
		&dealer.City,
		&dealer.District,
		&dealer.Address,
		&dealer.Phone,
		&dealer.Email,
		&dealer.ContactPerson,
		&dealer.RegionalManager,
		&dealer.Region,
		&dealer.TaxNumber,
		&dealer.DealerType,
		&dealer.Status,
		&dealer.FBPageID,
		&dealer.InstagramActorID,
		&dealer.SalesURL,
		&dealer.ServiceURL,
		&additionalEmails,
		&dealer.MembershipDate,
		&dealer.UpdatedAt,
	); err != nil {
		return nil, err
	}

	dealer.AdditionalEmails = additionalEmails

	return dealer, nil
}
