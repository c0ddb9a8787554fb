package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/dealerhub/dealer-ops-api/infrastructure/database/postgres"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) error
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	ListUser(ctx context.Context) ([]*domain.User, error)
}

type userRepository struct {
	cluster *postgres.Cluster
}

func NewUserRepository(cluster *postgres.Cluster) UserRepository {
	return &userRepository{cluster: cluster}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	usersSQL, usersArgs, err := squirrel.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "role_id", "dealer_id").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID, user.DealerID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(&user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) error {
	if req.ID == 0 {
		return fmt.Errorf("ID is required")
	}

	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	queryBuilder := squirrel.
		Update(usersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID})

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}
	if req.Lastname != nil {
		queryBuilder = queryBuilder.Set("lastname", *req.Lastname)
	}
	if req.Email != nil {
		queryBuilder = queryBuilder.Set("email", *req.Email)
	}
	if req.Active != nil {
		queryBuilder = queryBuilder.Set("active", *req.Active)
	}
	if req.RoleID != nil {
		queryBuilder = queryBuilder.Set("role_id", *req.RoleID)
	}
	if req.Deleted != nil && *req.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", squirrel.Expr("NOW()"))
	}

	usersSQL, usersArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	result, err := conn.ExecContext(ctx, usersSQL, usersArgs...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	querySQL, args, err := squirrel.
		Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := conn.ExecContext(ctx, querySQL, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, whereClause map[string]interface{}) (*domain.User, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select("id", "name", "lastname", "email", "password_hash", "active",
			"role_id", "dealer_id", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = conn.QueryRowContext(ctx, querySQL, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.DealerID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ListUser(ctx context.Context) ([]*domain.User, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select("id", "name", "lastname", "email", "active", "role_id",
			"dealer_id", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, querySQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Lastname,
			&user.Email,
			&user.Active,
			&user.RoleID,
			&user.DealerID,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
