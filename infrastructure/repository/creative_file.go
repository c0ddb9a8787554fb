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

const creativeFilesTable = "creative_files cf"

var creativeFileColumns = []string{
	"cf.id", "cf.campaign_id", "cf.file_name", "cf.file_type", "cf.content_type",
	"cf.size_bytes", "cf.storage_key", "cf.url", "cf.uploaded_at",
}

type CreativeFileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.CreativeFile, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*domain.CreativeFile, error)
	// GetLatestByCampaign retorna o arquivo mais recente do tipo post/story,
	// usado na resolução do criativo durante o push. Nil quando não há nenhum.
	GetLatestByCampaign(ctx context.Context, campaignID string) (*domain.CreativeFile, error)
	Create(ctx context.Context, file *domain.CreativeFile) error
	Delete(ctx context.Context, id string) error
}

type creativeFileRepository struct {
	cluster *postgres.Cluster
}

func NewCreativeFileRepository(cluster *postgres.Cluster) CreativeFileRepository {
	return &creativeFileRepository{cluster: cluster}
}

func (r *creativeFileRepository) GetByID(ctx context.Context, id string) (*domain.CreativeFile, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(creativeFileColumns...).
		From(creativeFilesTable).
		Where(squirrel.Eq{"cf.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	file, err := deserializeCreativeFile(conn.QueryRowContext(ctx, querySQL, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return file, nil
}

func (r *creativeFileRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*domain.CreativeFile, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(creativeFileColumns...).
		From(creativeFilesTable).
		Where(squirrel.Eq{"cf.campaign_id": campaignID}).
		OrderBy("cf.uploaded_at DESC").
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

	files := make([]*domain.CreativeFile, 0)
	for rows.Next() {
		file, err := deserializeCreativeFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}

func (r *creativeFileRepository) GetLatestByCampaign(ctx context.Context, campaignID string) (*domain.CreativeFile, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(creativeFileColumns...).
		From(creativeFilesTable).
		Where(squirrel.Eq{
			"cf.campaign_id": campaignID,
			"cf.file_type":   []domain.CreativeFileType{domain.CreativeFilePost, domain.CreativeFileStory},
		}).
		OrderBy("cf.uploaded_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	file, err := deserializeCreativeFile(conn.QueryRowContext(ctx, querySQL, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return file, nil
}

func (r *creativeFileRepository) Create(ctx context.Context, file *domain.CreativeFile) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	if file.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		file.ID = id
	}

	querySQL, args, err := squirrel.
		Insert("creative_files").
		Columns("id", "campaign_id", "file_name", "file_type", "content_type",
			"size_bytes", "storage_key", "url").
		Values(file.ID, file.CampaignID, file.FileName, file.FileType,
			file.ContentType, file.SizeBytes, file.StorageKey, file.URL).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = conn.ExecContext(ctx, querySQL, args...)
	return err
}

func (r *creativeFileRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	querySQL, args, err := squirrel.
		Delete("creative_files").
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
		return fmt.Errorf("creative file not found")
	}

	return nil
}

func deserializeCreativeFile(row rowScanner) (*domain.CreativeFile, error) {
	file := &domain.CreativeFile{}

	if err := row.Scan(
		&file.ID,
		&file.CampaignID,
		&file.FileName,
		&file.FileType,
		&file.ContentType,
		&file.SizeBytes,
		&file.StorageKey,
		&file.URL,
		&file.UploadedAt,
	); err != nil {
		return nil, err
	}

	return file, nil
}
