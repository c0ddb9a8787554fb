package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/dealerhub/dealer-ops-api/infrastructure/database/postgres"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

const activityLogTable = "activity_log al"

// ActivityLogRepository é append-only por contrato: não existe update nem
// delete. A leitura devolve as entradas em ordem de criação.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *domain.ActivityLogEntry) error
	ListByCampaign(ctx context.Context, campaignID string) ([]*domain.ActivityLogEntry, error)
}

type activityLogRepository struct {
	cluster *postgres.Cluster
}

func NewActivityLogRepository(cluster *postgres.Cluster) ActivityLogRepository {
	return &activityLogRepository{cluster: cluster}
}

func (r *activityLogRepository) Append(ctx context.Context, entry *domain.ActivityLogEntry) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		entry.ID = id
	}

	detail, err := json.Marshal(entry.Detail)
	if err != nil {
		return err
	}

	querySQL, args, err := squirrel.
		Insert("activity_log").
		Columns("id", "campaign_id", "kind", "message", "detail", "actor_id").
		Values(entry.ID, entry.CampaignID, entry.Kind, entry.Message, detail, entry.ActorID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, querySQL, args...)
	return err
}

func (r *activityLogRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*domain.ActivityLogEntry, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select("al.id", "al.campaign_id", "al.kind", "al.message", "al.detail",
			"al.actor_id", "COALESCE(u.name || ' ' || u.lastname, '')", "al.created_at").
		From(activityLogTable).
		LeftJoin("users u ON al.actor_id = u.id").
		Where(squirrel.Eq{"al.campaign_id": campaignID}).
		OrderBy("al.created_at ASC", "al.id ASC").
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

	entries := make([]*domain.ActivityLogEntry, 0)
	for rows.Next() {
		entry := &domain.ActivityLogEntry{}

		var detail []byte
		var actorID sql.NullInt64

		if err := rows.Scan(
			&entry.ID,
			&entry.CampaignID,
			&entry.Kind,
			&entry.Message,
			&detail,
			&actorID,
			&entry.ActorName,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &entry.Detail); err != nil {
				return nil, err
			}
		}

		if actorID.Valid {
			id := int(actorID.Int64)
			entry.ActorID = &id
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
