package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/dealerhub/dealer-ops-api/infrastructure/database/postgres"
	"github.com/dealerhub/dealer-ops-api/internal/domain"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

const campaignRequestsTable = "campaign_requests cr"

var campaignRequestColumns = []string{
	"cr.id", "cr.dealer_id", "d.dealer_name", "cr.campaign_name", "cr.budget",
	"cr.start_date", "cr.end_date", "cr.platforms", "cr.ad_message", "cr.cta_type",
	"cr.website_url", "cr.redirect_type", "cr.notes", "cr.status",
	"cr.fb_push_status", "cr.fb_push_error", "cr.fb_campaign_id", "cr.fb_adset_id",
	"cr.fb_creative_id", "cr.fb_ad_id", "cr.fb_pushed_at",
	"cr.deleted", "cr.created_at", "cr.updated_at",
}

type CampaignFilter struct {
	DealerID string
	Status   domain.CampaignStatus
}

// PushResult agrupa os quatro IDs externos gravados quando o push tem
// sucesso. Sobrescrevem os de tentativas anteriores; o histórico fica na
// trilha de auditoria.
type PushResult struct {
	CampaignID string
	AdSetID    string
	CreativeID string
	AdID       string
}

type CampaignRequestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.CampaignRequest, error)
	List(ctx context.Context, filter CampaignFilter) ([]*domain.CampaignRequest, error)
	Create(ctx context.Context, c *domain.CampaignRequest) error
	Update(ctx context.Context, c *domain.CampaignRequest) error
	SetStatus(ctx context.Context, id string, status domain.CampaignStatus, entry *domain.ActivityLogEntry) error
	BeginPush(ctx context.Context, id string) (bool, error)
	SavePushSuccess(ctx context.Context, id string, result PushResult, entry *domain.ActivityLogEntry) error
	SavePushFailure(ctx context.Context, id string, pushErr string, entry *domain.ActivityLogEntry) error
	CompleteExpired(ctx context.Context, reference time.Time) ([]string, error)
}

type campaignRequestRepository struct {
	cluster *postgres.Cluster
}

func NewCampaignRequestRepository(cluster *postgres.Cluster) CampaignRequestRepository {
	return &campaignRequestRepository{cluster: cluster}
}

func (r *campaignRequestRepository) GetByID(ctx context.Context, id string) (*domain.CampaignRequest, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Select(campaignRequestColumns...).
		From(campaignRequestsTable).
		Join("dealers d ON cr.dealer_id = d.id").
		Where(squirrel.Eq{"cr.id": id, "cr.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := conn.QueryRowContext(ctx, querySQL, args...)

	c, err := deserializeCampaignRequest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return c, nil
}

func (r *campaignRequestRepository) List(ctx context.Context, filter CampaignFilter) ([]*domain.CampaignRequest, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Select(campaignRequestColumns...).
		From(campaignRequestsTable).
		Join("dealers d ON cr.dealer_id = d.id").
		Where(squirrel.Eq{"cr.deleted": false}).
		OrderBy("cr.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.DealerID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cr.dealer_id": filter.DealerID})
	}

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cr.status": filter.Status})
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

	requests := make([]*domain.CampaignRequest, 0)
	for rows.Next() {
		c, err := deserializeCampaignRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *campaignRequestRepository) Create(ctx context.Context, c *domain.CampaignRequest) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	if c.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		c.ID = id
	}

	platforms := make([]string, 0, len(c.Platforms))
	for _, p := range c.Platforms {
		platforms = append(platforms, string(p))
	}

	querySQL, args, err := squirrel.
		Insert("campaign_requests").
		Columns(
			"id", "dealer_id", "campaign_name", "budget", "start_date", "end_date",
			"platforms", "ad_message", "cta_type", "website_url", "redirect_type",
			"notes", "status", "fb_push_status",
		).
		Values(
			c.ID, c.DealerID, c.CampaignName, c.Budget, c.StartDate, c.EndDate,
			pq.Array(platforms), c.AdMessage, c.CTAType, c.WebsiteURL, c.RedirectType,
			c.Notes, c.Status, c.FBPushStatus,
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

func (r *campaignRequestRepository) Update(ctx context.Context, c *domain.CampaignRequest) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	platforms := make([]string, 0, len(c.Platforms))
	for _, p := range c.Platforms {
		platforms = append(platforms, string(p))
	}

	querySQL, args, err := squirrel.
		Update("campaign_requests").
		Set("campaign_name", c.CampaignName).
		Set("budget", c.Budget).
		Set("start_date", c.StartDate).
		Set("end_date", c.EndDate).
		Set("platforms", pq.Array(platforms)).
		Set("ad_message", c.AdMessage).
		Set("cta_type", c.CTAType).
		Set("website_url", c.WebsiteURL).
		Set("redirect_type", c.RedirectType).
		Set("notes", c.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
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
		return sql.ErrNoRows
	}

	return nil
}

// SetStatus grava o novo status e a entrada de auditoria na mesma transação,
// para que a trilha nunca divirja da linha após uma falha no meio do passo.
func (r *campaignRequestRepository) SetStatus(ctx context.Context, id string, status domain.CampaignStatus, entry *domain.ActivityLogEntry) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		querySQL, args, err := squirrel.
			Update("campaign_requests").
			Set("status", status).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, querySQL, args...); err != nil {
			return err
		}

		return insertActivityTx(ctx, tx, entry)
	})
}

// pushReclaimInterval é o tempo após o qual um push preso em 'pushing' é
// tratado como abandonado (processo morto no meio da cadeia, ou falha ao
// gravar o resultado) e volta a ser elegível para uma nova tentativa.
const pushReclaimInterval = "15 minutes"

func buildBeginPushQuery(id string) (string, []interface{}, error) {
	return squirrel.
		Update("campaign_requests").
		Set("fb_push_status", domain.PushStatusPushing).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.CampaignStatusApproved}).
		Where(squirrel.Or{
			squirrel.NotEq{"fb_push_status": []domain.PushStatus{
				domain.PushStatusPushing,
				domain.PushStatusSucceeded,
			}},
			squirrel.And{
				squirrel.Eq{"fb_push_status": domain.PushStatusPushing},
				squirrel.Expr("updated_at < NOW() - INTERVAL '" + pushReclaimInterval + "'"),
			},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// BeginPush é o guard de idempotência contra pushes concorrentes: um
// compare-and-swap que só move fb_push_status para 'pushing' quando a
// campanha está aprovada e não há push em andamento nem concluído. Um push
// 'pushing' parado há mais de pushReclaimInterval é retomado em vez de
// rejeitado, para a linha não ficar travada para sempre. Retorna false quando
// outro push venceu a corrida.
func (r *campaignRequestRepository) BeginPush(ctx context.Context, id string) (bool, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return false, err
	}

	querySQL, args, err := buildBeginPushQuery(id)
	if err != nil {
		return false, err
	}

	result, err := conn.ExecContext(ctx, querySQL, args...)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

func (r *campaignRequestRepository) SavePushSuccess(ctx context.Context, id string, pushResult PushResult, entry *domain.ActivityLogEntry) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		querySQL, args, err := squirrel.
			Update("campaign_requests").
			Set("fb_push_status", domain.PushStatusSucceeded).
			Set("fb_push_error", "").
			Set("fb_campaign_id", pushResult.CampaignID).
			Set("fb_adset_id", pushResult.AdSetID).
			Set("fb_creative_id", pushResult.CreativeID).
			Set("fb_ad_id", pushResult.AdID).
			Set("fb_pushed_at", squirrel.Expr("NOW()")).
			Set("status", domain.CampaignStatusLive).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, querySQL, args...); err != nil {
			return err
		}

		return insertActivityTx(ctx, tx, entry)
	})
}

func (r *campaignRequestRepository) SavePushFailure(ctx context.Context, id string, pushErr string, entry *domain.ActivityLogEntry) error {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return err
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		querySQL, args, err := squirrel.
			Update("campaign_requests").
			Set("fb_push_status", domain.PushStatusFailed).
			Set("fb_push_error", pushErr).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, querySQL, args...); err != nil {
			return err
		}

		return insertActivityTx(ctx, tx, entry)
	})
}

// CompleteExpired move campanhas no ar com data final vencida para
// 'completed' e retorna os IDs afetados. Usada pelo scheduler.
func (r *campaignRequestRepository) CompleteExpired(ctx context.Context, reference time.Time) ([]string, error) {
	conn, err := r.cluster.Conn(ctx)
	if err != nil {
		return nil, err
	}

	querySQL, args, err := squirrel.
		Update("campaign_requests").
		Set("status", domain.CampaignStatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.CampaignStatusLive}).
		Where(squirrel.Lt{"end_date": reference}).
		Suffix("RETURNING id").
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func deserializeCampaignRequest(row rowScanner) (*domain.CampaignRequest, error) {
	c := &domain.CampaignRequest{}

	var platforms pq.StringArray
	var pushedAt sql.NullTime

	if err := row.Scan(
		&c.ID,
		&c.DealerID,
		&c.DealerName,
		&c.CampaignName,
		&c.Budget,
		&c.StartDate,
		&c.EndDate,
		&platforms,
		&c.AdMessage,
		&c.CTAType,
		&c.WebsiteURL,
		&c.RedirectType,
		&c.Notes,
		&c.Status,
		&c.FBPushStatus,
		&c.FBPushError,
		&c.FBCampaignID,
		&c.FBAdSetID,
		&c.FBCreativeID,
		&c.FBAdID,
		&pushedAt,
		&c.Deleted,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Platforms = make([]domain.Platform, 0, len(platforms))
	for _, p := range platforms {
		c.Platforms = append(c.Platforms, domain.Platform(p))
	}

	if pushedAt.Valid {
		c.FBPushedAt = &pushedAt.Time
	}

	return c, nil
}

// insertActivityTx grava uma entrada de auditoria dentro da transação do
// chamador. Compartilhada por todas as escritas que precisam de atomicidade
// entre a linha da campanha e a trilha.
func insertActivityTx(ctx context.Context, tx *sql.Tx, entry *domain.ActivityLogEntry) error {
	if entry == nil {
		return nil
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

	_, err = tx.ExecContext(ctx, querySQL, args...)
	return err
}
