package domain

import "time"

// ActivityKind é o enum fechado de ações registráveis na trilha de auditoria.
type ActivityKind string

const (
	ActivityCreated       ActivityKind = "created"
	ActivityUpdated       ActivityKind = "updated"
	ActivityStatusChanged ActivityKind = "status_changed"
	ActivityPushAttempted ActivityKind = "push_attempted"
	ActivityPushSucceeded ActivityKind = "push_succeeded"
	ActivityPushFailed    ActivityKind = "push_failed"
	ActivityStatusQueried ActivityKind = "status_queried"
	ActivityFileUploaded  ActivityKind = "file_uploaded"
	ActivityFileDeleted   ActivityKind = "file_deleted"
	ActivityNote          ActivityKind = "note"
)

// ActivityLogEntry é imutável depois de gravada: o contrato público não tem
// update nem delete. Entradas de sistema têm ActorID nulo.
type ActivityLogEntry struct {
	ID         string                 `json:"id"`
	CampaignID string                 `json:"campaign_id"`
	Kind       ActivityKind           `json:"kind"`
	Message    string                 `json:"message"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	ActorID    *int                   `json:"actor_id"`
	ActorName  string                 `json:"actor_name,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
