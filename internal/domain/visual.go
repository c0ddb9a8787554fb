package domain

import "time"

// Status do pedido de material de marketing. Diferente das campanhas, o fluxo
// passa pela agência de criação e pela aprovação do próprio dealer antes de
// fechar.
type VisualRequestStatus string

const (
	VisualStatusDraft           VisualRequestStatus = "draft"
	VisualStatusAwaitingArtwork VisualRequestStatus = "awaiting_artwork"
	VisualStatusAwaitingDealer  VisualRequestStatus = "awaiting_dealer_approval"
	VisualStatusPending         VisualRequestStatus = "pending_approval"
	VisualStatusApproved        VisualRequestStatus = "approved"
	VisualStatusRejected        VisualRequestStatus = "rejected"
	VisualStatusCompleted       VisualRequestStatus = "completed"
)

func ValidVisualStatus(s VisualRequestStatus) bool {
	switch s {
	case VisualStatusDraft, VisualStatusAwaitingArtwork, VisualStatusAwaitingDealer,
		VisualStatusPending, VisualStatusApproved, VisualStatusRejected,
		VisualStatusCompleted:
		return true
	}
	return false
}

// VisualAssignee indica qual unidade está com a bola: a agência produzindo o
// material, o dealer aprovando, ou a marca decidindo.
type VisualAssignee string

const (
	AssigneeCreativeAgency VisualAssignee = "creative_agency"
	AssigneeDealer         VisualAssignee = "dealer"
	AssigneeBrand          VisualAssignee = "brand"
)

func ValidVisualAssignee(a VisualAssignee) bool {
	switch a {
	case AssigneeCreativeAgency, AssigneeDealer, AssigneeBrand:
		return true
	}
	return false
}

// ValidVisualCreativeTypes são os formatos de material aceitos num pedido.
var ValidVisualCreativeTypes = map[string]struct{}{
	"poster":         {},
	"tent":           {},
	"awning":         {},
	"stand":          {},
	"spider_stand":   {},
	"megalight":      {},
	"digital_screen": {},
	"led_board":      {},
	"rollup":         {},
	"flyer":          {},
	"banner":         {},
	"totem":          {},
	"sticker":        {},
	"other":          {},
}

// VisualRequest é um pedido de material de marketing do dealer (pôsteres,
// totens, roll-ups) produzido pela agência de criação.
type VisualRequest struct {
	ID              string              `json:"id"`
	DealerID        string              `json:"dealer_id"`
	DealerName      string              `json:"dealer_name,omitempty"`
	WorkRequest     string              `json:"work_request"`
	Quantity        int                 `json:"quantity"`
	WorkDetails     string              `json:"work_details"`
	IntendedMessage string              `json:"intended_message,omitempty"`
	LegalText       string              `json:"legal_text,omitempty"`
	Deadline        time.Time           `json:"deadline"`
	CreativeTypes   []string            `json:"creative_types"`
	Status          VisualRequestStatus `json:"status"`
	AssignedTo      *VisualAssignee     `json:"assigned_to,omitempty"`
	AdminNote       string              `json:"admin_note,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type CreateVisualRequest struct {
	DealerID        string   `json:"dealer_id"`
	WorkRequest     string   `json:"work_request"`
	Quantity        int      `json:"quantity"`
	WorkDetails     string   `json:"work_details"`
	IntendedMessage string   `json:"intended_message"`
	LegalText       string   `json:"legal_text"`
	Deadline        string   `json:"deadline"`
	CreativeTypes   []string `json:"creative_types"`
}
