package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type IncentiveStatus string

const (
	IncentiveStatusPending  IncentiveStatus = "pending_approval"
	IncentiveStatusApproved IncentiveStatus = "approved"
	IncentiveStatusRejected IncentiveStatus = "rejected"
)

// IncentiveRequest é um pedido de incentivo comercial do dealer (verba extra,
// apoio de campanha regional). Fluxo de aprovação simples, sem push externo.
type IncentiveRequest struct {
	ID          string          `json:"id"`
	DealerID    string          `json:"dealer_id"`
	DealerName  string          `json:"dealer_name,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Status      IncentiveStatus `json:"status"`
	AdminNote   string          `json:"admin_note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateIncentiveRequest struct {
	DealerID    string          `json:"dealer_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
}
