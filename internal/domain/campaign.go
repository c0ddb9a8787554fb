package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do fluxo de aprovação interno da campanha. Independente do estado de
// push para o Facebook (PushStatus).
type CampaignStatus string

const (
	CampaignStatusDraft           CampaignStatus = "draft"
	CampaignStatusPendingApproval CampaignStatus = "pending_approval"
	CampaignStatusApproved        CampaignStatus = "approved"
	CampaignStatusRejected        CampaignStatus = "rejected"
	CampaignStatusLive            CampaignStatus = "live"
	CampaignStatusCompleted       CampaignStatus = "completed"
)

// PushStatus acompanha o resultado da submissão à plataforma de anúncios.
// Eixo ortogonal ao CampaignStatus: um push com falha pode ser re-tentado
// enquanto a campanha continuar aprovada.
type PushStatus string

const (
	PushStatusNone      PushStatus = ""
	PushStatusPushing   PushStatus = "pushing"
	PushStatusSucceeded PushStatus = "succeeded"
	PushStatusFailed    PushStatus = "failed"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// RedirectPurpose define o destino do clique quando a campanha não informa a
// própria URL: vendas usa a URL de vendas do dealer, serviço a de pós-venda.
type RedirectPurpose string

const (
	RedirectSales   RedirectPurpose = "sales"
	RedirectService RedirectPurpose = "service"
	RedirectOther   RedirectPurpose = "other"
)

type CampaignRequest struct {
	ID           string          `json:"id"`
	DealerID     string          `json:"dealer_id"`
	DealerName   string          `json:"dealer_name,omitempty"`
	CampaignName string          `json:"campaign_name"`
	Budget       decimal.Decimal `json:"budget"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Platforms    []Platform      `json:"platforms"`
	AdMessage    string          `json:"ad_message"`
	CTAType      string          `json:"cta_type"`
	WebsiteURL   string          `json:"website_url"`
	RedirectType RedirectPurpose `json:"redirect_type"`
	Notes        string          `json:"notes"`
	Status       CampaignStatus  `json:"status"`

	// Estado do push e IDs externos. Os IDs ficam vazios até o passo
	// correspondente do push ter sucesso; um novo push sobrescreve todos.
	FBPushStatus PushStatus `json:"fb_push_status"`
	FBPushError  string     `json:"fb_push_error,omitempty"`
	FBCampaignID string     `json:"fb_campaign_id,omitempty"`
	FBAdSetID    string     `json:"fb_adset_id,omitempty"`
	FBCreativeID string     `json:"fb_creative_id,omitempty"`
	FBAdID       string     `json:"fb_ad_id,omitempty"`
	FBPushedAt   *time.Time `json:"fb_pushed_at,omitempty"`

	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCampaignRequest struct {
	DealerID     string          `json:"dealer_id"`
	CampaignName string          `json:"campaign_name"`
	Budget       decimal.Decimal `json:"budget"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Platforms    []Platform      `json:"platforms"`
	AdMessage    string          `json:"ad_message"`
	CTAType      string          `json:"cta_type"`
	WebsiteURL   string          `json:"website_url"`
	RedirectType RedirectPurpose `json:"redirect_type"`
	Notes        string          `json:"notes"`
}

// ValidCTATypes são os call-to-action aceitos pela plataforma de anúncios.
var ValidCTATypes = map[string]struct{}{
	"LEARN_MORE":  {},
	"SHOP_NOW":    {},
	"CONTACT_US":  {},
	"SIGN_UP":     {},
	"GET_OFFER":   {},
	"BOOK_TRAVEL": {},
}

// CanTransitionTo valida a máquina de estados do fluxo de aprovação:
// draft → pending_approval → approved → live → completed, com rejected
// alcançável a partir de pending_approval ou approved.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	allowed := map[CampaignStatus][]CampaignStatus{
		CampaignStatusDraft:           {CampaignStatusPendingApproval},
		CampaignStatusPendingApproval: {CampaignStatusApproved, CampaignStatusRejected},
		CampaignStatusApproved:        {CampaignStatusLive, CampaignStatusRejected},
		CampaignStatusLive:            {CampaignStatusCompleted},
		CampaignStatusCompleted:       {},
		CampaignStatusRejected:        {},
	}

	for _, st := range allowed[s] {
		if st == next {
			return true
		}
	}
	return false
}

func ValidCampaignStatus(s CampaignStatus) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusPendingApproval, CampaignStatusApproved,
		CampaignStatusRejected, CampaignStatusLive, CampaignStatusCompleted:
		return true
	}
	return false
}
