package domain

import (
	"time"
)

type DealerStatus string

const (
	DealerStatusActive    DealerStatus = "active"
	DealerStatusInactive  DealerStatus = "inactive"
	DealerStatusSuspended DealerStatus = "suspended"
)

type DealerType string

const (
	DealerTypeAuthorized DealerType = "authorized"
	DealerTypeContracted DealerType = "contracted"
	DealerTypeSales      DealerType = "sales"
)

type Dealer struct {
	ID              string       `json:"id"`
	DealerCode      string       `json:"dealer_code"`
	DealerName      string       `json:"dealer_name"`
	City            string       `json:"city"`
	District        string       `json:"district"`
	Address         string       `json:"address"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	ContactPerson   string       `json:"contact_person"`
	RegionalManager string       `json:"regional_manager"`
	Region          string       `json:"region"`
	TaxNumber       string       `json:"tax_number"`
	DealerType      DealerType   `json:"dealer_type"`
	Status          DealerStatus `json:"status"`

	// Identidades e URLs usadas pelo push de campanhas. FBPageID é
	// obrigatório para publicar; InstagramActorID é opcional.
	FBPageID         *string `json:"fb_page_id"`
	InstagramActorID *string `json:"instagram_actor_id"`
	SalesURL         *string `json:"sales_url"`
	ServiceURL       *string `json:"service_url"`

	AdditionalEmails []string  `json:"additional_emails"`
	MembershipDate   time.Time `json:"membership_date"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (d *Dealer) IsActive() bool {
	return d.Status == DealerStatusActive
}

// NotificationRecipients retorna o e-mail principal mais os adicionais.
func (d *Dealer) NotificationRecipients() []string {
	recipients := []string{d.Email}
	return append(recipients, d.AdditionalEmails...)
}

type UpdateDealerRequest struct {
	ID               string        `json:"id"`
	DealerName       *string       `json:"dealer_name"`
	City             *string       `json:"city"`
	District         *string       `json:"district"`
	Address          *string       `json:"address"`
	Phone            *string       `json:"phone"`
	ContactPerson    *string       `json:"contact_person"`
	RegionalManager  *string       `json:"regional_manager"`
	Region           *string       `json:"region"`
	Status           *DealerStatus `json:"status"`
	FBPageID         *string       `json:"fb_page_id"`
	InstagramActorID *string       `json:"instagram_actor_id"`
	SalesURL         *string       `json:"sales_url"`
	ServiceURL       *string       `json:"service_url"`
}

type RegisterDealerRequest struct {
	Brand         string `json:"brand"`
	DealerCode    string `json:"dealer_code"`
	DealerName    string `json:"dealer_name"`
	City          string `json:"city"`
	District      string `json:"district"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactPerson string `json:"contact_person"`
	Password      string `json:"password"`
}
