package metadomain

// Status usado em todos os objetos criados durante o push. As campanhas nascem
// pausadas; a ativação acontece manualmente no gerenciador de anúncios.
const StatusPaused = "PAUSED"

type CreateCampaignParams struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories"`
}

type Targeting struct {
	GeoLocations GeoLocations `json:"geo_locations"`
	AgeMin       int          `json:"age_min"`
	AgeMax       int          `json:"age_max"`
}

type GeoLocations struct {
	Countries []string `json:"countries"`
}

// CreateAdSetParams carrega orçamento e lances em unidades menores da moeda
// da conta (kuruş). BidAmount zero significa "não enviar o campo".
type CreateAdSetParams struct {
	Name             string    `json:"name"`
	CampaignID       string    `json:"campaign_id"`
	OptimizationGoal string    `json:"optimization_goal"`
	BillingEvent     string    `json:"billing_event"`
	DailyBudget      int64     `json:"daily_budget"`
	BidAmount        int64     `json:"bid_amount,omitempty"`
	Targeting        Targeting `json:"targeting"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Status           string    `json:"status"`
}

type CallToAction struct {
	Type string `json:"type"`
}

type LinkData struct {
	Message      string       `json:"message"`
	Link         string       `json:"link"`
	CallToAction CallToAction `json:"call_to_action"`
	ImageHash    string       `json:"image_hash,omitempty"`
}

type ObjectStorySpec struct {
	PageID           string   `json:"page_id"`
	InstagramActorID string   `json:"instagram_actor_id,omitempty"`
	LinkData         LinkData `json:"link_data"`
}

type CreateCreativeParams struct {
	Name            string          `json:"name"`
	ObjectStorySpec ObjectStorySpec `json:"object_story_spec"`
}

type AdCreativeRef struct {
	CreativeID string `json:"creative_id"`
}

type CreateAdParams struct {
	Name     string        `json:"name"`
	AdSetID  string        `json:"adset_id"`
	Creative AdCreativeRef `json:"creative"`
	Status   string        `json:"status"`
}

// CreateResponse é o corpo de sucesso dos endpoints de criação: só o ID.
type CreateResponse struct {
	ID string `json:"id"`
}

// AdImageUploadResponse mapeia o retorno de /adimages, indexado pelo nome do
// arquivo enviado.
type AdImageUploadResponse struct {
	Images map[string]AdImage `json:"images"`
}

type AdImage struct {
	Hash string `json:"hash"`
	URL  string `json:"url,omitempty"`
}

// CampaignStatus é a leitura read-only do estado remoto da campanha.
type CampaignStatus struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	EffectiveStatus  string `json:"effective_status"`
	ConfiguredStatus string `json:"configured_status"`
}
