package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) CreateCampaign(ctx context.Context, params *metadomain.CreateCampaignParams) (string, error) {
	categories, err := json.Marshal(params.SpecialAdCategories)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("objective", params.Objective)
	form.Set("status", params.Status)
	form.Set("special_ad_categories", string(categories))

	campaignID, err := c.createObject(ctx, c.adAccountPath("campaigns"), form)
	if err != nil {
		return "", err
	}

	logrus.WithField("fb_campaign_id", campaignID).Info("Campanha criada na plataforma de anúncios")

	return campaignID, nil
}
