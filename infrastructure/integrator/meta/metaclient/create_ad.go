package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) CreateAd(ctx context.Context, params *metadomain.CreateAdParams) (string, error) {
	creative, err := json.Marshal(params.Creative)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("adset_id", params.AdSetID)
	form.Set("creative", string(creative))
	form.Set("status", params.Status)

	adID, err := c.createObject(ctx, c.adAccountPath("ads"), form)
	if err != nil {
		return "", err
	}

	logrus.WithField("fb_ad_id", adID).Info("Anúncio criado na plataforma de anúncios")

	return adID, nil
}
