package metaclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) CreateCreative(ctx context.Context, params *metadomain.CreateCreativeParams) (string, error) {
	storySpec, err := json.Marshal(params.ObjectStorySpec)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("object_story_spec", string(storySpec))

	creativeID, err := c.createObject(ctx, c.adAccountPath("adcreatives"), form)
	if err != nil {
		return "", err
	}

	logrus.WithField("fb_creative_id", creativeID).Info("Criativo criado na plataforma de anúncios")

	return creativeID, nil
}
