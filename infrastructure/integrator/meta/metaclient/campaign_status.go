package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
)

// GetCampaignStatus consulta o estado remoto da campanha. Operação somente de
// leitura: nenhum estado local é alterado aqui.
func (c *MetaClient) GetCampaignStatus(ctx context.Context, campaignID string) (*metadomain.CampaignStatus, error) {
	params := url.Values{}
	params.Set("fields", "name,status,effective_status,configured_status")

	rawURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, campaignID)

	body, err := c.getJSON(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}

	var status metadomain.CampaignStatus
	if err := json.Unmarshal(body, &status); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &status, nil
}
