package metaclient

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) CreateAdSet(ctx context.Context, params *metadomain.CreateAdSetParams) (string, error) {
	targeting, err := json.Marshal(params.Targeting)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("campaign_id", params.CampaignID)
	form.Set("optimization_goal", params.OptimizationGoal)
	form.Set("billing_event", params.BillingEvent)
	form.Set("daily_budget", strconv.FormatInt(params.DailyBudget, 10))
	form.Set("targeting", string(targeting))
	form.Set("start_time", params.StartTime)
	form.Set("end_time", params.EndTime)
	form.Set("status", params.Status)

	// BidAmount zero significa que o objetivo da conta não exige lance manual.
	if params.BidAmount > 0 {
		form.Set("bid_amount", strconv.FormatInt(params.BidAmount, 10))
	}

	adSetID, err := c.createObject(ctx, c.adAccountPath("adsets"), form)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"fb_adset_id":  adSetID,
		"daily_budget": params.DailyBudget,
		"bid_amount":   params.BidAmount,
	}).Info("Conjunto de anúncios criado na plataforma de anúncios")

	return adSetID, nil
}
