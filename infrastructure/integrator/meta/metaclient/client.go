package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
	"github.com/dealerhub/dealer-ops-api/internal/config"
	"github.com/dealerhub/dealer-ops-api/pkg/utils"
)

type Client interface {
	CreateCampaign(ctx context.Context, params *metadomain.CreateCampaignParams) (string, error)
	CreateAdSet(ctx context.Context, params *metadomain.CreateAdSetParams) (string, error)
	UploadImage(ctx context.Context, fileName string, data []byte) (string, error)
	CreateCreative(ctx context.Context, params *metadomain.CreateCreativeParams) (string, error)
	CreateAd(ctx context.Context, params *metadomain.CreateAdParams) (string, error)
	GetCampaignStatus(ctx context.Context, campaignID string) (*metadomain.CampaignStatus, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// adAccountPath monta o caminho de um endpoint da conta de anúncios, por
// exemplo "campaigns" -> "/act_123/campaigns".
func (c *MetaClient) adAccountPath(endpoint string) string {
	accountID := strings.TrimPrefix(c.Cfg.Meta.AdAccountID, "act_")
	return fmt.Sprintf("%s/act_%s/%s", c.Cfg.Meta.URL, accountID, endpoint)
}

// postForm envia um POST form-encoded com o access_token e devolve o corpo da
// resposta já validado por handleResponse.
func (c *MetaClient) postForm(ctx context.Context, rawURL string, form url.Values) ([]byte, error) {
	form.Set("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *MetaClient) getJSON(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse lê o corpo e converte respostas não-2xx no erro tipado da
// API. A classificação (token expirado, instagram_actor_id inválido) fica no
// próprio metadomain.APIError.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.Debugf("Resposta da API do Meta: %s", utils.PrettyJson(body))
		}
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == nil {
		return nil, fmt.Errorf("meta api retornou status %d: %s", resp.StatusCode, string(body))
	}

	errResp.Error.HTTPStatus = resp.StatusCode

	logrus.WithFields(logrus.Fields{
		"code":       errResp.Error.Code,
		"subcode":    errResp.Error.ErrorSubcode,
		"type":       errResp.Error.Type,
		"fbtrace_id": errResp.Error.FBTraceID,
	}).Error("Erro retornado pela API do Meta")

	return nil, errResp.Error
}

// createObject executa um POST de criação e extrai o ID do objeto criado.
func (c *MetaClient) createObject(ctx context.Context, rawURL string, form url.Values) (string, error) {
	body, err := c.postForm(ctx, rawURL, form)
	if err != nil {
		return "", err
	}

	var response metadomain.CreateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	if response.ID == "" {
		return "", fmt.Errorf("meta api não retornou o id do objeto criado")
	}

	return response.ID, nil
}
