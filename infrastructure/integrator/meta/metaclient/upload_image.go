package metaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/dealerhub/dealer-ops-api/infrastructure/integrator/meta/domain"
)

var supportedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// UploadImage envia o arquivo para /adimages e devolve o hash, usado depois no
// link_data do criativo.
func (c *MetaClient) UploadImage(ctx context.Context, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := supportedImageExtensions[ext]; !ok {
		return "", fmt.Errorf("extensão de arquivo não suportada: %s", ext)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("filename", fileName)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}

	if err := writer.WriteField("access_token", c.Cfg.Meta.AccessToken); err != nil {
		return "", err
	}

	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.adAccountPath("adimages"), &buf)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return "", err
	}

	var response metadomain.AdImageUploadResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	for _, image := range response.Images {
		if image.Hash != "" {
			logrus.WithField("image_hash", image.Hash).Info("Imagem enviada para a plataforma de anúncios")
			return image.Hash, nil
		}
	}

	return "", fmt.Errorf("meta api não retornou o hash da imagem")
}
