package tiktokclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok/domain"
)

// UpdateAdGroupStatus altera o operation_status de um conjunto de adgroups.
// A resposta de negócio (code/message) é devolvida ao chamador mesmo quando
// indica falha — rejeições de negócio não são erro de transporte
func (c *TikTokClient) UpdateAdGroupStatus(ctx context.Context, adGroupIDs []string, operationStatus string) (*tiktokdomain.StatusUpdateResponse, error) {
	url := fmt.Sprintf("%s/adgroup/status/update/", c.cfg.TikTok.BaseURL)

	payload, err := json.Marshal(tiktokdomain.StatusUpdateRequest{
		AdvertiserID:    c.cfg.TikTok.AdvertiserID,
		AdGroupIDs:      adGroupIDs,
		OperationStatus: operationStatus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
	}

	resp, err := c.doRequest(ctx, http.MethodPost, url, payload)
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar status de adgroups na API do TikTok")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	var response tiktokdomain.StatusUpdateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da API do TikTok")
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &response, nil
}
