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

// GetAdGroups consulta o status atual de um lote de adgroups. O chamador é
// responsável por respeitar o limite de ids por requisição da API
func (c *TikTokClient) GetAdGroups(ctx context.Context, adGroupIDs []string) ([]tiktokdomain.AdGroup, error) {
	url := fmt.Sprintf("%s/adgroup/get/", c.cfg.TikTok.BaseURL)

	payload, err := json.Marshal(tiktokdomain.AdGroupGetRequest{
		AdvertiserID: c.cfg.TikTok.AdvertiserID,
		Filtering: tiktokdomain.Filtering{
			AdGroupIDs: adGroupIDs,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
	}

	resp, err := c.doRequest(ctx, http.MethodGet, url, payload)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar adgroups na API do TikTok")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	var response tiktokdomain.AdGroupGetResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da API do TikTok")
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	// Rejeição de negócio: nunca retentada
	if response.Code != 0 {
		return nil, errors.Errorf("API do TikTok retornou code=%d message=%q", response.Code, response.Message)
	}

	return response.Data.List, nil
}
