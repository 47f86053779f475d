package tiktokclient

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-guard-api/internal/config"
)

type Client interface {
	GetAdGroups(ctx context.Context, adGroupIDs []string) ([]tiktokdomain.AdGroup, error)
	UpdateAdGroupStatus(ctx context.Context, adGroupIDs []string, operationStatus string) (*tiktokdomain.StatusUpdateResponse, error)
}

type TikTokClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.TikTok.RequestTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &TikTokClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
	}
}

// doRequest executa uma requisição contra a API do TikTok com um pequeno
// orçamento de retentativas para erros de transporte. Respostas de negócio
// (code != 0 no envelope) nunca são retentadas aqui — são decodificadas e
// tratadas pelo chamador
func (c *TikTokClient) doRequest(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	maxRetries := c.cfg.TikTok.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 500 * time.Millisecond
			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"backoff": backoff.String(),
				"url":     url,
			}).Warn("Retentando requisição à API do TikTok")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}

		req.Header.Set("Access-Token", c.cfg.TikTok.AccessToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Erro de transporte: elegível para retentativa
			lastErr = err
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			lastErr = errors.Errorf("requisição falhou com status: %s", resp.Status)
			continue
		}

		return resp, nil
	}

	return nil, errors.Wrap(lastErr, "retentativas esgotadas para a API do TikTok")
}
