package tiktok

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/campaign-guard-api/internal/config"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
	"github.com/vfg2006/campaign-guard-api/pkg/utils"
)

const (
	// Limite de ids por chamada de listagem da API
	defaultBatchSize = 10

	// A API reporta create_time como "YYYY-MM-DD HH:MM:SS" em UTC
	remoteTimeLayout = "2006-01-02 15:04:05"

	// Horário local = UTC + 8h, deslocamento fixo, sem DST
	localTimeOffset = 8 * time.Hour
)

type Integrator interface {
	FetchCampaignStates(ctx context.Context, externalIDs []string) (map[string]*domain.RemoteCampaignState, error)
	DisableCampaign(ctx context.Context, externalID string) bool
}

type Service struct {
	cfg    *config.Config
	client tiktokclient.Client
}

func New(cfg *config.Config, client tiktokclient.Client) Integrator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// FetchCampaignStates busca o status e o create_time remotos de um conjunto
// de campanhas, em lotes sequenciais limitados pelo tamanho máximo aceito
// pela API. A falha de qualquer lote é devolvida como erro — o orquestrador
// decide abortar o ciclo
func (s *Service) FetchCampaignStates(ctx context.Context, externalIDs []string) (map[string]*domain.RemoteCampaignState, error) {
	states := make(map[string]*domain.RemoteCampaignState, len(externalIDs))

	batches := utils.ChunkStrings(externalIDs, s.batchSize())
	for batchNum, batch := range batches {
		logrus.WithFields(logrus.Fields{
			"batch":      batchNum + 1,
			"batches":    len(batches),
			"batch_size": len(batch),
		}).Debug("Consultando lote de campanhas na API do TikTok")

		adGroups, err := s.client.GetAdGroups(ctx, batch)
		if err != nil {
			return nil, errors.Wrapf(err, "falha no lote %d de %d", batchNum+1, len(batches))
		}

		for _, adGroup := range adGroups {
			createTime, err := convertCreateTime(adGroup.CreateTime)
			if err != nil {
				return nil, errors.Wrapf(err, "create_time inválido para adgroup %s", adGroup.AdGroupID)
			}

			states[adGroup.AdGroupID] = &domain.RemoteCampaignState{
				ExternalID: adGroup.AdGroupID,
				Status:     convertStatus(adGroup.OperationStatus),
				CreateTime: createTime,
			}
		}
	}

	return states, nil
}

// DisableCampaign emite a ação de desativação para uma campanha. Nunca
// retorna erro ao chamador: qualquer falha é registrada com o identificador
// e o motivo, e o resultado é apenas o booleano de sucesso
func (s *Service) DisableCampaign(ctx context.Context, externalID string) bool {
	response, err := s.client.UpdateAdGroupStatus(ctx, []string{externalID}, tiktokdomain.OperationStatusDisable)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
		}).WithError(err).Error("Falha ao desativar campanha")
		return false
	}

	if response.Code != 0 || response.Message != "OK" {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"code":        response.Code,
			"message":     response.Message,
		}).Error("API do TikTok rejeitou a desativação da campanha")
		return false
	}

	return true
}

func (s *Service) batchSize() int {
	if s.cfg.CampaignSync.BatchSize > 0 {
		return s.cfg.CampaignSync.BatchSize
	}
	return defaultBatchSize
}

// convertStatus traduz o vocabulário de status da API para o enum local.
// Valores desconhecidos viram Desativada: desconhecido significa "não está
// rodando"
func convertStatus(operationStatus string) domain.CampaignStatus {
	switch operationStatus {
	case tiktokdomain.OperationStatusEnable:
		return domain.CampaignStatusActive
	case tiktokdomain.OperationStatusDisable:
		return domain.CampaignStatusDisabled
	case tiktokdomain.OperationStatusFrozen:
		return domain.CampaignStatusFrozen
	default:
		return domain.CampaignStatusDisabled
	}
}

// convertCreateTime converte o create_time UTC da API para o horário local
// somando exatamente 8 horas
func convertCreateTime(remoteTime string) (time.Time, error) {
	utcTime, err := time.Parse(remoteTimeLayout, remoteTime)
	if err != nil {
		return time.Time{}, err
	}

	return utcTime.Add(localTimeOffset), nil
}
