package reconciling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/campaign-guard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-guard-api/internal/config"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
	"github.com/vfg2006/campaign-guard-api/pkg/utils"
)

// Reconciler executa um ciclo completo de reconciliação de campanhas
type Reconciler interface {
	RunCycle(ctx context.Context) (*domain.CycleReport, error)
}

type Service struct {
	campaignRepo  repository.CampaignRepository
	metricRepo    repository.CampaignMetricRepository
	tiktokService tiktok.Integrator
	cfg           *config.Config
}

func NewService(
	campaignRepo repository.CampaignRepository,
	metricRepo repository.CampaignMetricRepository,
	tiktokService tiktok.Integrator,
	cfg *config.Config,
) Reconciler {
	return &Service{
		campaignRepo:  campaignRepo,
		metricRepo:    metricRepo,
		tiktokService: tiktokService,
		cfg:           cfg,
	}
}

// RunCycle executa um ciclo: atualiza o status remoto de todas as campanhas
// em lotes, recalcula os totais agregados a partir das linhas de métricas,
// avalia a política de desativação sobre as campanhas atualizadas neste
// ciclo e desativa as que violam as regras. Uma falha na consulta de status
// aborta o ciclo inteiro; falhas de desativação são isoladas por campanha
func (s *Service) RunCycle(ctx context.Context) (*domain.CycleReport, error) {
	cycleID, _ := utils.GenerateID()
	startTime := time.Now()

	logger := logrus.WithField("cycle_id", cycleID)
	logger.WithField("started_at", startTime.Format(time.DateTime)).Info("Iniciando ciclo de reconciliação de campanhas")

	report := &domain.CycleReport{
		CycleID:   cycleID,
		StartedAt: startTime,
	}

	// Passo 1: carregar todas as campanhas conhecidas
	campaigns, err := s.campaignRepo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar campanhas: %w", err)
	}

	report.TotalCampaigns = len(campaigns)
	logger.WithField("total_campaigns", len(campaigns)).Info("Campanhas carregadas para reconciliação")

	if len(campaigns) == 0 {
		report.Duration = time.Since(startTime)
		logger.Info("Nenhuma campanha para reconciliar")
		return report, nil
	}

	// Mapa de external_id para campanha, pré-computado antes do loop de
	// lotes — nunca busca linear dentro do lote
	campaignsByExternalID := make(map[string]*domain.Campaign, len(campaigns))
	externalIDs := make([]string, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign.ExternalID == "" {
			logger.WithField("campaign_id", campaign.ID).Warn("Campanha sem external_id. Pulando.")
			continue
		}
		campaignsByExternalID[campaign.ExternalID] = campaign
		externalIDs = append(externalIDs, campaign.ExternalID)
	}

	// Passo 2: atualizar status remoto por lote, persistindo lote a lote
	touchedIDs, err := s.refreshRemoteStates(ctx, logger, report, campaignsByExternalID, externalIDs)
	if err != nil {
		logger.WithError(err).Error("Falha ao atualizar status remoto, abortando ciclo")
		return nil, err
	}
	report.Refreshed = len(touchedIDs)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Passo 3: recalcular os totais agregados e as taxas derivadas
	if err := s.recomputeSummaries(ctx, logger, campaigns); err != nil {
		logger.WithError(err).Error("Falha ao recalcular agregados, abortando ciclo")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Passo 4: política de desativação apenas sobre as campanhas cujo
	// status foi atualizado neste ciclo — avaliar status antigo arriscaria
	// desativar com dados desatualizados
	flagged := make([]*DisableRecommendation, 0)
	for _, externalID := range touchedIDs {
		campaign := campaignsByExternalID[externalID]
		if recommendation := EvaluateCampaign(campaign, s.cfg.Policy); recommendation != nil {
			flagged = append(flagged, recommendation)
		}
	}
	report.Flagged = len(flagged)

	if len(flagged) == 0 {
		logger.Info("Todas as campanhas dentro da política")
	}

	// Passo 5: desativar as campanhas sinalizadas, sequencialmente; falhas
	// individuais não interrompem as demais
	for _, recommendation := range flagged {
		campaign := recommendation.Campaign

		logger.WithFields(logrus.Fields{
			"external_id":    campaign.ExternalID,
			"name":           campaign.Name,
			"total_spend":    campaign.TotalSpend,
			"total_installs": campaign.TotalInstalls,
			"cpi":            campaign.CPI,
			"reasons":        strings.Join(recommendation.Reasons, ", "),
		}).Warn("Campanha fora da política de operação, desativando")

		if s.tiktokService.DisableCampaign(ctx, campaign.ExternalID) {
			report.Disabled++
			logger.WithField("external_id", campaign.ExternalID).Info("Campanha desativada com sucesso")
		} else {
			report.DisableErrors++
		}
	}

	report.Duration = time.Since(startTime)

	logger.WithFields(logrus.Fields{
		"duration":        report.Duration.String(),
		"total_campaigns": report.TotalCampaigns,
		"batches":         report.Batches,
		"refreshed":       report.Refreshed,
		"flagged":         report.Flagged,
		"disabled":        report.Disabled,
		"disable_errors":  report.DisableErrors,
	}).Info("Ciclo de reconciliação concluído")

	return report, nil
}

// refreshRemoteStates consulta a plataforma remota em lotes e aplica
// status/create_time em cada campanha. Cada lote é persistido assim que
// retorna, então o progresso parcial sobrevive a uma falha posterior; a
// falha da própria chamada de um lote é fatal para o ciclo. Retorna os
// external_ids efetivamente atualizados
func (s *Service) refreshRemoteStates(
	ctx context.Context,
	logger *logrus.Entry,
	report *domain.CycleReport,
	campaignsByExternalID map[string]*domain.Campaign,
	externalIDs []string,
) ([]string, error) {
	batches := utils.ChunkStrings(externalIDs, s.cfg.CampaignSync.BatchSize)
	report.Batches = len(batches)

	touchedIDs := make([]string, 0, len(externalIDs))

	for batchNum, batch := range batches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.WithFields(logrus.Fields{
			"batch":      batchNum + 1,
			"batches":    len(batches),
			"batch_size": len(batch),
		}).Info("Processando lote de campanhas")

		states, err := s.tiktokService.FetchCampaignStates(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("falha na consulta do lote %d de %d: %w", batchNum+1, len(batches), err)
		}

		updates := make([]*domain.RemoteCampaignState, 0, len(batch))
		for _, externalID := range batch {
			state, ok := states[externalID]
			if !ok {
				// Campanha desconhecida na plataforma remota: mantém o
				// estado local
				continue
			}

			campaign, ok := campaignsByExternalID[externalID]
			if !ok {
				continue
			}

			campaign.Status = state.Status
			createTime := state.CreateTime
			campaign.CreateTime = &createTime

			updates = append(updates, state)
			touchedIDs = append(touchedIDs, externalID)
		}

		if err := s.campaignRepo.UpdateRemoteStates(ctx, updates); err != nil {
			return nil, fmt.Errorf("erro ao persistir o lote %d de %d: %w", batchNum+1, len(batches), err)
		}

		logger.WithFields(logrus.Fields{
			"batch":   batchNum + 1,
			"updated": len(updates),
		}).Info("Lote de status persistido")
	}

	return touchedIDs, nil
}

// recomputeSummaries re-deriva os totais de vida inteira e as taxas de
// todas as campanhas a partir das linhas de métricas e persiste tudo em um
// único commit. Campanhas sem linhas recebem totais zerados e datas nulas
func (s *Service) recomputeSummaries(ctx context.Context, logger *logrus.Entry, campaigns []*domain.Campaign) error {
	metrics, err := s.metricRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar linhas de métricas: %w", err)
	}

	summariesByID := AggregateMetrics(metrics)

	summaries := make([]*domain.CampaignSummary, 0, len(campaigns))
	for _, campaign := range campaigns {
		summary, ok := summariesByID[campaign.ID]
		if !ok {
			summary = &domain.CampaignSummary{CampaignID: campaign.ID}
		}

		applySummary(campaign, summary)
		summaries = append(summaries, summary)
	}

	if err := s.campaignRepo.UpdateSummaries(ctx, summaries); err != nil {
		return fmt.Errorf("erro ao persistir agregados: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"metric_rows": len(metrics),
		"summaries":   len(summaries),
	}).Info("Agregados recalculados e persistidos")

	return nil
}

// applySummary copia os totais e taxas derivadas para a entidade em
// memória, para que a avaliação de política enxergue os dados recém
// calculados
func applySummary(campaign *domain.Campaign, summary *domain.CampaignSummary) {
	campaign.TotalSpend = summary.TotalSpend
	campaign.TotalInstalls = summary.TotalInstalls
	campaign.TotalClicks = summary.TotalClicks
	campaign.TotalImpressions = summary.TotalImpressions
	campaign.TotalPurchases = summary.TotalPurchases
	campaign.StartDate = summary.StartDate
	campaign.EndDate = summary.EndDate
	campaign.CPI = summary.CPI
	campaign.CPM = summary.CPM
	campaign.CPC = summary.CPC
	campaign.CPA = summary.CPA
	campaign.CTR = summary.CTR
	campaign.CVR = summary.CVR
}
