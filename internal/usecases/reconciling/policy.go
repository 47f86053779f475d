package reconciling

import (
	"github.com/vfg2006/campaign-guard-api/internal/config"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
)

// Motivos legíveis anexados ao pedido de desativação
const (
	ReasonHighSpendNoInstalls = "high spend, zero installs"
	ReasonCPITooHigh          = "cost-per-install too high"
)

// DisableRecommendation é o pedido de desativação produzido pela política
// para uma campanha fora das regras de operação
type DisableRecommendation struct {
	Campaign *domain.Campaign
	Reasons  []string
}

// EvaluateCampaign aplica as regras de desativação sobre o resumo atual de
// uma campanha. Apenas campanhas Ativas são avaliadas: qualquer outro
// status é pulado (estado esperado para campanhas já paradas, não é erro).
// As regras são independentes e aditivas — uma campanha pode carregar os
// dois motivos. Retorna nil quando nenhuma regra é violada
func EvaluateCampaign(campaign *domain.Campaign, policy config.Policy) *DisableRecommendation {
	if campaign.Status != domain.CampaignStatusActive {
		return nil
	}

	var reasons []string

	// Regra A: gasto sem resultado
	if campaign.TotalSpend > policy.MaxSpendNoInstalls && campaign.TotalInstalls == 0 {
		reasons = append(reasons, ReasonHighSpendNoInstalls)
	}

	// Regra B: instalações ineficientes
	if campaign.TotalInstalls > 0 && campaign.CPI > policy.MaxCPI {
		reasons = append(reasons, ReasonCPITooHigh)
	}

	if len(reasons) == 0 {
		return nil
	}

	return &DisableRecommendation{
		Campaign: campaign,
		Reasons:  reasons,
	}
}
