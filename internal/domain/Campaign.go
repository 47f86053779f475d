package domain

import (
	"time"
)

// CampaignStatus é o status local de uma campanha, derivado do
// operation_status reportado pela API do TikTok
type CampaignStatus int

const (
	CampaignStatusDisabled CampaignStatus = 0
	CampaignStatusActive   CampaignStatus = 1
	CampaignStatusFrozen   CampaignStatus = 2
)

// Text retorna o texto de apresentação do status para o dashboard
func (s CampaignStatus) Text() string {
	switch s {
	case CampaignStatusDisabled:
		return "Desativada"
	case CampaignStatusActive:
		return "Ativa"
	case CampaignStatusFrozen:
		return "Congelada"
	default:
		return "Desconhecido"
	}
}

type Campaign struct {
	ID               int64          `json:"id"`
	ExternalID       string         `json:"external_id"`
	Name             string         `json:"name"`
	Status           CampaignStatus `json:"status"`
	StatusText       string         `json:"status_text,omitempty"`
	CreateTime       *time.Time     `json:"create_time"`
	TotalSpend       float64        `json:"total_spend"`
	TotalInstalls    int64          `json:"total_installs"`
	TotalClicks      int64          `json:"total_clicks"`
	TotalImpressions int64          `json:"total_impressions"`
	TotalPurchases   int64          `json:"total_purchases"`
	StartDate        *time.Time     `json:"start_date"`
	EndDate          *time.Time     `json:"end_date"`
	CPI              float64        `json:"cpi"`
	CPM              float64        `json:"cpm"`
	CPC              float64        `json:"cpc"`
	CPA              float64        `json:"cpa"`
	CTR              float64        `json:"ctr"`
	CVR              float64        `json:"cvr"`
}

// RemoteCampaignState é o estado de uma campanha como reportado pela
// plataforma remota, já convertido para o vocabulário local
type RemoteCampaignState struct {
	ExternalID string
	Status     CampaignStatus
	CreateTime time.Time
}

// CampaignSummary agrega as linhas de métricas de uma campanha em totais
// de vida inteira e taxas derivadas. Os totais são sempre re-derivados a
// partir das linhas, nunca editados diretamente
type CampaignSummary struct {
	CampaignID       int64
	TotalSpend       float64
	TotalInstalls    int64
	TotalClicks      int64
	TotalImpressions int64
	TotalPurchases   int64
	StartDate        *time.Time
	EndDate          *time.Time
	CPI              float64
	CPM              float64
	CPC              float64
	CPA              float64
	CTR              float64
	CVR              float64
}
