package domain

import (
	"time"
)

// CampaignMetric é a observação diária de performance de uma campanha.
// As linhas são gravadas por um caminho de ingestão externo e nunca são
// alteradas por este serviço; existe no máximo uma linha por (campanha, data)
type CampaignMetric struct {
	ID            int64     `json:"id"`
	CampaignID    int64     `json:"campaign_id"`
	Date          time.Time `json:"date"`
	Installs      int64     `json:"installs"`
	Spend         float64   `json:"spend"`
	Clicks        int64     `json:"clicks"`
	Impressions   int64     `json:"impressions"`
	PurchaseCount int64     `json:"purchase_count"`
}
