package domain

// CampaignSortKey é uma chave de ordenação permitida para a listagem de
// campanhas. O conjunto é enumerado explicitamente: chaves desconhecidas
// caem no padrão (total_spend desc) de forma determinística, nunca via
// reflexão sobre o modelo
type CampaignSortKey string

const (
	SortByStatus           CampaignSortKey = "status"
	SortByCreateTime       CampaignSortKey = "create_time"
	SortByName             CampaignSortKey = "name"
	SortByTotalSpend       CampaignSortKey = "total_spend"
	SortByTotalInstalls    CampaignSortKey = "total_installs"
	SortByTotalClicks      CampaignSortKey = "total_clicks"
	SortByTotalImpressions CampaignSortKey = "total_impressions"
	SortByTotalPurchases   CampaignSortKey = "total_purchases"
	SortByStartDate        CampaignSortKey = "start_date"
	SortByEndDate          CampaignSortKey = "end_date"
	SortByCPI              CampaignSortKey = "cpi"
	SortByCPM              CampaignSortKey = "cpm"
	SortByCPC              CampaignSortKey = "cpc"
	SortByCPA              CampaignSortKey = "cpa"
	SortByCTR              CampaignSortKey = "ctr"
	SortByCVR              CampaignSortKey = "cvr"
)

// DefaultSortKey é a ordenação padrão do dashboard
const DefaultSortKey = SortByTotalSpend

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// campaignSortColumns mapeia cada chave permitida para a coluna
// correspondente em campaign_info
var campaignSortColumns = map[CampaignSortKey]string{
	SortByStatus:           "c.status",
	SortByCreateTime:       "c.create_time",
	SortByName:             "c.name",
	SortByTotalSpend:       "c.total_spend",
	SortByTotalInstalls:    "c.total_installs",
	SortByTotalClicks:      "c.total_clicks",
	SortByTotalImpressions: "c.total_impressions",
	SortByTotalPurchases:   "c.total_purchases",
	SortByStartDate:        "c.start_date",
	SortByEndDate:          "c.end_date",
	SortByCPI:              "c.cpi",
	SortByCPM:              "c.cpm",
	SortByCPC:              "c.cpc",
	SortByCPA:              "c.cpa",
	SortByCTR:              "c.ctr",
	SortByCVR:              "c.cvr",
}

// Column retorna a coluna associada à chave e se a chave é conhecida
func (k CampaignSortKey) Column() (string, bool) {
	column, ok := campaignSortColumns[k]
	return column, ok
}
