package reconciling

import (
	"github.com/vfg2006/campaign-guard-api/internal/domain"
	"github.com/vfg2006/campaign-guard-api/pkg/utils"
)

// AggregateMetrics agrega todas as linhas de métricas em totais por
// campanha, em um único passe agrupado pelo id da campanha — nunca uma
// consulta ou passe por campanha. O resumo de uma campanha depende apenas
// das suas próprias linhas
func AggregateMetrics(metrics []*domain.CampaignMetric) map[int64]*domain.CampaignSummary {
	summaries := make(map[int64]*domain.CampaignSummary)

	for _, metric := range metrics {
		summary, ok := summaries[metric.CampaignID]
		if !ok {
			summary = &domain.CampaignSummary{CampaignID: metric.CampaignID}
			summaries[metric.CampaignID] = summary
		}

		summary.TotalSpend += metric.Spend
		summary.TotalInstalls += metric.Installs
		summary.TotalClicks += metric.Clicks
		summary.TotalImpressions += metric.Impressions
		summary.TotalPurchases += metric.PurchaseCount

		date := metric.Date
		if summary.StartDate == nil || date.Before(*summary.StartDate) {
			summary.StartDate = &date
		}
		if summary.EndDate == nil || date.After(*summary.EndDate) {
			summary.EndDate = &date
		}
	}

	for _, summary := range summaries {
		applyDerivedRates(summary)
	}

	return summaries
}

// applyDerivedRates calcula as taxas derivadas a partir dos totais. Toda
// taxa cujo denominador é 0 resulta em 0 — nunca infinito ou NaN
func applyDerivedRates(summary *domain.CampaignSummary) {
	spend := summary.TotalSpend
	impressions := float64(summary.TotalImpressions)
	clicks := float64(summary.TotalClicks)
	installs := float64(summary.TotalInstalls)
	purchases := float64(summary.TotalPurchases)

	summary.CPM = utils.Rate(spend, impressions, 1000)
	summary.CPC = utils.Rate(spend, clicks, 1)
	summary.CPI = utils.Rate(spend, installs, 1)
	summary.CPA = utils.Rate(spend, purchases, 1)
	summary.CTR = utils.Rate(clicks, impressions, 100)
	summary.CVR = utils.Rate(installs, clicks, 100)
}
