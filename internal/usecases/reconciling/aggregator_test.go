package reconciling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
)

func TestAggregateMetrics(t *testing.T) {
	d1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	metrics := []*domain.CampaignMetric{
		{CampaignID: 1, Date: d1, Spend: 10, Installs: 1, Clicks: 20, Impressions: 1000, PurchaseCount: 1},
		{CampaignID: 1, Date: d2, Spend: 5, Installs: 0, Clicks: 10, Impressions: 500, PurchaseCount: 0},
	}

	summaries := AggregateMetrics(metrics)
	require.Len(t, summaries, 1)

	summary := summaries[1]
	require.NotNil(t, summary)

	assert.Equal(t, 15.0, summary.TotalSpend)
	assert.Equal(t, int64(1), summary.TotalInstalls)
	assert.Equal(t, int64(30), summary.TotalClicks)
	assert.Equal(t, int64(1500), summary.TotalImpressions)
	assert.Equal(t, int64(1), summary.TotalPurchases)

	require.NotNil(t, summary.StartDate)
	require.NotNil(t, summary.EndDate)
	assert.Equal(t, d1, *summary.StartDate)
	assert.Equal(t, d2, *summary.EndDate)

	// Taxas derivadas dos totais
	assert.Equal(t, 15.0, summary.CPI)            // 15 / 1
	assert.Equal(t, 2.0, summary.CTR)             // 30 / 1500 * 100
	assert.Equal(t, 10.0, summary.CPM)            // 15 / 1500 * 1000
	assert.Equal(t, 0.5, summary.CPC)             // 15 / 30
	assert.Equal(t, 15.0, summary.CPA)            // 15 / 1
	assert.InDelta(t, 3.3333, summary.CVR, 0.001) // 1 / 30 * 100
}

func TestAggregateMetricsGroupsByCampaign(t *testing.T) {
	d1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	metrics := []*domain.CampaignMetric{
		{CampaignID: 1, Date: d1, Spend: 10, Installs: 5},
		{CampaignID: 2, Date: d1, Spend: 7, Clicks: 3},
		{CampaignID: 1, Date: d2, Spend: 2},
		{CampaignID: 2, Date: d2, Spend: 1, Clicks: 1},
	}

	summaries := AggregateMetrics(metrics)
	require.Len(t, summaries, 2)

	// O resumo de cada campanha depende apenas das suas próprias linhas
	assert.Equal(t, 12.0, summaries[1].TotalSpend)
	assert.Equal(t, int64(5), summaries[1].TotalInstalls)
	assert.Equal(t, 8.0, summaries[2].TotalSpend)
	assert.Equal(t, int64(4), summaries[2].TotalClicks)
	assert.Equal(t, 2.0, summaries[2].CPC)
}

func TestAggregateMetricsEmpty(t *testing.T) {
	summaries := AggregateMetrics(nil)
	assert.Empty(t, summaries)
}

func TestAggregateMetricsZeroDenominators(t *testing.T) {
	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Campanha com gasto mas sem cliques/impressões/instalações: todas as
	// taxas ficam em 0, nunca infinito
	summaries := AggregateMetrics([]*domain.CampaignMetric{
		{CampaignID: 9, Date: d1, Spend: 42},
	})

	summary := summaries[9]
	assert.Equal(t, 0.0, summary.CPI)
	assert.Equal(t, 0.0, summary.CPM)
	assert.Equal(t, 0.0, summary.CPC)
	assert.Equal(t, 0.0, summary.CPA)
	assert.Equal(t, 0.0, summary.CTR)
	assert.Equal(t, 0.0, summary.CVR)
}
