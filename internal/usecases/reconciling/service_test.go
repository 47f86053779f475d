package reconciling_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tiktokmocks "github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok/mocks"
	repomocks "github.com/vfg2006/campaign-guard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-guard-api/internal/config"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
	"github.com/vfg2006/campaign-guard-api/internal/usecases/reconciling"
	"go.uber.org/mock/gomock"
)

type cycleFixture struct {
	campaignRepo *repomocks.MockCampaignRepository
	metricRepo   *repomocks.MockCampaignMetricRepository
	integrator   *tiktokmocks.MockIntegrator
	service      reconciling.Reconciler
}

func newCycleFixture(t *testing.T) *cycleFixture {
	ctrl := gomock.NewController(t)

	campaignRepo := repomocks.NewMockCampaignRepository(ctrl)
	metricRepo := repomocks.NewMockCampaignMetricRepository(ctrl)
	integrator := tiktokmocks.NewMockIntegrator(ctrl)

	cfg := &config.Config{
		CampaignSync: config.CampaignSync{
			BatchSize: 10,
		},
		Policy: config.Policy{
			MaxSpendNoInstalls: 2.0,
			MaxCPI:             2.0,
		},
	}

	return &cycleFixture{
		campaignRepo: campaignRepo,
		metricRepo:   metricRepo,
		integrator:   integrator,
		service:      reconciling.NewService(campaignRepo, metricRepo, integrator, cfg),
	}
}

func remoteState(externalID string, status domain.CampaignStatus) *domain.RemoteCampaignState {
	return &domain.RemoteCampaignState{
		ExternalID: externalID,
		Status:     status,
		CreateTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestRunCycleDisablesCampaignOutOfPolicy(t *testing.T) {
	f := newCycleFixture(t)
	ctx := context.Background()

	campaigns := []*domain.Campaign{
		{ID: 1, ExternalID: "ext-1", Name: "Campanha A"},
	}

	f.campaignRepo.EXPECT().ListCampaigns(ctx).Return(campaigns, nil)

	f.integrator.EXPECT().
		FetchCampaignStates(ctx, []string{"ext-1"}).
		Return(map[string]*domain.RemoteCampaignState{
			"ext-1": remoteState("ext-1", domain.CampaignStatusActive),
		}, nil)

	f.campaignRepo.EXPECT().
		UpdateRemoteStates(ctx, gomock.Len(1)).
		Return(nil)

	// Gasto acima do limite e zero instalações
	f.metricRepo.EXPECT().ListAll(ctx).Return([]*domain.CampaignMetric{
		{CampaignID: 1, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Spend: 3.0},
	}, nil)

	f.campaignRepo.EXPECT().
		UpdateSummaries(ctx, gomock.Len(1)).
		Return(nil)

	f.integrator.EXPECT().DisableCampaign(ctx, "ext-1").Return(true)

	report, err := f.service.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalCampaigns)
	assert.Equal(t, 1, report.Batches)
	assert.Equal(t, 1, report.Refreshed)
	assert.Equal(t, 1, report.Flagged)
	assert.Equal(t, 1, report.Disabled)
	assert.Equal(t, 0, report.DisableErrors)
}

func TestRunCycleSkipsFrozenCampaign(t *testing.T) {
	f := newCycleFixture(t)
	ctx := context.Background()

	campaigns := []*domain.Campaign{
		{ID: 1, ExternalID: "ext-1", Name: "Campanha congelada", Status: domain.CampaignStatusActive},
	}

	f.campaignRepo.EXPECT().ListCampaigns(ctx).Return(campaigns, nil)

	// A plataforma reporta FROZEN: o status é persistido mas a campanha sai
	// do alcance da política, mesmo violando as regras de gasto
	f.integrator.EXPECT().
		FetchCampaignStates(ctx, []string{"ext-1"}).
		Return(map[string]*domain.RemoteCampaignState{
			"ext-1": remoteState("ext-1", domain.CampaignStatusFrozen),
		}, nil)

	f.campaignRepo.EXPECT().
		UpdateRemoteStates(ctx, gomock.Cond(func(x any) bool {
			states, ok := x.([]*domain.RemoteCampaignState)
			return ok && len(states) == 1 && states[0].Status == domain.CampaignStatusFrozen
		})).
		Return(nil)

	f.metricRepo.EXPECT().ListAll(ctx).Return([]*domain.CampaignMetric{
		{CampaignID: 1, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Spend: 50.0},
	}, nil)

	f.campaignRepo.EXPECT().
		UpdateSummaries(ctx, gomock.Len(1)).
		Return(nil)

	// Nenhuma expectativa de DisableCampaign: chamar seria falha do teste

	report, err := f.service.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Refreshed)
	assert.Equal(t, 0, report.Flagged)
	assert.Equal(t, 0, report.Disabled)
	assert.Equal(t, domain.CampaignStatusFrozen, campaigns[0].Status)
}

func TestRunCycleAbortsWhenBatchFetchFails(t *testing.T) {
	f := newCycleFixture(t)
	ctx := context.Background()

	campaigns := []*domain.Campaign{
		{ID: 1, ExternalID: "ext-1"},
		{ID: 2, ExternalID: "ext-2"},
	}

	f.campaignRepo.EXPECT().ListCampaigns(ctx).Return(campaigns, nil)

	f.integrator.EXPECT().
		FetchCampaignStates(ctx, []string{"ext-1", "ext-2"}).
		Return(nil, errors.New("timeout na API"))

	// Nenhuma persistência nem desativação depois da falha do lote

	report, err := f.service.RunCycle(ctx)
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "lote 1 de 1")
}

func TestRunCycleIsolatesDisableFailures(t *testing.T) {
	f := newCycleFixture(t)
	ctx := context.Background()

	campaigns := []*domain.Campaign{
		{ID: 1, ExternalID: "ext-1", Name: "Campanha A"},
		{ID: 2, ExternalID: "ext-2", Name: "Campanha B"},
	}

	f.campaignRepo.EXPECT().ListCampaigns(ctx).Return(campaigns, nil)

	f.integrator.EXPECT().
		FetchCampaignStates(ctx, []string{"ext-1", "ext-2"}).
		Return(map[string]*domain.RemoteCampaignState{
			"ext-1": remoteState("ext-1", domain.CampaignStatusActive),
			"ext-2": remoteState("ext-2", domain.CampaignStatusActive),
		}, nil)

	f.campaignRepo.EXPECT().
		UpdateRemoteStates(ctx, gomock.Len(2)).
		Return(nil)

	// As duas campanhas violam a regra de gasto sem instalações
	f.metricRepo.EXPECT().ListAll(ctx).Return([]*domain.CampaignMetric{
		{CampaignID: 1, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Spend: 5.0},
		{CampaignID: 2, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Spend: 7.0},
	}, nil)

	f.campaignRepo.EXPECT().
		UpdateSummaries(ctx, gomock.Len(2)).
		Return(nil)

	// A falha da primeira desativação não impede a segunda
	f.integrator.EXPECT().DisableCampaign(ctx, "ext-1").Return(false)
	f.integrator.EXPECT().DisableCampaign(ctx, "ext-2").Return(true)

	report, err := f.service.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Flagged)
	assert.Equal(t, 1, report.Disabled)
	assert.Equal(t, 1, report.DisableErrors)
}

func TestRunCycleSplitsBatches(t *testing.T) {
	f := newCycleFixture(t)
	ctx := context.Background()

	// 12 campanhas com lote de 10: duas chamadas, 10 + 2
	campaigns := make([]*domain.Campaign, 0, 12)
	firstBatch := make([]string, 0, 10)
	secondBatch := make([]string, 0, 2)
	for i := 1; i <= 12; i++ {
		externalID := "ext-" + string(rune('a'+i-1))
		campaigns = append(campaigns, &domain.Campaign{ID: int64(i), ExternalID: externalID})
		if i <= 10 {
			firstBatch = append(firstBatch, externalID)
		} else {
			secondBatch = append(secondBatch, externalID)
		}
	}

	f.campaignRepo.EXPECT().ListCampaigns(ctx).Return(campaigns, nil)

	f.integrator.EXPECT().
		FetchCampaignStates(ctx, firstBatch).
		Return(map[string]*domain.RemoteCampaignState{}, nil)
	f.integrator.EXPECT().
		FetchCampaignStates(ctx, secondBatch).
		Return(map[string]*domain.RemoteCampaignState{}, nil)

	f.campaignRepo.EXPECT().UpdateRemoteStates(ctx, gomock.Len(0)).Return(nil).Times(2)

	f.metricRepo.EXPECT().ListAll(ctx).Return(nil, nil)
	f.campaignRepo.EXPECT().UpdateSummaries(ctx, gomock.Len(12)).Return(nil)

	report, err := f.service.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Batches)
	assert.Equal(t, 0, report.Refreshed)
}

func TestRunCycleIgnoresUntouchedCampaigns(t *testing.T) {
	f := newCycleFixture(t)
	ctx := context.Background()

	// ext-2 não aparece na resposta remota: o estado local fica como está e
	// a política não a avalia neste ciclo, mesmo com gasto violando a regra
	campaigns := []*domain.Campaign{
		{ID: 1, ExternalID: "ext-1", Status: domain.CampaignStatusActive},
		{ID: 2, ExternalID: "ext-2", Status: domain.CampaignStatusActive},
	}

	f.campaignRepo.EXPECT().ListCampaigns(ctx).Return(campaigns, nil)

	f.integrator.EXPECT().
		FetchCampaignStates(ctx, []string{"ext-1", "ext-2"}).
		Return(map[string]*domain.RemoteCampaignState{
			"ext-1": remoteState("ext-1", domain.CampaignStatusActive),
		}, nil)

	f.campaignRepo.EXPECT().UpdateRemoteStates(ctx, gomock.Len(1)).Return(nil)

	f.metricRepo.EXPECT().ListAll(ctx).Return([]*domain.CampaignMetric{
		{CampaignID: 2, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Spend: 99.0},
	}, nil)

	f.campaignRepo.EXPECT().UpdateSummaries(ctx, gomock.Len(2)).Return(nil)

	report, err := f.service.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Refreshed)
	assert.Equal(t, 0, report.Flagged)
	assert.Equal(t, 0, report.Disabled)
}

func TestRunCycleWithoutCampaigns(t *testing.T) {
	f := newCycleFixture(t)
	ctx := context.Background()

	f.campaignRepo.EXPECT().ListCampaigns(ctx).Return(nil, nil)

	report, err := f.service.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalCampaigns)
	assert.Equal(t, 0, report.Batches)
	assert.NotEmpty(t, report.CycleID)
}
