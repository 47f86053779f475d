package tiktok_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok"
	tiktokdomain "github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/campaign-guard-api/infrastructure/integrator/tiktok/mocks"
	"github.com/vfg2006/campaign-guard-api/internal/config"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newIntegrator(t *testing.T, batchSize int) (tiktok.Integrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{
		CampaignSync: config.CampaignSync{
			BatchSize: batchSize,
		},
	}

	return tiktok.New(cfg, client), client
}

func TestFetchCampaignStatesConvertsStatus(t *testing.T) {
	service, client := newIntegrator(t, 10)
	ctx := context.Background()

	client.EXPECT().
		GetAdGroups(ctx, []string{"a", "b", "c", "d"}).
		Return([]tiktokdomain.AdGroup{
			{AdGroupID: "a", OperationStatus: tiktokdomain.OperationStatusEnable, CreateTime: "2024-01-01 00:00:00"},
			{AdGroupID: "b", OperationStatus: tiktokdomain.OperationStatusDisable, CreateTime: "2024-01-01 00:00:00"},
			{AdGroupID: "c", OperationStatus: tiktokdomain.OperationStatusFrozen, CreateTime: "2024-01-01 00:00:00"},
			{AdGroupID: "d", OperationStatus: "SOMETHING_NEW", CreateTime: "2024-01-01 00:00:00"},
		}, nil)

	states, err := service.FetchCampaignStates(ctx, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.Len(t, states, 4)

	assert.Equal(t, domain.CampaignStatusActive, states["a"].Status)
	assert.Equal(t, domain.CampaignStatusDisabled, states["b"].Status)
	assert.Equal(t, domain.CampaignStatusFrozen, states["c"].Status)
	// Vocabulário desconhecido é tratado como "não está rodando"
	assert.Equal(t, domain.CampaignStatusDisabled, states["d"].Status)
}

func TestFetchCampaignStatesConvertsCreateTime(t *testing.T) {
	service, client := newIntegrator(t, 10)
	ctx := context.Background()

	client.EXPECT().
		GetAdGroups(ctx, []string{"a"}).
		Return([]tiktokdomain.AdGroup{
			{AdGroupID: "a", OperationStatus: tiktokdomain.OperationStatusEnable, CreateTime: "2024-01-01 00:00:00"},
		}, nil)

	states, err := service.FetchCampaignStates(ctx, []string{"a"})
	require.NoError(t, err)

	// UTC + 8h de deslocamento fixo
	expected := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.True(t, states["a"].CreateTime.Equal(expected))
}

func TestFetchCampaignStatesInvalidCreateTime(t *testing.T) {
	service, client := newIntegrator(t, 10)
	ctx := context.Background()

	client.EXPECT().
		GetAdGroups(ctx, []string{"a"}).
		Return([]tiktokdomain.AdGroup{
			{AdGroupID: "a", OperationStatus: tiktokdomain.OperationStatusEnable, CreateTime: "01/01/2024"},
		}, nil)

	_, err := service.FetchCampaignStates(ctx, []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create_time")
}

func TestFetchCampaignStatesBatching(t *testing.T) {
	service, client := newIntegrator(t, 10)
	ctx := context.Background()

	// 25 ids com lote de 10: três chamadas, 10 + 10 + 5
	ids := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		ids = append(ids, fmt.Sprintf("id-%02d", i))
	}

	adGroupsFor := func(batch []string) []tiktokdomain.AdGroup {
		adGroups := make([]tiktokdomain.AdGroup, 0, len(batch))
		for _, id := range batch {
			adGroups = append(adGroups, tiktokdomain.AdGroup{
				AdGroupID:       id,
				OperationStatus: tiktokdomain.OperationStatusEnable,
				CreateTime:      "2024-01-01 00:00:00",
			})
		}
		return adGroups
	}

	client.EXPECT().GetAdGroups(ctx, ids[0:10]).Return(adGroupsFor(ids[0:10]), nil)
	client.EXPECT().GetAdGroups(ctx, ids[10:20]).Return(adGroupsFor(ids[10:20]), nil)
	client.EXPECT().GetAdGroups(ctx, ids[20:25]).Return(adGroupsFor(ids[20:25]), nil)

	states, err := service.FetchCampaignStates(ctx, ids)
	require.NoError(t, err)
	require.Len(t, states, 25)

	for _, id := range ids {
		assert.Contains(t, states, id)
	}
}

func TestFetchCampaignStatesBatchFailure(t *testing.T) {
	service, client := newIntegrator(t, 10)
	ctx := context.Background()

	ids := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		ids = append(ids, fmt.Sprintf("id-%02d", i))
	}

	client.EXPECT().GetAdGroups(ctx, ids[0:10]).Return([]tiktokdomain.AdGroup{}, nil)
	client.EXPECT().GetAdGroups(ctx, ids[10:15]).Return(nil, errors.New("503 da API"))

	_, err := service.FetchCampaignStates(ctx, ids)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lote 2 de 2")
}

func TestDisableCampaign(t *testing.T) {
	tests := []struct {
		name     string
		response *tiktokdomain.StatusUpdateResponse
		err      error
		expected bool
	}{
		{
			name:     "sucesso",
			response: &tiktokdomain.StatusUpdateResponse{Code: 0, Message: "OK"},
			expected: true,
		},
		{
			name:     "code de rejeição",
			response: &tiktokdomain.StatusUpdateResponse{Code: 40002, Message: "OK"},
			expected: false,
		},
		{
			name:     "message inesperada",
			response: &tiktokdomain.StatusUpdateResponse{Code: 0, Message: "Partial failure"},
			expected: false,
		},
		{
			name:     "erro de transporte",
			err:      errors.New("connection reset"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := newIntegrator(t, 10)
			ctx := context.Background()

			client.EXPECT().
				UpdateAdGroupStatus(ctx, []string{"ext-1"}, tiktokdomain.OperationStatusDisable).
				Return(tt.response, tt.err)

			assert.Equal(t, tt.expected, service.DisableCampaign(ctx, "ext-1"))
		})
	}
}
