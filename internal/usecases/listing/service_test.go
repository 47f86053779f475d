package listing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/campaign-guard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
	"github.com/vfg2006/campaign-guard-api/internal/usecases/listing"
	"go.uber.org/mock/gomock"
)

func TestListCampaignsSortParams(t *testing.T) {
	tests := []struct {
		name          string
		sortParam     string
		orderParam    string
		expectedSort  domain.CampaignSortKey
		expectedOrder domain.SortOrder
	}{
		{
			name:          "chave e direção válidas",
			sortParam:     "cpi",
			orderParam:    "asc",
			expectedSort:  domain.SortByCPI,
			expectedOrder: domain.SortOrderAsc,
		},
		{
			name:          "sem parâmetros usa o padrão",
			expectedSort:  domain.DefaultSortKey,
			expectedOrder: domain.SortOrderDesc,
		},
		{
			name:          "chave desconhecida cai no padrão",
			sortParam:     "lucro",
			orderParam:    "asc",
			expectedSort:  domain.DefaultSortKey,
			expectedOrder: domain.SortOrderAsc,
		},
		{
			name:          "direção inválida cai em desc",
			sortParam:     "name",
			orderParam:    "sideways",
			expectedSort:  domain.SortByName,
			expectedOrder: domain.SortOrderDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			campaignRepo := repomocks.NewMockCampaignRepository(ctrl)
			service := listing.NewService(campaignRepo)

			ctx := context.Background()
			expected := []*domain.Campaign{{ID: 1, Name: "Campanha A", Status: domain.CampaignStatusActive}}

			campaignRepo.EXPECT().
				ListCampaignsSorted(ctx, tt.expectedSort, tt.expectedOrder).
				Return(expected, nil)

			campaigns, err := service.ListCampaigns(ctx, tt.sortParam, tt.orderParam)
			require.NoError(t, err)
			require.Len(t, campaigns, 1)
			assert.Equal(t, int64(1), campaigns[0].ID)
			assert.Equal(t, "Ativa", campaigns[0].StatusText)
		})
	}
}
