package listing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
)

// Lister expõe a listagem de campanhas do dashboard
type Lister interface {
	ListCampaigns(ctx context.Context, sortParam, orderParam string) ([]*domain.Campaign, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
}

func NewService(campaignRepo repository.CampaignRepository) Lister {
	return &Service{
		campaignRepo: campaignRepo,
	}
}

// ListCampaigns retorna todas as campanhas ordenadas pelos parâmetros da
// requisição. Chave de ordenação fora do conjunto permitido ou direção
// inválida caem no padrão (total_spend desc) em vez de virar erro — a
// listagem do dashboard nunca quebra por query string malformada
func (s *Service) ListCampaigns(ctx context.Context, sortParam, orderParam string) ([]*domain.Campaign, error) {
	sortKey := domain.CampaignSortKey(sortParam)
	if _, ok := sortKey.Column(); !ok {
		if sortParam != "" {
			logrus.WithField("sort", sortParam).Warn("Chave de ordenação desconhecida. Usando o padrão.")
		}
		sortKey = domain.DefaultSortKey
	}

	order := domain.SortOrder(orderParam)
	if order != domain.SortOrderAsc && order != domain.SortOrderDesc {
		order = domain.SortOrderDesc
	}

	campaigns, err := s.campaignRepo.ListCampaignsSorted(ctx, sortKey, order)
	if err != nil {
		return nil, err
	}

	for _, campaign := range campaigns {
		campaign.StatusText = campaign.Status.Text()
	}

	return campaigns, nil
}
