package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
)

const (
	campaignsTable = "campaign_info c"

	campaignColumns = "c.id, c.external_id, c.name, c.status, c.create_time, " +
		"c.total_spend, c.total_installs, c.total_clicks, c.total_impressions, c.total_purchases, " +
		"c.start_date, c.end_date, c.cpi, c.cpm, c.cpc, c.cpa, c.ctr, c.cvr"
)

type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	ListCampaignsSorted(ctx context.Context, sortKey domain.CampaignSortKey, order domain.SortOrder) ([]*domain.Campaign, error)
	UpdateRemoteStates(ctx context.Context, states []*domain.RemoteCampaignState) error
	UpdateSummaries(ctx context.Context, summaries []*domain.CampaignSummary) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	return r.list(ctx, "c.id ASC")
}

// ListCampaignsSorted lista as campanhas para o dashboard. Chaves de
// ordenação fora do conjunto permitido caem no padrão total_spend desc
func (r *campaignRepository) ListCampaignsSorted(ctx context.Context, sortKey domain.CampaignSortKey, order domain.SortOrder) ([]*domain.Campaign, error) {
	column, ok := sortKey.Column()
	if !ok {
		column, _ = domain.DefaultSortKey.Column()
		order = domain.SortOrderDesc
	}

	direction := "DESC"
	if order == domain.SortOrderAsc {
		direction = "ASC"
	}

	return r.list(ctx, fmt.Sprintf("%s %s", column, direction))
}

func (r *campaignRepository) list(ctx context.Context, orderBy string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		OrderBy(orderBy).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) scanCampaign(rows *sql.Rows) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var createTime, startDate, endDate sql.NullTime

	err := rows.Scan(
		&campaign.ID,
		&campaign.ExternalID,
		&campaign.Name,
		&campaign.Status,
		&createTime,
		&campaign.TotalSpend,
		&campaign.TotalInstalls,
		&campaign.TotalClicks,
		&campaign.TotalImpressions,
		&campaign.TotalPurchases,
		&startDate,
		&endDate,
		&campaign.CPI,
		&campaign.CPM,
		&campaign.CPC,
		&campaign.CPA,
		&campaign.CTR,
		&campaign.CVR,
	)
	if err != nil {
		return nil, err
	}

	if createTime.Valid {
		campaign.CreateTime = &createTime.Time
	}
	if startDate.Valid {
		campaign.StartDate = &startDate.Time
	}
	if endDate.Valid {
		campaign.EndDate = &endDate.Time
	}

	return campaign, nil
}

// UpdateRemoteStates aplica o status e o create_time retornados pela
// plataforma remota para um lote de campanhas. O lote inteiro é gravado em
// uma única transação: ou todas as campanhas do lote são atualizadas, ou
// nenhuma
func (r *campaignRepository) UpdateRemoteStates(ctx context.Context, states []*domain.RemoteCampaignState) error {
	if len(states) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, state := range states {
			query, args, err := squirrel.
				Update("campaign_info").
				Set("status", state.Status).
				Set("create_time", state.CreateTime).
				Where(squirrel.Eq{"external_id": state.ExternalID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao atualizar status da campanha %s: %w", state.ExternalID, err)
			}
		}

		return nil
	})
}

// UpdateSummaries aplica os totais agregados e as taxas derivadas de todas
// as campanhas em uma única transação (commit atômico por passo do ciclo)
func (r *campaignRepository) UpdateSummaries(ctx context.Context, summaries []*domain.CampaignSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, summary := range summaries {
			var startDate, endDate interface{}
			if summary.StartDate != nil {
				startDate = summary.StartDate.Format("2006-01-02")
			}
			if summary.EndDate != nil {
				endDate = summary.EndDate.Format("2006-01-02")
			}

			query, args, err := squirrel.
				Update("campaign_info").
				Set("total_spend", summary.TotalSpend).
				Set("total_installs", summary.TotalInstalls).
				Set("total_clicks", summary.TotalClicks).
				Set("total_impressions", summary.TotalImpressions).
				Set("total_purchases", summary.TotalPurchases).
				Set("start_date", startDate).
				Set("end_date", endDate).
				Set("cpi", summary.CPI).
				Set("cpm", summary.CPM).
				Set("cpc", summary.CPC).
				Set("cpa", summary.CPA).
				Set("ctr", summary.CTR).
				Set("cvr", summary.CVR).
				Where(squirrel.Eq{"id": summary.CampaignID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao atualizar totais da campanha %d: %w", summary.CampaignID, err)
			}
		}

		return nil
	})
}
