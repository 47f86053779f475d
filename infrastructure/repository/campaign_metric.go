package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
)

const (
	campaignMetricsTable = "campaign_metrics m"
)

type CampaignMetricRepository interface {
	ListAll(ctx context.Context) ([]*domain.CampaignMetric, error)
	ListByCampaignID(ctx context.Context, campaignID int64) ([]*domain.CampaignMetric, error)
}

type campaignMetricRepository struct {
	conn *postgres.Connection
}

func NewCampaignMetricRepository(conn *postgres.Connection) CampaignMetricRepository {
	return &campaignMetricRepository{
		conn: conn,
	}
}

// ListAll retorna todas as linhas de métricas ordenadas por campanha, em
// uma única consulta. A agregação acontece em memória, em um único passe —
// nunca uma consulta por campanha
func (r *campaignMetricRepository) ListAll(ctx context.Context) ([]*domain.CampaignMetric, error) {
	return r.list(ctx, nil)
}

func (r *campaignMetricRepository) ListByCampaignID(ctx context.Context, campaignID int64) ([]*domain.CampaignMetric, error) {
	return r.list(ctx, squirrel.Eq{"m.campaign_id": campaignID})
}

func (r *campaignMetricRepository) list(ctx context.Context, where interface{}) ([]*domain.CampaignMetric, error) {
	queryBuilder := squirrel.
		Select("m.id, m.campaign_id, m.date, m.installs, m.spend, m.clicks, m.impressions, m.purchase_count").
		From(campaignMetricsTable).
		OrderBy("m.campaign_id ASC", "m.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
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

	metrics := make([]*domain.CampaignMetric, 0)
	for rows.Next() {
		metric := &domain.CampaignMetric{}

		err := rows.Scan(
			&metric.ID,
			&metric.CampaignID,
			&metric.Date,
			&metric.Installs,
			&metric.Spend,
			&metric.Clicks,
			&metric.Impressions,
			&metric.PurchaseCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}

		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
