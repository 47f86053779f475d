package domain

import (
	"time"
)

// CycleReport resume a execução de um ciclo de reconciliação
type CycleReport struct {
	CycleID        string        `json:"cycle_id"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"duration"`
	TotalCampaigns int           `json:"total_campaigns"`
	Batches        int           `json:"batches"`
	Refreshed      int           `json:"refreshed"`
	Flagged        int           `json:"flagged"`
	Disabled       int           `json:"disabled"`
	DisableErrors  int           `json:"disable_errors"`
}
