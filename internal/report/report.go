package report

import (
	"time"

	"health-monitor/internal/session"
	"health-monitor/internal/vitals"
)

// OverallStatus represents the overall outcome of a run.
type OverallStatus string

const (
	StatusHealthy   OverallStatus = "HEALTHY"
	StatusAttention OverallStatus = "NEEDS_ATTENTION"
	StatusCritical  OverallStatus = "CRITICAL"
)

// Alert is one abnormal reading surfaced in the report.
type Alert struct {
	Parameter  vitals.Parameter `json:"parameter"`
	Value      float64          `json:"value"`
	Status     vitals.Status    `json:"status"`
	Suggestion string           `json:"suggestion"`
}

// Report is the end-of-run health summary.
type Report struct {
	ID          string              `json:"id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Overall     OverallStatus       `json:"overall_status"`
	Summary     string              `json:"summary"`
	Alerts      []Alert             `json:"alerts"`
	Suggestions []string            `json:"suggestions"`
	Rejected    []session.Rejection `json:"rejected,omitempty"`
	Evaluated   int                 `json:"evaluated"`
}
