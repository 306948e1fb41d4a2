package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-monitor/internal/session"
	"health-monitor/internal/vitals"
)

func TestRender(t *testing.T) {
	rep := Report{
		ID:          "11111111-2222-3333-4444-555555555555",
		GeneratedAt: time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
		Overall:     StatusAttention,
		Summary:     "Some vitals are outside the healthy range",
		Alerts: []Alert{
			{Parameter: vitals.HeartRate, Value: 110, Status: vitals.StatusHigh, Suggestion: "rest and re-measure"},
		},
		Suggestions: []string{"rest and re-measure"},
		Rejected: []session.Rejection{
			{Parameter: vitals.BloodSugar, Reason: "reading \"abc\" is not a number"},
		},
		Evaluated: 1,
	}

	var buf strings.Builder
	require.NoError(t, Render(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "Final Health Report")
	assert.Contains(t, out, "NEEDS_ATTENTION")
	assert.Contains(t, out, "Heart Rate High: 110 bpm")
	assert.Contains(t, out, "rest and re-measure")
	assert.Contains(t, out, "Blood Sugar: reading \"abc\" is not a number")
	assert.Contains(t, out, rep.ID)
}

func TestRender_HealthyReportHasNoAlertSections(t *testing.T) {
	rep := Report{
		ID:          "id",
		GeneratedAt: time.Now(),
		Overall:     StatusHealthy,
		Summary:     "All evaluated vitals are within the healthy range",
		Evaluated:   7,
	}

	var buf strings.Builder
	require.NoError(t, Render(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "HEALTHY")
	assert.NotContains(t, out, "Alerts:")
	assert.NotContains(t, out, "Rejected inputs:")
}
