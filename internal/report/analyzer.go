package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"health-monitor/internal/journal"
	"health-monitor/internal/session"
	"health-monitor/internal/vitals"
)

// Analyzer converts a finished session + journal into a health report.
type Analyzer struct {
	session *session.Session
	journal *journal.Journal
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(sess *session.Session, jrnl *journal.Journal) *Analyzer {
	return &Analyzer{
		session: sess,
		journal: jrnl,
	}
}

// Analyze walks the session results in canonical order and builds the
// final report. Overall status escalates from per-reading severity:
// any warning lifts HEALTHY to NEEDS_ATTENTION, any critical reading
// makes the whole report CRITICAL.
func (a *Analyzer) Analyze() Report {
	var (
		alerts      = []Alert{}
		suggestions = []string{}
		overall     = StatusHealthy
	)

	results := a.session.Results()

	for _, res := range results {
		if !res.Abnormal() {
			continue
		}

		alerts = append(alerts, Alert{
			Parameter:  res.Parameter,
			Value:      res.Value,
			Status:     res.Status,
			Suggestion: res.Suggestion,
		})
		suggestions = append(suggestions, res.Suggestion)

		// Escalate status
		if res.Severity == vitals.SeverityCritical {
			overall = StatusCritical
		} else if overall == StatusHealthy {
			overall = StatusAttention
		}
	}

	rejected := a.session.Rejected()

	// Journal-based data-quality signal: rejected inputs mean the report
	// is built from fewer readings than were attempted.
	if n := a.journal.Count(journal.InputRejected); n > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"%d reading(s) could not be evaluated; re-enter them with numeric values", n))
	}

	summary := summaryFor(overall, len(results), len(rejected))

	return Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Overall:     overall,
		Summary:     summary,
		Alerts:      alerts,
		Suggestions: suggestions,
		Rejected:    rejected,
		Evaluated:   len(results),
	}
}

func summaryFor(overall OverallStatus, evaluated, rejected int) string {
	switch {
	case evaluated == 0 && rejected > 0:
		return "No readings could be evaluated"
	case evaluated == 0:
		return "No readings were provided"
	case overall == StatusHealthy:
		return "All evaluated vitals are within the healthy range"
	case overall == StatusCritical:
		return "One or more vitals are in a critical range"
	default:
		return "Some vitals are outside the healthy range"
	}
}
