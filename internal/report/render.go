package report

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the report as plain text, one section per concern.
func Render(w io.Writer, rep Report) error {
	var b strings.Builder

	b.WriteString("\nFinal Health Report\n")
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "Report %s generated %s\n", rep.ID, rep.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Overall: %s (%s)\n", rep.Overall, rep.Summary)

	if len(rep.Alerts) > 0 {
		b.WriteString("\nAlerts:\n")
		for _, a := range rep.Alerts {
			unit := a.Parameter.Unit()
			if unit != "" {
				unit = " " + unit
			}
			fmt.Fprintf(&b, "  %s %s: %g%s\n", a.Parameter.Label(), a.Status, a.Value, unit)
		}
	}

	if len(rep.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, s := range rep.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	if len(rep.Rejected) > 0 {
		b.WriteString("\nRejected inputs:\n")
		for _, r := range rep.Rejected {
			fmt.Fprintf(&b, "  %s: %s\n", r.Parameter.Label(), r.Reason)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
