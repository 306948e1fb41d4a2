package input

import (
	"fmt"
	"strings"

	"health-monitor/internal/vitals"
)

// Problem describes one batch entry that was skipped instead of parsed.
type Problem struct {
	Entry  string
	Reason string
}

// ParseBatch parses a non-interactive reading list of the form
// "heart_rate=72,bmi=23.4". Entries that are malformed or name an
// unknown parameter are returned as problems and skipped; the rest of
// the list is still parsed. Values stay raw so the evaluator owns
// numeric validation.
func ParseBatch(spec string) ([]Raw, []Problem) {
	var (
		out      []Raw
		problems []Problem
	)

	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, found := strings.Cut(pair, "=")
		if !found {
			problems = append(problems, Problem{Entry: pair, Reason: "not parameter=value"})
			continue
		}

		p := vitals.Parameter(strings.TrimSpace(name))
		if !p.Known() {
			problems = append(problems, Problem{
				Entry:  pair,
				Reason: fmt.Sprintf("unknown parameter %q", strings.TrimSpace(name)),
			})
			continue
		}

		out = append(out, Raw{Parameter: p, Value: strings.TrimSpace(value)})
	}

	return out, problems
}
