package journal

import (
	"sync"
	"time"

	"health-monitor/internal/vitals"
)

// Kind classifies a journal event.
type Kind string

const (
	ReadingRecorded Kind = "reading_recorded"
	AlertRaised     Kind = "alert_raised"
	InputRejected   Kind = "input_rejected"
)

// Event is one entry in the evaluation journal.
type Event struct {
	At        time.Time        `json:"at"`
	Kind      Kind             `json:"kind"`
	Parameter vitals.Parameter `json:"parameter"`
	Message   string           `json:"message"`
}

// Journal keeps a bounded, in-memory trail of evaluation events for the
// current run. The report analyzer inspects it for data-quality signals.
//
// Oldest events are evicted once maxSize is reached (ring behavior).
type Journal struct {
	mu      sync.Mutex
	events  []Event
	maxSize int
}

// New creates a journal that keeps at most maxSize events.
func New(maxSize int) *Journal {
	return &Journal{
		events:  make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

// Append records an event, evicting the oldest one if the journal is full.
func (j *Journal) Append(kind Kind, p vitals.Parameter, msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.events) >= j.maxSize {
		j.events = j.events[1:]
	}

	j.events = append(j.events, Event{
		At:        time.Now(),
		Kind:      kind,
		Parameter: p,
		Message:   msg,
	})
}

// Last returns a copy of the most recent n events, oldest first.
// Modifying the returned slice does not affect the journal.
func (j *Journal) Last(n int) []Event {
	j.mu.Lock()
	defer j.mu.Unlock()

	if n > len(j.events) {
		out := make([]Event, len(j.events))
		copy(out, j.events)
		return out
	}

	start := len(j.events) - n
	out := make([]Event, n)
	copy(out, j.events[start:])
	return out
}

// Count returns how many retained events are of the given kind.
func (j *Journal) Count(kind Kind) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	total := 0
	for _, e := range j.events {
		if e.Kind == kind {
			total++
		}
	}
	return total
}
