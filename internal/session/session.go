package session

import (
	"sync"

	"health-monitor/internal/metrics"
	"health-monitor/internal/vitals"
)

// Session collects the outcomes of one evaluation run.
//
// Design principles:
//   - Safe for concurrent access using RWMutex
//   - Keeps the latest result per parameter (re-entering a parameter
//     overwrites the previous reading)
//   - Rejected inputs are tracked separately from health results, so the
//     report can distinguish "abnormal" from "could not evaluate"
type Session struct {
	mu       sync.RWMutex
	results  map[vitals.Parameter]vitals.Result
	rejected map[vitals.Parameter]string
	metrics  *metrics.Registry
}

// New initializes an empty session.
func New(reg *metrics.Registry) *Session {
	reg.Inc(metrics.SessionsTotal)
	return &Session{
		results:  make(map[vitals.Parameter]vitals.Result),
		rejected: make(map[vitals.Parameter]string),
		metrics:  reg,
	}
}

// Record stores an evaluation result, replacing any earlier result or
// rejection for the same parameter.
func (s *Session) Record(res vitals.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[res.Parameter] = res
	delete(s.rejected, res.Parameter)
}

// Reject marks a parameter as having received input that could not be
// evaluated. A later valid reading for the same parameter clears it.
func (s *Session) Reject(p vitals.Parameter, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[p]; ok {
		// A valid reading already exists; keep it.
		return
	}
	s.rejected[p] = reason
}

// Results returns recorded results in the canonical parameter order.
func (s *Session) Results() []vitals.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]vitals.Result, 0, len(s.results))
	for _, p := range vitals.Order {
		if res, ok := s.results[p]; ok {
			out = append(out, res)
		}
	}
	return out
}

// Rejected returns rejected parameters and reasons in canonical order.
func (s *Session) Rejected() []Rejection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Rejection, 0, len(s.rejected))
	for _, p := range vitals.Order {
		if reason, ok := s.rejected[p]; ok {
			out = append(out, Rejection{Parameter: p, Reason: reason})
		}
	}
	return out
}

// Rejection describes one input that failed validation.
type Rejection struct {
	Parameter vitals.Parameter `json:"parameter"`
	Reason    string           `json:"reason"`
}

// Len returns the number of recorded results.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
