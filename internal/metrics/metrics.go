package metrics

import (
	"sync"
	"sync/atomic"
)

// MetricKey is a strongly typed metric identifier.
type MetricKey string

// Metric keys (centralized)
const (
	// Readings
	ReadingsTotal        MetricKey = "readings_total"
	ReadingsInvalidTotal MetricKey = "readings_invalid_total"

	// Alerts
	AlertsTotal         MetricKey = "alerts_total"
	AlertsCriticalTotal MetricKey = "alerts_critical_total"

	// Sessions
	SessionsTotal MetricKey = "sessions_total"
)

// Registry accumulates counters for one run.
type Registry struct {
	mu       sync.RWMutex
	counters map[MetricKey]*int64
}

// NewRegistry creates a metrics registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[MetricKey]*int64),
	}
}

// Inc increments a metric by 1.
func (r *Registry) Inc(key MetricKey) {
	r.Add(key, 1)
}

// Add increments a metric by delta.
func (r *Registry) Add(key MetricKey, delta int64) {
	atomic.AddInt64(r.counter(key), delta)
}

// counter returns the addressable counter for key, lazily creating it
// on first use. Reads take the cheap lock; creation re-checks under the
// write lock so concurrent first touches agree on one counter.
func (r *Registry) counter(key MetricKey) *int64 {
	r.mu.RLock()
	ptr, ok := r.counters[key]
	r.mu.RUnlock()
	if ok {
		return ptr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if ptr, ok = r.counters[key]; ok {
		return ptr
	}
	ptr = new(int64)
	r.counters[key] = ptr
	return ptr
}
