// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for container occupancy monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/constvec/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Observe publishes a stats snapshot of src under prefix.
func (mr *MetricsRegistry) Observe(prefix string, src api.StatsSource) {
	st := src.Stats()
	mr.mu.Lock()
	mr.metrics[prefix+".capacity"] = st.Capacity
	mr.metrics[prefix+".len"] = st.Len
	mr.metrics[prefix+".reserved"] = st.Reserved
	mr.metrics[prefix+".rejected"] = st.Rejected
	mr.metrics[prefix+".utilization"] = st.Utilization()
	mr.metrics[prefix+".released"] = st.Released
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last write.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
