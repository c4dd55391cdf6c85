// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Accounting snapshot shared by containers and the control layer.

package api

// VecStats aggregates occupancy counters of an append-only container.
type VecStats struct {
	Capacity int64
	Len      int64
	Reserved int64
	Rejected int64
	Released bool
}

// Utilization returns Len/Capacity, or 1 for a zero-capacity container.
func (s VecStats) Utilization() float64 {
	if s.Capacity == 0 {
		return 1
	}
	return float64(s.Len) / float64(s.Capacity)
}

// StatsSource exposes accounting metrics for observability.
type StatsSource interface {
	Stats() VecStats
}
