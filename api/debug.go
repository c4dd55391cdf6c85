// Package api
// Author: momentics
//
// Live debug support: containers publish their StatsSource snapshots as
// named probes so a running process can dump vector state on demand.

package api

// Debug exposes runtime introspection for registered vectors and the host.
type Debug interface {
	// DumpState evaluates every probe and returns the results by name.
	DumpState() map[string]any

	// RegisterProbe adds or replaces the probe stored under name.
	RegisterProbe(name string, fn func() any)
}
