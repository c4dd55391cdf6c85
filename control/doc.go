// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for constvec containers.
//
// Provides concurrent-safe state handling primitives including:
//   - Metrics registry fed from api.StatsSource snapshots
//   - State export, debug hooks, and probe registration
package control
