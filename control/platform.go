// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform debug probe integrations.

package control

import (
	"github.com/momentics/constvec/internal/concurrency"
)

// RegisterPlatformProbes sets CPU topology probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return concurrency.NumCPUs()
	})
	dp.RegisterProbe("platform.allowed_cpus", func() any {
		return len(concurrency.AllowedCPUs())
	})
}
