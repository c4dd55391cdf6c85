// File: internal/concurrency/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-platform CPU affinity management with runtime detection.

package concurrency

import (
	"runtime"
)

// PinCurrentThread locks the calling goroutine to its OS thread and binds
// that thread to cpuID. On failure the goroutine is unlocked again.
func PinCurrentThread(cpuID int) error {
	if cpuID < 0 {
		return ErrInvalidCPU
	}
	runtime.LockOSThread()
	if err := platformPinCurrentThread(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// UnpinCurrentThread restores the process affinity mask on the current
// thread and unlocks the goroutine from it.
func UnpinCurrentThread() {
	platformUnpinCurrentThread()
	runtime.UnlockOSThread()
}

// AllowedCPUs lists the CPU indices the process may run on.
// Falls back to 0..NumCPUs()-1 when the platform cannot report a mask.
func AllowedCPUs() []int {
	if cpus := platformAllowedCPUs(); len(cpus) > 0 {
		return cpus
	}
	cpus := make([]int, NumCPUs())
	for i := range cpus {
		cpus[i] = i
	}
	return cpus
}

// PreferredCPU spreads workers round-robin over the allowed CPUs.
func PreferredCPU(worker int) int {
	cpus := AllowedCPUs()
	if worker < 0 {
		worker = -worker
	}
	return cpus[worker%len(cpus)]
}

// NumCPUs returns the number of logical CPUs.
func NumCPUs() int {
	return runtime.NumCPU()
}
