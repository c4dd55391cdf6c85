//go:build linux
// +build linux

// File: internal/concurrency/affinity_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux affinity via sched_setaffinity(2). Pure Go, no cgo or libnuma needed.

package concurrency

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// cpuSetSize mirrors CPU_SETSIZE from <sched.h>.
const cpuSetSize = 1024

var (
	processMaskOnce sync.Once
	processMask     unix.CPUSet
	processMaskErr  error
)

// initialMask captures the affinity mask the process started with.
func initialMask() (unix.CPUSet, error) {
	processMaskOnce.Do(func() {
		processMaskErr = unix.SchedGetaffinity(0, &processMask)
	})
	return processMask, processMaskErr
}

func platformPinCurrentThread(cpuID int) error {
	if cpuID >= cpuSetSize {
		return fmt.Errorf("affinity: cpu %d: %w", cpuID, ErrInvalidCPU)
	}
	if _, err := initialMask(); err != nil {
		return fmt.Errorf("affinity: sched_getaffinity: %w", err)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity cpu %d: %w", cpuID, err)
	}
	return nil
}

func platformUnpinCurrentThread() {
	mask, err := initialMask()
	if err != nil {
		return
	}
	_ = unix.SchedSetaffinity(0, &mask)
}

func platformAllowedCPUs() []int {
	mask, err := initialMask()
	if err != nil {
		return nil
	}
	cpus := make([]int, 0, mask.Count())
	for i := 0; i < cpuSetSize; i++ {
		if mask.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	return cpus
}
