//go:build !linux
// +build !linux

// File: internal/concurrency/affinity_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without thread affinity control.

package concurrency

func platformPinCurrentThread(cpuID int) error {
	return ErrAffinityNotSupported
}

func platformUnpinCurrentThread() {}

func platformAllowedCPUs() []int { return nil }
