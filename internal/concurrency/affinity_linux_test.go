//go:build linux

package concurrency

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestPinCurrentThreadLinux(t *testing.T) {
	cpu := PreferredCPU(0)
	if err := PinCurrentThread(cpu); err != nil {
		t.Skipf("affinity unavailable in this environment: %v", err)
	}
	defer UnpinCurrentThread()

	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		t.Fatalf("sched_getaffinity: %v", err)
	}
	if set.Count() != 1 || !set.IsSet(cpu) {
		t.Fatalf("thread not pinned to cpu %d (count=%d)", cpu, set.Count())
	}
}
