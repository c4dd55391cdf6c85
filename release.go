// File: release.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Teardown path: seal reservations, drain in-flight publishes, destroy the
// published prefix exactly once and drop the backing block.

package constvec

import (
	"go.uber.org/zap"

	"github.com/momentics/constvec/api"
	"github.com/momentics/constvec/internal/concurrency"
)

// Release destroys exactly the published elements, in index order, and
// releases the backing storage. Slots that were never published are never
// touched. Further calls are no-ops.
//
// After Release the vector is empty and permanently full: Len is 0, Push
// fails with ErrCapacityExceeded and Get with ErrIndexOutOfBounds.
// Pointers obtained from Get must not be used once Release has begun.
func (v *ConstVec[T]) Release() {
	if !v.released.CompareAndSwap(false, true) {
		return
	}
	n := v.seal()

	// Pushers that reserved before the seal are mid-write; their publish
	// is bounded, so wait for length to catch up with the reservations.
	var bo concurrency.Backoff
	for v.length.Load() < n {
		bo.Spin()
	}

	// A publisher that lost its last CAS may still be looping; a sealed
	// length is beyond capacity for it and reads as empty for everyone else.
	b := v.storage.Load()
	v.length.Store(sealed)
	v.destroy(b.slots[:n])
	v.storage.Store(nil)

	Logger().Debug("constvec released",
		zap.Uint64("capacity", v.capacity),
		zap.Uint64("destroyed", n),
		zap.Uint64("rejected", v.rejected.Load()),
		zap.Int("drain_spins", bo.Attempts()),
	)
}

// seal stops further reservations and returns how many slots were reserved.
func (v *ConstVec[T]) seal() uint64 {
	for {
		r := v.reserved.Load()
		if v.reserved.CompareAndSwap(r, r|sealed) {
			return r &^ sealed
		}
	}
}

// destroy runs teardown on every slot and zeroes it so the GC can reclaim
// anything the element referenced.
func (v *ConstVec[T]) destroy(slots []T) {
	var zero T
	for i := range slots {
		if v.teardown != nil {
			v.teardown(&slots[i])
		} else if d, ok := any(&slots[i]).(api.Destroyer); ok {
			d.Destroy()
		} else if d, ok := any(slots[i]).(api.Destroyer); ok {
			d.Destroy()
		}
		slots[i] = zero
	}
}
