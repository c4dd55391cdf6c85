// File: constvec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity append-only vector with push through a shared handle.
// Reservation and publication are separate atomic steps; hot counters are
// padded to keep pushers and readers off each other's cache lines.

package constvec

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/constvec/api"
	"github.com/momentics/constvec/internal/concurrency"
)

// Ensure compile-time interface compliance.
var (
	_ api.AppendOnly[any] = (*ConstVec[any])(nil)
	_ api.StatsSource     = (*ConstVec[any])(nil)
)

// sealed marks the reservation counter once Release has started, and the
// length counter once the published prefix has been destroyed.
const sealed = uint64(1) << 63

// block is the single backing allocation of a ConstVec.
// Neither slice is ever resliced or reallocated.
type block[T any] struct {
	slots []T
	ready []atomic.Bool
}

// ConstVec is a fixed-capacity, append-only vector. Any number of
// goroutines may Push, Get, Len and iterate concurrently. A pointer
// returned by Get stays valid and unchanged until Release.
type ConstVec[T any] struct {
	capacity uint64
	teardown func(*T)
	storage  atomic.Pointer[block[T]]

	_        cpu.CacheLinePad
	reserved atomic.Uint64 // next free slot, optionally tagged with sealed
	_        cpu.CacheLinePad
	length   atomic.Uint64 // published prefix; the only bound readers consult, sealed after Release
	_        cpu.CacheLinePad
	rejected atomic.Uint64
	released atomic.Bool
}

// New allocates a ConstVec holding at most capacity elements.
// No element is initialized. Panics if capacity is negative.
func New[T any](capacity int, opts ...Option[T]) *ConstVec[T] {
	if capacity < 0 {
		panic("constvec: capacity must be non-negative")
	}
	v := &ConstVec[T]{capacity: uint64(capacity)}
	v.storage.Store(&block[T]{
		slots: make([]T, capacity),
		ready: make([]atomic.Bool, capacity),
	})
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Push appends value. It fails with ErrCapacityExceeded, leaving the vector
// untouched, when every slot is taken. The value is not retained on failure.
func (v *ConstVec[T]) Push(value T) error {
	_, err := v.PushIndex(value)
	return err
}

// PushIndex is Push that also reports the slot the value landed in.
func (v *ConstVec[T]) PushIndex(value T) (int, error) {
	idx, ok := v.reserve()
	if !ok {
		v.rejected.Add(1)
		return -1, capacityExceeded(v.capacity)
	}
	// A successful reservation precedes any Release seal, so Release waits
	// for this publish before dropping storage.
	b := v.storage.Load()
	b.slots[idx] = value
	b.ready[idx].Store(true)
	v.publish(b)
	return int(idx), nil
}

// reserve claims the next slot index, or reports false when full or sealed.
func (v *ConstVec[T]) reserve() (uint64, bool) {
	var bo concurrency.Backoff
	for {
		r := v.reserved.Load()
		if r&sealed != 0 || r >= v.capacity {
			return 0, false
		}
		if v.reserved.CompareAndSwap(r, r+1) {
			return r, true
		}
		bo.Spin()
	}
}

// publish advances length over every contiguous ready slot. Each pusher
// stores its ready flag before loading length, and each advancer bumps
// length before loading the next flag, so with sequentially consistent
// atomics a ready slot is always picked up by one side or the other.
func (v *ConstVec[T]) publish(b *block[T]) {
	for {
		l := v.length.Load()
		if l >= v.capacity || !b.ready[l].Load() {
			return
		}
		v.length.CompareAndSwap(l, l+1)
	}
}

// published returns the readable prefix length. A sealed length reads as 0;
// publishers that lag behind Release see it as beyond capacity and stop.
func (v *ConstVec[T]) published() uint64 {
	n := v.length.Load()
	if n&sealed != 0 {
		return 0
	}
	return n
}

// Get returns a pointer to the element at index without copying.
// Fails with ErrIndexOutOfBounds unless 0 <= index < Len().
func (v *ConstVec[T]) Get(index int) (*T, error) {
	n := v.published()
	if index < 0 || uint64(index) >= n {
		return nil, indexOutOfBounds(index, n)
	}
	b := v.storage.Load()
	if b == nil {
		return nil, indexOutOfBounds(index, 0)
	}
	return &b.slots[index], nil
}

// At returns a copy of the element at index.
func (v *ConstVec[T]) At(index int) (T, error) {
	p, err := v.Get(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Len returns the number of published elements. Under concurrent pushes the
// value may be stale as soon as it is returned, but every index below it
// stays readable.
func (v *ConstVec[T]) Len() int {
	return int(v.published())
}

// Cap returns the fixed capacity.
func (v *ConstVec[T]) Cap() int {
	return int(v.capacity)
}

// IsFull reports whether Push can no longer succeed: every slot is reserved
// or the vector has been released.
func (v *ConstVec[T]) IsFull() bool {
	r := v.reserved.Load()
	return r&sealed != 0 || r >= v.capacity
}

// IsEmpty reports whether no element is published.
func (v *ConstVec[T]) IsEmpty() bool {
	return v.published() == 0
}

// Slice returns the published prefix as a slice sharing the backing storage.
// Its capacity equals its length, so appending to it always copies and can
// never reach unpublished slots. Elements must not be modified through it.
func (v *ConstVec[T]) Slice() []T {
	n := v.published()
	b := v.storage.Load()
	if b == nil {
		return nil
	}
	return b.slots[:n:n]
}

// Stats returns an accounting snapshot.
func (v *ConstVec[T]) Stats() api.VecStats {
	return api.VecStats{
		Capacity: int64(v.capacity),
		Len:      int64(v.published()),
		Reserved: int64(v.reserved.Load() &^ sealed),
		Rejected: int64(v.rejected.Load()),
		Released: v.released.Load(),
	}
}

func capacityExceeded(capacity uint64) error {
	return api.NewError(api.ErrCodeCapacityExceeded, "constvec: push exceeds capacity").
		WithContext("capacity", capacity)
}

func indexOutOfBounds(index int, length uint64) error {
	return api.NewError(api.ErrCodeIndexOutOfBounds, "constvec: index out of bounds").
		WithContext("index", index).
		WithContext("len", length)
}
