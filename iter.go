// File: iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Snapshot iteration over the published prefix.

package constvec

import "iter"

// Iterator walks the elements published when it was created.
// Elements pushed later are never visited by it; create a new one to see them.
type Iterator[T any] struct {
	slots []T
	pos   int
}

// Iter returns an iterator over a snapshot of the published prefix.
func (v *ConstVec[T]) Iter() *Iterator[T] {
	return &Iterator[T]{slots: v.Slice()}
}

// Next returns the next element pointer, or false when the snapshot is exhausted.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.pos >= len(it.slots) {
		return nil, false
	}
	p := &it.slots[it.pos]
	it.pos++
	return p, true
}

// Reset restarts the iterator over the same snapshot.
func (it *Iterator[T]) Reset() { it.pos = 0 }

// Len returns the snapshot length.
func (it *Iterator[T]) Len() int { return len(it.slots) }

// Remaining returns how many elements Next will still yield.
func (it *Iterator[T]) Remaining() int { return len(it.slots) - it.pos }

// All returns an index/pointer sequence over the elements published at the
// time of the call. Ranging over it again replays the same snapshot.
func (v *ConstVec[T]) All() iter.Seq2[int, *T] {
	s := v.Slice()
	return func(yield func(int, *T) bool) {
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// Values is like All but yields element copies.
func (v *ConstVec[T]) Values() iter.Seq[T] {
	s := v.Slice()
	return func(yield func(T) bool) {
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}
