// File: overflow/redirect.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Redirect sink for pushes rejected by a full ConstVec.

package overflow

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/momentics/constvec"
)

// Redirector forwards pushes to a ConstVec and parks the values it rejects
// in a FIFO backlog instead of dropping them. The vector is never grown;
// parked values only move when the caller drains them into another vector.
type Redirector[T any] struct {
	vec atomic.Pointer[constvec.ConstVec[T]]

	mu      sync.Mutex
	backlog *queue.Queue
	parked  uint64
}

// NewRedirector wraps vec.
func NewRedirector[T any](vec *constvec.ConstVec[T]) *Redirector[T] {
	r := &Redirector[T]{backlog: queue.New()}
	r.vec.Store(vec)
	return r
}

// Vec returns the wrapped vector.
func (r *Redirector[T]) Vec() *constvec.ConstVec[T] { return r.vec.Load() }

// Push appends value to the vector. When the vector is full the value is
// parked and Push returns the capacity error so the caller still sees it.
func (r *Redirector[T]) Push(value T) error {
	vec := r.vec.Load()
	err := vec.Push(value)
	if err == nil || !errors.Is(err, constvec.ErrCapacityExceeded) {
		return err
	}
	r.mu.Lock()
	r.backlog.Add(value)
	r.parked++
	depth := r.backlog.Length()
	r.mu.Unlock()

	constvec.Logger().Debug("constvec push redirected",
		zap.Int("capacity", vec.Cap()),
		zap.Int("backlog", depth),
	)
	return err
}

// Backlog returns the number of parked values.
func (r *Redirector[T]) Backlog() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backlog.Length()
}

// Parked returns how many values were ever parked.
func (r *Redirector[T]) Parked() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parked
}

// Peek returns the oldest parked value without removing it.
func (r *Redirector[T]) Peek() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backlog.Length() == 0 {
		var zero T
		return zero, false
	}
	return r.backlog.Peek().(T), true
}

// Drain moves parked values into dst in FIFO order. It stops at the first
// value dst rejects, leaving that value and everything after it parked, and
// returns the number moved together with dst's error.
func (r *Redirector[T]) Drain(dst *constvec.ConstVec[T]) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	moved := 0
	for r.backlog.Length() > 0 {
		if err := dst.Push(r.backlog.Peek().(T)); err != nil {
			return moved, err
		}
		r.backlog.Remove()
		moved++
	}
	return moved, nil
}

// Redirect swaps the wrapped vector for next and drains the backlog into it.
// Subsequent pushes go to next. A value rejected by the old vector while the
// swap is in flight stays parked until the next Drain.
func (r *Redirector[T]) Redirect(next *constvec.ConstVec[T]) (int, error) {
	r.vec.Store(next)
	return r.Drain(next)
}
