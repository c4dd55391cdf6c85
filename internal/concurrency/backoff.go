// File: internal/concurrency/backoff.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded spin-then-yield backoff for CAS retry loops.

package concurrency

import "runtime"

// spinLimit is the number of immediate retries before yielding the processor.
const spinLimit = 16

// Backoff tracks retries of a single contended operation.
// The zero value is ready to use and must not be shared between goroutines.
type Backoff struct {
	attempts int
}

// Spin records one failed attempt. The first spinLimit attempts retry
// immediately; later ones yield to the scheduler.
func (b *Backoff) Spin() {
	b.attempts++
	if b.attempts > spinLimit {
		runtime.Gosched()
	}
}

// Attempts returns the number of recorded failed attempts.
func (b *Backoff) Attempts() int { return b.attempts }

// Reset clears the retry history.
func (b *Backoff) Reset() { b.attempts = 0 }
