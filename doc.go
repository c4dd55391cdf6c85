// Package constvec
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, append-only vector that accepts pushes through a shared
// handle while keeping every previously pushed element at a stable address.
//
// The backing block is allocated once, for exactly the declared capacity, and
// is never moved or grown. A push runs in three steps:
//   - reserve: a CAS on the reservation counter claims the next slot index,
//     failing without side effects once the counter reaches capacity;
//   - write: the value is stored into the privately owned slot and the slot's
//     ready flag is set;
//   - publish: length is advanced over every contiguous ready slot, so
//     readers that observe Len() > i always observe the complete value at i.
//
// Readers consult only the published length. Pushes beyond capacity fail
// with ErrCapacityExceeded; reads at or past Len() fail with
// ErrIndexOutOfBounds. Release tears down exactly the published elements.
//
// All operations are non-blocking and safe for concurrent use, except
// Release, which must not overlap with readers still holding element pointers.
package constvec
