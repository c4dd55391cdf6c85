// Package api
// Author: momentics@gmail.com
//
// Append-only fixed-capacity vector contract.

package api

// AppendOnly is a fixed-capacity container that accepts appends through a
// shared handle. Pushed elements are never moved, rewritten or removed.
type AppendOnly[T any] interface {
	// Push appends value; fails with ErrCapacityExceeded when full.
	Push(value T) error
	// Get returns a stable pointer to a published element.
	Get(index int) (*T, error)
	// Len returns the number of published elements.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}

// Destroyer is implemented by element types that need explicit teardown
// when the owning container is released.
type Destroyer interface {
	Destroy()
}
