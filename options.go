// File: options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for ConstVec construction.

package constvec

// Option customizes a ConstVec at construction time.
type Option[T any] func(*ConstVec[T])

// WithTeardown registers fn to run once per published element on Release,
// in index order. It takes precedence over api.Destroyer, which is looked up
// on *T first and then on T itself, so pointer elements such as *Conn are
// destroyed through their own Destroy method.
func WithTeardown[T any](fn func(*T)) Option[T] {
	return func(v *ConstVec[T]) {
		v.teardown = fn
	}
}
