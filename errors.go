// File: errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package constvec

import "github.com/momentics/constvec/api"

// Re-exported so callers can match failures without importing api.
var (
	ErrCapacityExceeded = api.ErrCapacityExceeded
	ErrIndexOutOfBounds = api.ErrIndexOutOfBounds
)
