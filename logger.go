// File: logger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package-level zap logger; silent until SetLogger is called.

package constvec

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nopLog = zap.NewNop()
)

// Logger returns the package logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLog
}

// SetLogger replaces the package logger. Nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
