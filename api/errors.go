// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for constvec.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeCapacityExceeded
	ErrCodeIndexOutOfBounds
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// String returns a short name for the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeCapacityExceeded:
		return "capacity_exceeded"
	case ErrCodeIndexOutOfBounds:
		return "index_out_of_bounds"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	default:
		return "internal"
	}
}

// sentinel maps a code to the package-level error matched by errors.Is.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeCapacityExceeded:
		return ErrCapacityExceeded
	case ErrCodeIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel for the error code, so that
// errors.Is(err, ErrCapacityExceeded) holds for structured errors.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode carried by err, if any.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	switch {
	case errors.Is(err, ErrCapacityExceeded):
		return ErrCodeCapacityExceeded
	case errors.Is(err, ErrIndexOutOfBounds):
		return ErrCodeIndexOutOfBounds
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	}
	return ErrCodeInternal
}
