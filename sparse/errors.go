// SPDX-License-Identifier: MIT
// Package sparse: sentinel errors and the structured *Error carrier.
//
// Every exported failure is an *Error wrapping exactly one sentinel below.
// Callers branch with errors.Is(err, ErrX); errors.As(err, &e) gives access
// to the failing operation and parameter.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeIndex is returned when a position argument is < 0.
	ErrNegativeIndex = errors.New("sparse: negative index")

	// ErrIndexOutOfRange is returned when a position or element slot lies
	// outside the valid range of the receiver (capacity or NumElements).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrIndexExists is returned by Insert when the position is already tracked.
	// The receiver is left unchanged.
	ErrIndexExists = errors.New("sparse: index already exists")

	// ErrDuplicateIndex is returned by the checked bulk setters when the input
	// lists the same position twice. Duplicates are summed before reporting.
	ErrDuplicateIndex = errors.New("sparse: duplicate index")

	// ErrZeroDivisor is returned when a nonzero value is divided by a true zero.
	ErrZeroDivisor = errors.New("sparse: zero divisor")

	// ErrNegativeCapacity is returned by constructors and Reserve for n < 0.
	ErrNegativeCapacity = errors.New("sparse: negative capacity")

	// ErrLengthMismatch is returned when parallel index/value slices differ in length.
	ErrLengthMismatch = errors.New("sparse: indices and values differ in length")

	// ErrCorrupt is returned by CheckClear and CheckClean when the buffers
	// disagree with the tracked entries.
	ErrCorrupt = errors.New("sparse: storage invariant violated")
)

// Error describes a rejected operation on a vector.
type Error struct {
	Op    string // method, e.g. "Indexed.Insert"
	Param string // offending parameter, e.g. "index=3"
	Err   error  // one of the package sentinels
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s(%s): %v", e.Op, e.Param, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.Err }

// opError builds an *Error with a formatted parameter description.
func opError(op string, err error, format string, args ...any) error {
	return &Error{Op: op, Param: fmt.Sprintf(format, args...), Err: err}
}
