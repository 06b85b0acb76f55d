// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
//
// Every message is prefixed with "network: ". Methods wrap them with their
// name via fmt.Errorf("Method: ...: %w", ErrX); match with errors.Is.

package network

import "errors"

var (
	// ErrBadShape is returned when the row count is < 1.
	ErrBadShape = errors.New("network: invalid shape")

	// ErrRowOutOfRange is returned when an arc endpoint is outside [-1, rows).
	ErrRowOutOfRange = errors.New("network: row out of range")

	// ErrLoop is returned for an arc whose endpoints coincide (including an
	// arc with both ends on the root).
	ErrLoop = errors.New("network: arc endpoints coincide")

	// ErrSequenceOutOfRange is returned for a sequence outside
	// [0, Columns()+Rows()).
	ErrSequenceOutOfRange = errors.New("network: sequence out of range")

	// ErrPositionOutOfRange is returned for a basis position outside [0, Rows()).
	ErrPositionOutOfRange = errors.New("network: position out of range")

	// ErrDuplicateBasic is returned when a sequence is basic at two positions.
	ErrDuplicateBasic = errors.New("network: sequence already basic")

	// ErrDimensionMismatch is returned when a vector length does not match the matrix.
	ErrDimensionMismatch = errors.New("network: dimension mismatch")
)
