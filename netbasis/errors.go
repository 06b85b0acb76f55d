// SPDX-License-Identifier: MIT
// Package netbasis: sentinel error set.
//
// Every message is prefixed with "netbasis: ". Methods wrap them with their
// name and the offending values via fmt.Errorf("Method: ...: %w", ErrX);
// callers match with errors.Is. Errors from the Model are wrapped unchanged.

package netbasis

import "errors"

var (
	// ErrDimensionMismatch is returned when constructor slices disagree in
	// length or a dense region is shorter than Rows().
	ErrDimensionMismatch = errors.New("netbasis: dimension mismatch")

	// ErrNotATree is returned when the parent links do not reach the root
	// from every node (cycle, self parent or out-of-range parent).
	ErrNotATree = errors.New("netbasis: parent links do not form a tree")

	// ErrInvalidSign is returned when a sign is not ±1.
	ErrInvalidSign = errors.New("netbasis: sign must be ±1")

	// ErrSingularBasis is returned by Bootstrap when the basic columns do not
	// form a spanning tree of the rows plus the root.
	ErrSingularBasis = errors.New("netbasis: basic columns do not span a tree")

	// ErrNotNetworkColumn is returned when a column is not one ±1 entry or
	// two entries of opposite unit sign.
	ErrNotNetworkColumn = errors.New("netbasis: not a network column")

	// ErrNotTreeArc is returned by ReplaceColumn when the leaving column is
	// not the tree arc stored at the pivot position.
	ErrNotTreeArc = errors.New("netbasis: leaving column is not the tree arc at the pivot position")

	// ErrPivotNotOnPath is returned by ReplaceColumn when the leaving arc is on
	// neither root path of the entering arc, so the result would not be a tree.
	ErrPivotNotOnPath = errors.New("netbasis: leaving arc not on the entering arc's cycle")

	// ErrRegionNotEmpty is returned by ReplaceColumn when the scratch region
	// holds entries on entry.
	ErrRegionNotEmpty = errors.New("netbasis: region must be empty")

	// ErrPositionOutOfRange is returned for a basis position outside [0, Rows()).
	ErrPositionOutOfRange = errors.New("netbasis: position out of range")

	// ErrCorrupt is returned by Check when an internal invariant is violated.
	ErrCorrupt = errors.New("netbasis: invariant violated")
)
