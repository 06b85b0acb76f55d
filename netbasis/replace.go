// SPDX-License-Identifier: MIT
// Package netbasis: basis update by arc exchange.
//
// The entering arc (iRow0, iRow1) closes a cycle with the tree; the leaving
// arc sits on one side of it. The nodes between the leaving arc and the
// entering arc's endpoint on that side are re-hung in reverse order, each
// taking the basis position of its former child, and the endpoint itself
// takes the leaving arc's position.

package netbasis

import (
	"fmt"

	"github.com/katalvlaran/netlp/sparse"
)

// ReplaceColumn exchanges the arc at basis position pivotRow for the column
// of sequenceIn. region is scratch: it must be empty on entry and is empty
// on return. The model must still report the leaving sequence at pivotRow.
//
// Stage 1 (Validate): unpack both columns, locate the leaving tree arc and
// the side of the cycle it lies on. Nothing is mutated before this passes.
// Stage 2 (Reorient): walk from the entering endpoint to the leaving node
// fixing signs so every reversed arc keeps its column.
// Stage 3 (Relink): re-hang the chain, swapping positions along it.
// Stage 4 (Depth): relabel the re-hung subtree.
//
// Errors: ErrRegionNotEmpty, ErrPositionOutOfRange, ErrNotNetworkColumn,
// ErrNotTreeArc, ErrPivotNotOnPath, model errors, and with WithChecks any
// Check failure.
// Complexity: O(path length + size of the re-hung subtree).
func (b *Basis) ReplaceColumn(region *sparse.Indexed, sequenceIn, pivotRow int) error {
	if region.NumElements() != 0 {
		return fmt.Errorf("ReplaceColumn: %d entries: %w", region.NumElements(), ErrRegionNotEmpty)
	}
	if pivotRow < 0 || pivotRow >= b.rows {
		return fmt.Errorf("ReplaceColumn: pivotRow=%d: %w", pivotRow, ErrPositionOutOfRange)
	}
	root := b.rows

	// Stage 1: entering column.
	if err := b.model.Unpack(region, sequenceIn); err != nil {
		region.Clear()
		return fmt.Errorf("ReplaceColumn: entering %d: %w", sequenceIn, err)
	}
	iRow0, iRow1, c0, err := networkColumn(region, root)
	region.Clear()
	if err != nil {
		return fmt.Errorf("ReplaceColumn: entering %d: %w", sequenceIn, err)
	}
	sign := -c0

	// Leaving column.
	sequenceOut := b.model.PivotVariable(pivotRow)
	if err = b.model.Unpack(region, sequenceOut); err != nil {
		region.Clear()
		return fmt.Errorf("ReplaceColumn: leaving %d: %w", sequenceOut, err)
	}
	jRow0, jRow1, _, err := networkColumn(region, root)
	region.Clear()
	if err != nil {
		return fmt.Errorf("ReplaceColumn: leaving %d: %w", sequenceOut, err)
	}
	var pivot int
	switch {
	case b.parent[jRow0] == jRow1:
		pivot = jRow0
	case jRow1 != root && b.parent[jRow1] == jRow0:
		pivot = jRow1
	default:
		return fmt.Errorf("ReplaceColumn: leaving %d (%d,%d): %w", sequenceOut, jRow0, jRow1, ErrNotTreeArc)
	}
	if b.permuteBack[pivot] != pivotRow {
		return fmt.Errorf("ReplaceColumn: leaving arc at node %d holds position %d, not %d: %w",
			pivot, b.permuteBack[pivot], pivotRow, ErrNotTreeArc)
	}

	// Which side of the cycle holds the leaving arc. On both root paths means
	// above the meeting point, which is off the cycle.
	on1, on0 := b.onRootPath(iRow1, pivot), b.onRootPath(iRow0, pivot)
	if on1 == on0 {
		return fmt.Errorf("ReplaceColumn: entering (%d,%d), leaving node %d: %w", iRow0, iRow1, pivot, ErrPivotNotOnPath)
	}
	kRow := iRow1
	if on0 {
		kRow = iRow0
		iRow0, iRow1 = iRow1, kRow
		sign = -sign
	}
	if e := b.log.Trace(); e.Enabled() {
		e.Str("forest", b.String()).Msg("before pivot")
	}

	// Stage 2: chain [iRow0, kRow, ..., pivot] with signs fixed on the way.
	chain := append(b.ws.list[:0], iRow0)
	for kRow != pivot {
		chain = append(chain, kRow)
		if sign*b.sign[kRow] < 0 {
			b.sign[kRow] = -b.sign[kRow]
		} else {
			sign = -sign
		}
		kRow = b.parent[kRow]
	}
	chain = append(chain, pivot)
	if sign*b.sign[pivot] < 0 {
		b.sign[pivot] = -b.sign[pivot]
	}

	// Stage 3: re-hang from the leaving node down to the entering endpoint.
	current := pivot
	for k := len(chain) - 1; k > 0; k-- {
		node, newParent := chain[k], chain[k-1]
		i1, i2 := b.permuteBack[current], b.permuteBack[node]
		b.permuteBack[current], b.permuteBack[node] = i2, i1
		b.permute[i1], b.permute[i2] = node, current
		current = node

		b.detach(node)
		b.attach(node, newParent, b.sign[node])
	}

	// Stage 4: depths below the new attachment point.
	top := chain[1]
	b.depth[top] = b.depth[b.parent[top]] + 1
	b.relabelBelow(top)

	b.log.Debug().
		Int("enter", sequenceIn).
		Int("leave", sequenceOut).
		Int("position", pivotRow).
		Ints("chain", chain).
		Msg("replace column")
	if e := b.log.Trace(); e.Enabled() {
		e.Str("forest", b.String()).Msg("after pivot")
	}
	b.ws.list = chain[:0]

	if b.checks {
		if err = b.Check(); err != nil {
			return fmt.Errorf("ReplaceColumn: %w", err)
		}
	}

	return nil
}

// onRootPath reports whether target lies on the path from node to the root
// (node itself included, the root excluded).
func (b *Basis) onRootPath(node, target int) bool {
	for j := node; j != b.rows; j = b.parent[j] {
		if j == target {
			return true
		}
	}

	return false
}
