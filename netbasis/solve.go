// SPDX-License-Identifier: MIT
// Package netbasis: FTRAN and BTRAN on the spanning tree.
//
// FTRAN (B·x = b): b is indexed by row, x by basis position. Every node
// passes its accumulated value to its parent and emits value·sign at its
// position, deepest nodes first.
//
// BTRAN (yᵀ·B = cᵀ): c is indexed by position, y by row. Every node takes
// sign·c plus its parent's result, shallowest nodes first; only inputs and
// their descendants can be nonzero.
//
// Both use depth buckets in the workspace (head/link) so the cost is
// proportional to the touched part of the tree, not to Rows().

package netbasis

import (
	"fmt"

	"github.com/katalvlaran/netlp/sparse"
)

// rawVector is the buffer access both sparse layouts provide.
type rawVector interface {
	sparse.Vector
	Dense() []float64
	IndexBuffer() []int
	SetNumElements(n int)
}

// UpdateColumn runs FTRAN in place on region of either layout: on entry the
// entries are rows, on return they are basis positions. Returns the result at
// position pivotRow, or 0 when pivotRow < 0. The capacity grows to Rows()
// when smaller.
// Complexity: O(touched nodes + depth of the deepest input).
func (b *Basis) UpdateColumn(region sparse.Vector, pivotRow int) float64 {
	r := b.prepare(region)
	elems, idx, n := r.Dense(), r.IndexBuffer(), r.NumElements()
	packed := r.IsPacked()
	w := b.ws

	nodes := w.list[:0]
	for k := 0; k < n; k++ {
		j := idx[k]
		slot := j
		if packed {
			slot = k
		}
		w.dense[j] += elems[slot]
		elems[slot] = 0
		nodes = append(nodes, j)
	}

	count := 0
	result := 0.0
	emit := func(node int, value float64) {
		back := b.permuteBack[node]
		out := value * b.sign[node]
		if packed {
			elems[count] = out
		} else {
			elems[back] = out
		}
		idx[count] = back
		count++
		if back == pivotRow {
			result = out
		}
	}
	if len(nodes) == 2 && w.dense[nodes[0]] != 0 && w.dense[nodes[0]] == -w.dense[nodes[1]] {
		b.ftranPair(nodes[0], nodes[1], emit)
	} else {
		b.ftran(nodes, emit)
	}
	w.list = nodes[:0]
	r.SetNumElements(count)
	b.verifyScratch("UpdateColumn")

	return result
}

// UpdateColumnDense runs FTRAN on a dense array of at least Rows() entries,
// row indexed on entry and position indexed on return. Returns the number of
// nonzero results.
func (b *Basis) UpdateColumnDense(region []float64) int {
	if len(region) < b.rows {
		panic(fmt.Sprintf("netbasis: UpdateColumnDense: len(region)=%d < rows=%d", len(region), b.rows))
	}
	w := b.ws
	nodes := w.list[:0]
	for i := 0; i < b.rows; i++ {
		if v := region[i]; v != 0 {
			w.dense[i] = v
			region[i] = 0
			nodes = append(nodes, i)
		}
	}
	count := 0
	b.ftran(nodes, func(node int, value float64) {
		region[b.permuteBack[node]] = value * b.sign[node]
		count++
	})
	w.list = nodes[:0]
	b.verifyScratch("UpdateColumnDense")

	return count
}

// ftran sweeps the depth buckets of every node on a root path of the loaded
// nodes, deepest first. On return the workspace is clean.
func (b *Basis) ftran(nodes []int, emit func(node int, value float64)) {
	w := b.ws
	root := b.rows
	greatest := -1
	for _, j := range nodes {
		d := b.depth[j]
		greatest = max(greatest, d)
		for j != root && !w.mark[j] {
			w.link[j] = w.head[d]
			w.head[d] = j
			w.mark[j] = true
			d--
			j = b.parent[j]
		}
	}
	for d := greatest; d >= 0; d-- {
		p := w.head[d]
		w.head[d] = -1
		for p >= 0 {
			w.mark[p] = false
			if value := w.dense[p]; value != 0 {
				emit(p, value)
				w.dense[p] = 0
				w.dense[b.parent[p]] += value
			}
			p = w.link[p]
		}
	}
	w.dense[root] = 0
}

// ftranPair handles a column with two exactly cancelling entries: the two
// root paths are walked until they meet, where the values annihilate.
func (b *Basis) ftranPair(i0, i1 int, emit func(node int, value float64)) {
	w := b.ws
	v0, v1 := w.dense[i0], w.dense[i1]
	w.dense[i0], w.dense[i1] = 0, 0
	d0, d1 := b.depth[i0], b.depth[i1]
	if d1 > d0 {
		i0, i1, v0, v1, d0, d1 = i1, i0, v1, v0, d1, d0
	}
	for ; d0 > d1; d0-- {
		emit(i0, v0)
		i0 = b.parent[i0]
	}
	for i0 != i1 {
		emit(i0, v0)
		i0 = b.parent[i0]
		emit(i1, v1)
		i1 = b.parent[i1]
	}
}

// UpdateColumnTranspose runs BTRAN in place on region of either layout: on
// entry the entries are basis positions, on return they are rows. Returns the
// number of nonzero results.
// Complexity: O(inputs plus all their descendants).
func (b *Basis) UpdateColumnTranspose(region sparse.Vector) int {
	r := b.prepare(region)
	elems, idx, n := r.Dense(), r.IndexBuffer(), r.NumElements()
	packed := r.IsPacked()
	w := b.ws

	nodes := w.list[:0]
	for k := 0; k < n; k++ {
		pos := idx[k]
		slot := pos
		if packed {
			slot = k
		}
		j := b.permute[pos]
		w.dense[j] += elems[slot]
		elems[slot] = 0
		if !w.mark[j] {
			w.mark[j] = true
			nodes = append(nodes, j)
		}
	}

	count := 0
	nodes = b.btran(nodes, func(node int, value float64) {
		if packed {
			elems[count] = value
		} else {
			elems[node] = value
		}
		idx[count] = node
		count++
	})
	w.list = nodes[:0]
	r.SetNumElements(count)
	b.verifyScratch("UpdateColumnTranspose")

	return count
}

// UpdateColumnTransposeDense runs BTRAN on a dense array of at least Rows()
// entries, position indexed on entry and row indexed on return. Every input
// slot is cleared before results are written. Returns the number of nonzero
// results.
func (b *Basis) UpdateColumnTransposeDense(region []float64) int {
	if len(region) < b.rows {
		panic(fmt.Sprintf("netbasis: UpdateColumnTransposeDense: len(region)=%d < rows=%d", len(region), b.rows))
	}
	w := b.ws
	nodes := w.list[:0]
	for pos := 0; pos < b.rows; pos++ {
		if v := region[pos]; v != 0 {
			j := b.permute[pos]
			w.dense[j] = v
			region[pos] = 0
			w.mark[j] = true
			nodes = append(nodes, j)
		}
	}
	count := 0
	nodes = b.btran(nodes, func(node int, value float64) {
		region[node] = value
		count++
	})
	w.list = nodes[:0]
	b.verifyScratch("UpdateColumnTransposeDense")

	return count
}

// btran expects the inputs loaded into dense and marked. It extends the list
// with every descendant, sweeps depth buckets shallowest first and emits the
// nonzero results. On return the workspace is clean; the extended list is
// returned so its storage can be reused.
func (b *Basis) btran(nodes []int, emit func(node int, value float64)) []int {
	w := b.ws
	root := b.rows
	smallest, greatest := b.rows, -1
	for i := 0; i < len(nodes); i++ {
		j := nodes[i]
		d := b.depth[j]
		smallest, greatest = min(smallest, d), max(greatest, d)
		w.link[j] = w.head[d]
		w.head[d] = j
		for c := b.descendant[j]; c >= 0; c = b.rightSibling[c] {
			if !w.mark[c] {
				w.mark[c] = true
				nodes = append(nodes, c)
			}
		}
	}
	for d := smallest; d <= greatest; d++ {
		p := w.head[d]
		w.head[d] = -1
		for p >= 0 {
			w.mark[p] = false
			above := 0.0
			if parent := b.parent[p]; parent != root {
				above = w.dense[parent]
			}
			value := b.sign[p]*w.dense[p] + above
			w.dense[p] = value
			if value != 0 {
				emit(p, value)
			}
			p = w.link[p]
		}
	}
	for _, j := range nodes {
		w.dense[j] = 0
	}

	return nodes
}

// prepare grows region to hold Rows() positions.
func (b *Basis) prepare(region sparse.Vector) rawVector {
	if region.Capacity() < b.rows {
		_ = region.Reserve(b.rows) // b.rows ≥ 0
	}

	return region.(rawVector)
}

// verifyScratch panics on a dirty workspace when checks are enabled.
func (b *Basis) verifyScratch(op string) {
	if !b.checks {
		return
	}
	if err := b.ws.Check(); err != nil {
		panic(fmt.Sprintf("netbasis: %s: %v", op, err))
	}
}
