// SPDX-License-Identifier: MIT
// Package sparse: Packed, the compact vector.
//
// Invariant: the k-th entry is (Indices()[k], Dense()[k]) for k < NumElements()
// and Dense()[k] == 0 for k ≥ NumElements().

package sparse

import (
	"math"
	"sort"
)

// Packed stores its entries compactly. Capacity bounds the number of entries,
// not the positions, which may be any non-negative int.
type Packed struct {
	storage
}

// NewPacked returns an empty packed vector able to hold capacity entries.
func NewPacked(capacity int) (*Packed, error) {
	s, err := newStorage("NewPacked", capacity)
	if err != nil {
		return nil, err
	}

	return &Packed{storage: s}, nil
}

// Entry returns the k-th (position, value) pair.
func (p *Packed) Entry(k int) (int, float64) {
	return p.indices[k], p.elements[k]
}

// IsPacked always reports true.
func (p *Packed) IsPacked() bool { return true }

// String renders the entries.
func (p *Packed) String() string { return format(p) }

// Values returns the packed values, parallel to Indices().
func (p *Packed) Values() []float64 { return p.elements[:p.n] }

// Clone returns a deep copy.
func (p *Packed) Clone() *Packed {
	return &Packed{storage: p.clone()}
}

// Clear zeroes the packed prefix.
// Complexity: O(n).
func (p *Packed) Clear() {
	clear(p.elements[:p.n])
	p.n = 0
}

// Reserve sets the capacity to n entries. Shrinking below NumElements()
// drops the trailing entries.
func (p *Packed) Reserve(n int) error {
	switch {
	case n < 0:
		return opError("Packed.Reserve", ErrNegativeCapacity, "n=%d", n)
	case n > len(p.elements):
		p.grow(n)
	case n < len(p.elements):
		p.n = min(p.n, n)
		p.elements = p.elements[:n:n]
		p.indices = p.indices[:n:n]
	}

	return nil
}

func (p *Packed) ensure(n int) {
	if n > len(p.elements) {
		p.grow(n)
	}
}

// QuickInsert appends (index, value) without checks, growing if full.
func (p *Packed) QuickInsert(index int, value float64) {
	p.ensure(p.n + 1)
	p.indices[p.n] = index
	p.elements[p.n] = value
	p.n++
}

// CreatePacked replaces the contents with the given pairs, unchecked.
func (p *Packed) CreatePacked(indices []int, values []float64) {
	p.Clear()
	p.ensure(len(indices))
	copy(p.indices, indices)
	copy(p.elements, values[:len(indices)])
	p.n = len(indices)
}

// AppendAdjusted appends every entry of other at position index+adjustIndex,
// without duplicate or tiny-value checks. With zap the source is drained.
// Complexity: O(nnz(other)).
func (p *Packed) AppendAdjusted(other Vector, adjustIndex int, zap bool) {
	n := other.NumElements()
	p.ensure(p.n + n)
	for k := 0; k < n; k++ {
		idx, value := other.Entry(k)
		p.indices[p.n+k] = idx + adjustIndex
		p.elements[p.n+k] = value
	}
	p.n += n
	if zap {
		other.Clear()
	}
}

// Clean drops entries with |value| < tolerance, keeping the order of the rest.
// Returns the number kept.
func (p *Packed) Clean(tolerance float64) int {
	kept := 0
	for k := 0; k < p.n; k++ {
		value := p.elements[k]
		if math.Abs(value) >= tolerance {
			p.indices[kept] = p.indices[k]
			p.elements[kept] = value
			kept++
		}
	}
	clear(p.elements[kept:p.n])
	p.n = kept

	return kept
}

// Expand converts p into an Indexed vector that takes over the buffers,
// growing them to cover the largest position. p is left empty with zero
// capacity. Repeated positions are summed.
// Complexity: O(n + max position).
func (p *Packed) Expand() *Indexed {
	values := make([]float64, p.n)
	copy(values, p.elements[:p.n])
	clear(p.elements[:p.n])
	indices := make([]int, p.n)
	copy(indices, p.indices[:p.n])

	out := &Indexed{storage: p.release()}
	out.n = 0
	if maxIndex := maxOf(indices); maxIndex >= len(out.elements) {
		out.grow(maxIndex + 1)
	}
	for k, idx := range indices {
		if out.elements[idx] != 0 {
			out.elements[idx] = snap(out.elements[idx] + values[k])
			continue
		}
		if values[k] != 0 {
			out.QuickInsert(idx, values[k])
		}
	}

	return out
}

// SortIncrIndex orders the entries by increasing position.
func (p *Packed) SortIncrIndex() { sort.Sort(byIndex{p}) }

// SortDecrElement orders the entries by decreasing value.
func (p *Packed) SortDecrElement() {
	sort.Stable(sort.Reverse(byElement{byIndex{p}}))
}

type byIndex struct{ p *Packed }

func (s byIndex) Len() int           { return s.p.n }
func (s byIndex) Less(i, j int) bool { return s.p.indices[i] < s.p.indices[j] }
func (s byIndex) Swap(i, j int) {
	s.p.indices[i], s.p.indices[j] = s.p.indices[j], s.p.indices[i]
	s.p.elements[i], s.p.elements[j] = s.p.elements[j], s.p.elements[i]
}

type byElement struct{ byIndex }

func (s byElement) Less(i, j int) bool { return s.p.elements[i] < s.p.elements[j] }

func maxOf(xs []int) int {
	m := -1
	for _, x := range xs {
		m = max(m, x)
	}

	return m
}
