// SPDX-License-Identifier: MIT
// Package sparse: the Vector capability interface and the storage shared by
// both variants.

package sparse

import (
	"fmt"
	"strings"
)

// Vector is implemented by *Indexed and *Packed only.
//
// The interface carries what both layouts can answer in O(1) per entry; layout
// specific work (arithmetic, scanning, packed population) lives on the
// concrete types.
type Vector interface {
	// NumElements returns the number of tracked entries.
	NumElements() int
	// Capacity returns the length of the backing buffers.
	Capacity() int
	// Indices returns the tracked positions (a view, not a copy).
	Indices() []int
	// Entry returns the position and value of the k-th tracked entry,
	// 0 ≤ k < NumElements(). It does not bounds-check k.
	Entry(k int) (index int, value float64)
	// IsPacked reports the layout.
	IsPacked() bool
	// Clear zeroes every tracked entry and empties the index list.
	Clear()
	// Reserve grows or shrinks the capacity to n.
	Reserve(n int) error
	// String renders the entries for debugging.
	String() string

	base() *storage
}

// storage holds the two parallel buffers. Both have length == capacity.
type storage struct {
	elements []float64
	indices  []int
	n        int
}

func newStorage(op string, capacity int) (storage, error) {
	if capacity < 0 {
		return storage{}, opError(op, ErrNegativeCapacity, "capacity=%d", capacity)
	}

	return storage{
		elements: make([]float64, capacity),
		indices:  make([]int, capacity),
	}, nil
}

func (s *storage) base() *storage { return s }

// NumElements returns the number of tracked entries.
func (s *storage) NumElements() int { return s.n }

// Capacity returns the length of the backing buffers.
func (s *storage) Capacity() int { return len(s.elements) }

// Indices returns the tracked positions. The slice aliases internal storage
// and is invalidated by any mutating call.
func (s *storage) Indices() []int { return s.indices[:s.n] }

// Dense returns the whole element buffer. Writing through it bypasses the
// tracking bookkeeping; callers that do so must rebuild it (Scan on Indexed,
// SetNumElements on Packed).
func (s *storage) Dense() []float64 { return s.elements }

// IndexBuffer returns the whole index buffer (length Capacity()). Kernels
// write tracked positions into it directly and then call SetNumElements.
func (s *storage) IndexBuffer() []int { return s.indices }

// SetNumElements sets the tracked count after direct buffer writes.
// It is unchecked.
func (s *storage) SetNumElements(n int) { s.n = n }

// MaxIndex returns the largest tracked position, or -1 when empty.
func (s *storage) MaxIndex() int {
	maxIndex := -1
	for _, idx := range s.indices[:s.n] {
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	return maxIndex
}

// MinIndex returns the smallest tracked position, or -1 when empty.
func (s *storage) MinIndex() int {
	if s.n == 0 {
		return -1
	}
	minIndex := s.indices[0]
	for _, idx := range s.indices[1:s.n] {
		if idx < minIndex {
			minIndex = idx
		}
	}

	return minIndex
}

// grow reallocates both buffers to capacity n > Capacity(), preserving the
// element buffer and the tracked index prefix. New slots are zero.
func (s *storage) grow(n int) {
	elements := make([]float64, n)
	copy(elements, s.elements)
	indices := make([]int, n)
	copy(indices, s.indices[:s.n])
	s.elements, s.indices = elements, indices
}

// release hands the buffers over and leaves s empty with zero capacity.
func (s *storage) release() storage {
	out := *s
	*s = storage{}

	return out
}

// clone deep-copies the buffers.
func (s *storage) clone() storage {
	out := storage{
		elements: make([]float64, len(s.elements)),
		indices:  make([]int, len(s.indices)),
		n:        s.n,
	}
	copy(out.elements, s.elements)
	copy(out.indices, s.indices)

	return out
}

// format renders "(index,value)" pairs five per line, the layout used by the
// kernels' debug dumps.
func format(v Vector) string {
	var sb strings.Builder
	layout := "un"
	if v.IsPacked() {
		layout = ""
	}
	fmt.Fprintf(&sb, "Vector has %d elements (%spacked mode)\n", v.NumElements(), layout)
	for k := 0; k < v.NumElements(); k++ {
		if k > 0 && k%5 == 0 {
			sb.WriteByte('\n')
		}
		idx, val := v.Entry(k)
		fmt.Fprintf(&sb, " (%d,%g)", idx, val)
	}
	sb.WriteByte('\n')

	return sb.String()
}

var (
	_ Vector = (*Indexed)(nil)
	_ Vector = (*Packed)(nil)
)
