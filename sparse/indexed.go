// SPDX-License-Identifier: MIT
// Package sparse: Indexed, the full-storage vector.
//
// Invariant: Dense()[i] != 0 only if i is listed in Indices(). Methods named
// Quick*, Create* and the raw buffer accessors trust the caller to keep it.

package sparse

import (
	"math"
	"sort"
)

// Indexed is a full-storage sparse vector: position i is stored at Dense()[i]
// and the nonzero positions are tracked in insertion order.
// The zero value is an empty vector with zero capacity.
type Indexed struct {
	storage
}

// NewIndexed returns an empty vector with the given capacity.
// Capacity may be zero; negative capacity yields ErrNegativeCapacity.
// Complexity: O(capacity).
func NewIndexed(capacity int) (*Indexed, error) {
	s, err := newStorage("NewIndexed", capacity)
	if err != nil {
		return nil, err
	}

	return &Indexed{storage: s}, nil
}

// Entry returns the position and value of the k-th tracked entry.
func (v *Indexed) Entry(k int) (int, float64) {
	idx := v.indices[k]

	return idx, v.elements[idx]
}

// IsPacked always reports false.
func (v *Indexed) IsPacked() bool { return false }

// String renders the tracked entries.
func (v *Indexed) String() string { return format(v) }

// Value returns the value stored at position index, or 0 outside the capacity.
func (v *Indexed) Value(index int) float64 {
	if index < 0 || index >= len(v.elements) {
		return 0
	}

	return v.elements[index]
}

// Clone returns a deep copy.
func (v *Indexed) Clone() *Indexed {
	return &Indexed{storage: v.clone()}
}

// Clear zeroes every tracked slot and empties the index list.
// Sparse vectors (3n < capacity) are cleared slot by slot; denser ones by a
// full sweep. Both paths leave identical state.
// Complexity: O(min(n, capacity)) or O(capacity).
func (v *Indexed) Clear() {
	if sparseClearRatio*v.n < len(v.elements) {
		for _, idx := range v.indices[:v.n] {
			v.elements[idx] = 0
		}
	} else {
		clear(v.elements)
	}
	v.n = 0
}

// Reserve sets the capacity to n.
// Growing keeps every value and zero-fills the new tail. Shrinking drops the
// tracked positions ≥ n (zeroing their slots) and compacts the index list.
func (v *Indexed) Reserve(n int) error {
	switch {
	case n < 0:
		return opError("Indexed.Reserve", ErrNegativeCapacity, "n=%d", n)
	case n > len(v.elements):
		v.grow(n)
	case n < len(v.elements):
		kept := 0
		for _, idx := range v.indices[:v.n] {
			if idx < n {
				v.indices[kept] = idx
				kept++
			} else {
				v.elements[idx] = 0
			}
		}
		v.n = kept
		v.elements = v.elements[:n:n]
		v.indices = v.indices[:n:n]
	}

	return nil
}

// Truncate drops every position ≥ n; it is Reserve(n).
func (v *Indexed) Truncate(n int) error {
	return v.Reserve(n)
}

// ensure grows the capacity to at least n.
func (v *Indexed) ensure(n int) {
	if n > len(v.elements) {
		v.grow(n)
	}
}

// Insert tracks a new position and stores value there without applying the
// tiny-value policy. The position must not be tracked yet.
// Errors: ErrNegativeIndex, ErrIndexExists (receiver unchanged).
// Complexity: O(1), O(index) when the capacity grows.
func (v *Indexed) Insert(index int, value float64) error {
	if index < 0 {
		return opError("Indexed.Insert", ErrNegativeIndex, "index=%d", index)
	}
	v.ensure(index + 1)
	if v.elements[index] != 0 {
		return opError("Indexed.Insert", ErrIndexExists, "index=%d", index)
	}
	v.indices[v.n] = index
	v.n++
	v.elements[index] = value

	return nil
}

// QuickInsert is Insert without checks or growth. The position must be
// untracked and inside the capacity.
func (v *Indexed) QuickInsert(index int, value float64) {
	v.indices[v.n] = index
	v.n++
	v.elements[index] = value
}

// Add accumulates value into position index.
// On a tracked position the sum is stored, snapped to ReallyTinyElement when
// it cancels below TinyElement (the entry stays tracked until Clean).
// On an untracked position a value below TinyElement is ignored.
// Errors: ErrNegativeIndex.
func (v *Indexed) Add(index int, value float64) error {
	if index < 0 {
		return opError("Indexed.Add", ErrNegativeIndex, "index=%d", index)
	}
	v.ensure(index + 1)
	v.QuickAdd(index, value)

	return nil
}

// QuickAdd is Add without checks or growth.
func (v *Indexed) QuickAdd(index int, value float64) {
	if old := v.elements[index]; old != 0 {
		v.elements[index] = snap(old + value)
	} else if !isTiny(value) {
		v.indices[v.n] = index
		v.n++
		v.elements[index] = value
	}
}

// Zero makes a tracked value really tiny so that a later Clean drops it.
func (v *Indexed) Zero(index int) {
	if v.elements[index] != 0 {
		v.elements[index] = ReallyTinyElement
	}
}

// SetElement overwrites the value of the k-th tracked entry.
// Errors: ErrNegativeIndex, ErrIndexOutOfRange (k ≥ NumElements()).
func (v *Indexed) SetElement(k int, value float64) error {
	if k < 0 {
		return opError("Indexed.SetElement", ErrNegativeIndex, "k=%d", k)
	}
	if k >= v.n {
		return opError("Indexed.SetElement", ErrIndexOutOfRange, "k=%d", k)
	}
	v.elements[v.indices[k]] = value

	return nil
}

// Swap exchanges the i-th and j-th entries of the index list.
func (v *Indexed) Swap(i, j int) error {
	for _, k := range [2]int{i, j} {
		if k < 0 {
			return opError("Indexed.Swap", ErrNegativeIndex, "i=%d,j=%d", i, j)
		}
		if k >= v.n {
			return opError("Indexed.Swap", ErrIndexOutOfRange, "i=%d,j=%d", i, j)
		}
	}
	v.indices[i], v.indices[j] = v.indices[j], v.indices[i]

	return nil
}

// Clean drops every tracked entry with |value| < tolerance, zeroing its slot.
// Returns the number of entries kept.
// Complexity: O(n).
func (v *Indexed) Clean(tolerance float64) int {
	number := v.n
	v.n = 0
	for _, idx := range v.indices[:number] {
		if math.Abs(v.elements[idx]) >= tolerance {
			v.indices[v.n] = idx
			v.n++
		} else {
			v.elements[idx] = 0
		}
	}

	return v.n
}

// ScanAll discards the index list and rebuilds it from the whole buffer.
func (v *Indexed) ScanAll() int {
	v.n = 0

	return v.Scan(0, len(v.elements))
}

// ScanAllTolerance is ScanAll dropping values with |value| < tolerance.
func (v *Indexed) ScanAllTolerance(tolerance float64) int {
	v.n = 0

	return v.ScanTolerance(0, len(v.elements), tolerance)
}

// Scan appends every nonzero position of [start,end) to the index list and
// returns how many were appended. The range is clamped to the capacity.
// Positions in the range must not be tracked already.
func (v *Indexed) Scan(start, end int) int {
	start, end = max(start, 0), min(end, len(v.elements))
	number := 0
	for i := start; i < end; i++ {
		if v.elements[i] != 0 {
			v.indices[v.n+number] = i
			number++
		}
	}
	v.n += number

	return number
}

// ScanTolerance is Scan that also zeroes values with |value| < tolerance.
func (v *Indexed) ScanTolerance(start, end int, tolerance float64) int {
	start, end = max(start, 0), min(end, len(v.elements))
	number := 0
	for i := start; i < end; i++ {
		value := v.elements[i]
		if value == 0 {
			continue
		}
		if math.Abs(value) >= tolerance {
			v.indices[v.n+number] = i
			number++
		} else {
			v.elements[i] = 0
		}
	}
	v.n += number

	return number
}

// ScanAndPack builds a Packed vector from the nonzeros of [start,end) and
// hands over the buffers: v is left empty with zero capacity. Values outside
// the range are discarded so the packed tail stays zero.
// Complexity: O(capacity).
func (v *Indexed) ScanAndPack(start, end int) *Packed {
	return v.scanAndPack(start, end, 0)
}

// ScanAndPackTolerance is ScanAndPack dropping values with |value| < tolerance.
func (v *Indexed) ScanAndPackTolerance(start, end int, tolerance float64) *Packed {
	return v.scanAndPack(start, end, tolerance)
}

func (v *Indexed) scanAndPack(start, end int, tolerance float64) *Packed {
	e := v.elements
	start, end = max(start, 0), min(end, len(e))
	if end < start {
		end = start
	}
	clear(e[:start])
	clear(e[end:])
	number := 0
	for i := start; i < end; i++ {
		value := e[i]
		e[i] = 0
		if value != 0 && math.Abs(value) >= tolerance {
			e[number] = value
			v.indices[number] = i
			number++
		}
	}
	v.n = number

	return &Packed{storage: v.release()}
}

// CleanAndPack drops tracked values with |value| < tolerance and packs the
// rest, handing the buffers over to the returned Packed vector. The tracked
// order is preserved whatever the positions are.
// Complexity: O(n).
func (v *Indexed) CleanAndPack(tolerance float64) *Packed {
	kept := make([]float64, 0, v.n)
	number := 0
	for _, idx := range v.indices[:v.n] {
		value := v.elements[idx]
		v.elements[idx] = 0
		if math.Abs(value) >= tolerance {
			kept = append(kept, value)
			v.indices[number] = idx
			number++
		}
	}
	copy(v.elements, kept)
	v.n = number

	return &Packed{storage: v.release()}
}

// CreateUnpacked fills an empty vector from (index,value) pairs without
// duplicate or tiny-value checks. The capacity grows to fit the largest index.
func (v *Indexed) CreateUnpacked(indices []int, values []float64) {
	maxIndex := -1
	for _, idx := range indices {
		maxIndex = max(maxIndex, idx)
	}
	v.ensure(maxIndex + 1)
	copy(v.indices, indices)
	for k, idx := range indices {
		v.elements[idx] = values[k]
	}
	v.n = len(indices)
}

// CreateOneUnpackedElement makes v the singleton {index: value}. v must be empty.
func (v *Indexed) CreateOneUnpackedElement(index int, value float64) {
	v.ensure(index + 1)
	v.indices[0] = index
	v.elements[index] = value
	v.n = 1
}

// SetVector clears v and loads the given pairs, growing the capacity as
// needed and dropping tiny values. Repeated positions are summed; if any
// occurred the result is kept and ErrDuplicateIndex is returned.
// Errors: ErrLengthMismatch, ErrNegativeIndex (v left cleared), ErrDuplicateIndex.
func (v *Indexed) SetVector(indices []int, values []float64) error {
	v.Clear()
	if len(indices) != len(values) {
		return opError("Indexed.SetVector", ErrLengthMismatch, "indices=%d,values=%d", len(indices), len(values))
	}

	return v.load("Indexed.SetVector", indices, func(k int) float64 { return values[k] })
}

// SetConstant clears v and stores value at every listed position.
// Errors as SetVector.
func (v *Indexed) SetConstant(indices []int, value float64) error {
	v.Clear()

	return v.load("Indexed.SetConstant", indices, func(int) float64 { return value })
}

// SetFull clears v and loads values[i] at position i, skipping tiny values.
func (v *Indexed) SetFull(values []float64) error {
	v.Clear()
	v.ensure(len(values))
	for i, value := range values {
		if !isTiny(value) {
			v.QuickInsert(i, value)
		}
	}

	return nil
}

// load merges pairs into v: checks positions, grows, sums duplicates and
// cleans the ones that cancelled.
func (v *Indexed) load(op string, indices []int, valueAt func(int) float64) error {
	maxIndex := -1
	for _, idx := range indices {
		if idx < 0 {
			return opError(op, ErrNegativeIndex, "index=%d", idx)
		}
		maxIndex = max(maxIndex, idx)
	}
	v.ensure(maxIndex + 1)

	duplicates := 0
	needClean := false
	for k, idx := range indices {
		value := valueAt(k)
		if v.elements[idx] != 0 {
			duplicates++
			v.elements[idx] += value
			if isTiny(v.elements[idx]) {
				needClean = true
			}
		} else if !isTiny(value) {
			v.QuickInsert(idx, value)
		}
	}
	if needClean {
		v.Clean(TinyElement)
	}
	if duplicates > 0 {
		return opError(op, ErrDuplicateIndex, "duplicates=%d", duplicates)
	}

	return nil
}

// Append merges the tracked entries of other (either layout) into v.
// Positions already present in v are summed and reported as ErrDuplicateIndex
// after the merge completes.
func (v *Indexed) Append(other Vector) error {
	n := other.NumElements()
	indices := make([]int, n)
	values := make([]float64, n)
	for k := 0; k < n; k++ {
		indices[k], values[k] = other.Entry(k)
	}

	return v.load("Indexed.Append", indices, func(k int) float64 { return values[k] })
}

// AppendAdjusted copies every tracked entry of other to position
// index+adjustIndex without any duplicate or tiny-value checks. With zap the
// source is drained to empty. Growth covers the largest shifted position.
func (v *Indexed) AppendAdjusted(other Vector, adjustIndex int, zap bool) {
	if maxIndex := other.base().MaxIndex(); maxIndex >= 0 {
		v.ensure(maxIndex + adjustIndex + 1)
	}
	n := other.NumElements()
	for k := 0; k < n; k++ {
		idx, value := other.Entry(k)
		v.indices[v.n+k] = idx + adjustIndex
		v.elements[idx+adjustIndex] = value
	}
	v.n += n
	if zap {
		other.Clear()
	}
}

// SortIncrIndex orders the index list by increasing position.
func (v *Indexed) SortIncrIndex() { sort.Ints(v.indices[:v.n]) }

// SortDecrIndex orders the index list by decreasing position.
func (v *Indexed) SortDecrIndex() {
	sort.Sort(sort.Reverse(sort.IntSlice(v.indices[:v.n])))
}

// SortIncrElement orders the index list by increasing value.
func (v *Indexed) SortIncrElement() {
	idx := v.indices[:v.n]
	sort.SliceStable(idx, func(a, b int) bool { return v.elements[idx[a]] < v.elements[idx[b]] })
}

// SortDecrElement orders the index list by decreasing value.
func (v *Indexed) SortDecrElement() {
	idx := v.indices[:v.n]
	sort.SliceStable(idx, func(a, b int) bool { return v.elements[idx[a]] > v.elements[idx[b]] })
}
