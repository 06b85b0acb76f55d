package sparse

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// ApproxEqual compares a and b position by position, layout-independent.
// Positions present on one side only compare against 0. Returns the smallest
// mismatching position, or -1 when every position agrees within tolerance
// (absolute or relative).
// Complexity: O(nnz(a)+nnz(b) log).
func ApproxEqual(a, b Vector, tolerance float64) int {
	av, bv := entries(a), entries(b)
	positions := make([]int, 0, len(av)+len(bv))
	for idx := range av {
		positions = append(positions, idx)
	}
	for idx := range bv {
		if _, ok := av[idx]; !ok {
			positions = append(positions, idx)
		}
	}
	sort.Ints(positions)
	for _, idx := range positions {
		x, y := av[idx], bv[idx]
		if !scalar.EqualWithinAbsOrRel(x, y, tolerance, tolerance) {
			return idx
		}
	}

	return -1
}

// Equal reports whether a and b track the same number of entries and agree
// at every position within EqualTolerance.
func Equal(a, b Vector) bool {
	if a.NumElements() != b.NumElements() {
		return false
	}

	return ApproxEqual(a, b, EqualTolerance) < 0
}

// Dot returns the inner product of two vectors of either layout.
func Dot(a, b Vector) float64 {
	bv := entries(b)
	sum := 0.0
	for k := 0; k < a.NumElements(); k++ {
		idx, value := a.Entry(k)
		sum += value * bv[idx]
	}

	return sum
}

// ToDense writes v into a dense slice of length n; positions ≥ n are ignored.
func ToDense(v Vector, n int) []float64 {
	out := make([]float64, n)
	for k := 0; k < v.NumElements(); k++ {
		if idx, value := v.Entry(k); idx < n {
			out[idx] += value
		}
	}

	return out
}

func entries(v Vector) map[int]float64 {
	m := make(map[int]float64, v.NumElements())
	for k := 0; k < v.NumElements(); k++ {
		idx, value := v.Entry(k)
		m[idx] += value
	}

	return m
}

// CheckClear verifies that v is empty and every buffer slot is zero.
func CheckClear(v Vector) error {
	s := v.base()
	if s.n != 0 {
		return opError("CheckClear", ErrCorrupt, "n=%d", s.n)
	}
	for i, value := range s.elements {
		if value != 0 {
			return opError("CheckClear", ErrCorrupt, "slot=%d", i)
		}
	}

	return nil
}

// CheckClean verifies the layout invariant: every tracked entry is nonzero
// and every other slot is zero. Indexed vectors must not track a position twice.
func CheckClean(v Vector) error {
	s := v.base()
	if v.IsPacked() {
		for k, value := range s.elements {
			if (k < s.n) != (value != 0) {
				return opError("CheckClean", ErrCorrupt, "slot=%d", k)
			}
		}

		return nil
	}
	seen := make(map[int]bool, s.n)
	for _, idx := range s.indices[:s.n] {
		if idx < 0 || idx >= len(s.elements) || seen[idx] || s.elements[idx] == 0 {
			return opError("CheckClean", ErrCorrupt, "index=%d", idx)
		}
		seen[idx] = true
	}
	for i, value := range s.elements {
		if value != 0 && !seen[i] {
			return opError("CheckClean", ErrCorrupt, "slot=%d", i)
		}
	}

	return nil
}

// Norm2 returns the Euclidean norm of the tracked values.
func Norm2(v Vector) float64 {
	sum := 0.0
	for k := 0; k < v.NumElements(); k++ {
		_, value := v.Entry(k)
		sum += value * value
	}

	return math.Sqrt(sum)
}
