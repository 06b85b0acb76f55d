package network

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Basic is a Matrix together with the sequence basic at every position.
// It is the column source of a network basis: Unpack comes from the Matrix,
// PivotVariable from the position list.
type Basic struct {
	*Matrix
	pivots  []int
	inBasis []bool
}

// NewBasic checks that pivots names Rows() distinct valid sequences.
// Errors: ErrDimensionMismatch, ErrSequenceOutOfRange, ErrDuplicateBasic.
func NewBasic(m *Matrix, pivots []int) (*Basic, error) {
	if len(pivots) != m.rows {
		return nil, fmt.Errorf("NewBasic: %d pivots for %d rows: %w", len(pivots), m.rows, ErrDimensionMismatch)
	}
	b := &Basic{
		Matrix:  m,
		pivots:  append([]int(nil), pivots...),
		inBasis: make([]bool, m.Sequences()),
	}
	for p, seq := range pivots {
		if seq < 0 || seq >= m.Sequences() {
			return nil, fmt.Errorf("NewBasic: position %d seq=%d: %w", p, seq, ErrSequenceOutOfRange)
		}
		if b.inBasis[seq] {
			return nil, fmt.Errorf("NewBasic: position %d seq=%d: %w", p, seq, ErrDuplicateBasic)
		}
		b.inBasis[seq] = true
	}

	return b, nil
}

// SlackBasis returns the all-slack basis of m (position r holds the slack of row r).
func SlackBasis(m *Matrix) *Basic {
	pivots := make([]int, m.rows)
	for r := range pivots {
		pivots[r] = m.Columns() + r
	}
	b, _ := NewBasic(m, pivots) // distinct and in range by construction

	return b
}

// PivotVariable returns the sequence basic at position.
func (b *Basic) PivotVariable(position int) int { return b.pivots[position] }

// Pivots returns a copy of the position → sequence list.
func (b *Basic) Pivots() []int { return append([]int(nil), b.pivots...) }

// IsBasic reports whether seq is basic.
func (b *Basic) IsBasic(seq int) bool {
	return seq >= 0 && seq < len(b.inBasis) && b.inBasis[seq]
}

// SetPivotVariable makes seq basic at position, releasing the previous one.
func (b *Basic) SetPivotVariable(position, seq int) error {
	if position < 0 || position >= len(b.pivots) {
		return fmt.Errorf("SetPivotVariable: position=%d: %w", position, ErrPositionOutOfRange)
	}
	if seq < 0 || seq >= len(b.inBasis) {
		return fmt.Errorf("SetPivotVariable: seq=%d: %w", seq, ErrSequenceOutOfRange)
	}
	old := b.pivots[position]
	if seq == old {
		return nil
	}
	if b.inBasis[seq] {
		return fmt.Errorf("SetPivotVariable: seq=%d: %w", seq, ErrDuplicateBasic)
	}
	b.inBasis[old] = false
	b.inBasis[seq] = true
	b.pivots[position] = seq

	return nil
}

// BasisDense returns the Rows()×Rows() basis matrix B whose column p is the
// column of PivotVariable(p).
func (b *Basic) BasisDense() *mat.Dense {
	d := mat.NewDense(b.rows, b.rows, nil)
	for p, seq := range b.pivots {
		rows, vals, _ := b.Column(seq)
		for k, r := range rows {
			d.Set(r, p, vals[k])
		}
	}

	return d
}

// Costs gathers c[PivotVariable(p)] for every position p.
func (b *Basic) Costs(c []float64) ([]float64, error) {
	if len(c) != b.Sequences() {
		return nil, fmt.Errorf("Costs: len(c)=%d, want %d: %w", len(c), b.Sequences(), ErrDimensionMismatch)
	}
	out := make([]float64, len(b.pivots))
	for p, seq := range b.pivots {
		out[p] = c[seq]
	}

	return out, nil
}

// Scatter expands basic values xB (by position) into a full-length solution.
func (b *Basic) Scatter(xB []float64) ([]float64, error) {
	if len(xB) != len(b.pivots) {
		return nil, fmt.Errorf("Scatter: len(xB)=%d, want %d: %w", len(xB), len(b.pivots), ErrDimensionMismatch)
	}
	out := make([]float64, b.Sequences())
	for p, seq := range b.pivots {
		out[seq] = xB[p]
	}

	return out, nil
}
