// SPDX-License-Identifier: MIT
// Package network: node–arc incidence matrix with slack columns.
//
// Signs: −1 at the tail (From), +1 at the head (To); slacks carry +1.
// Root endpoints (−1) are structural: they contribute no row entry.

package network

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netlp/sparse"
)

// Root is the endpoint value that attaches an arc to the virtual root.
const Root = -1

const (
	tailMark  = -1.0 // at From
	headMark  = +1.0 // at To
	slackMark = +1.0 // at the slack's own row
)

// Arc is a directed arc between two rows. Either end may be Root.
type Arc struct {
	From int
	To   int
}

// Matrix is an immutable network matrix.
type Matrix struct {
	rows int
	arcs []Arc
}

// NewMatrix validates and copies the arc list.
// Stage 1 (Validate): rows ≥ 1, every endpoint in [Root, rows), no loops.
// Stage 2 (Finalize): copy arcs so later caller edits cannot leak in.
// Errors: ErrBadShape, ErrRowOutOfRange, ErrLoop.
func NewMatrix(rows int, arcs []Arc) (*Matrix, error) {
	if rows < 1 {
		return nil, fmt.Errorf("NewMatrix: rows=%d: %w", rows, ErrBadShape)
	}
	for j, a := range arcs {
		if a.From < Root || a.From >= rows || a.To < Root || a.To >= rows {
			return nil, fmt.Errorf("NewMatrix: arc %d (%d→%d): %w", j, a.From, a.To, ErrRowOutOfRange)
		}
		if a.From == a.To {
			return nil, fmt.Errorf("NewMatrix: arc %d (%d→%d): %w", j, a.From, a.To, ErrLoop)
		}
	}

	return &Matrix{rows: rows, arcs: append([]Arc(nil), arcs...)}, nil
}

// Rows returns the number of rows (nodes other than the root).
func (m *Matrix) Rows() int { return m.rows }

// Columns returns the number of arc columns.
func (m *Matrix) Columns() int { return len(m.arcs) }

// Sequences returns the number of columns including slacks.
func (m *Matrix) Sequences() int { return len(m.arcs) + m.rows }

// IsSlack reports whether seq names a slack column.
func (m *Matrix) IsSlack(seq int) bool { return seq >= len(m.arcs) }

// Arc returns the endpoints of sequence seq. A slack of row r is reported as
// the arc Root→r, which has the same column.
func (m *Matrix) Arc(seq int) (Arc, error) {
	if seq < 0 || seq >= m.Sequences() {
		return Arc{}, fmt.Errorf("Arc: seq=%d: %w", seq, ErrSequenceOutOfRange)
	}
	if m.IsSlack(seq) {
		return Arc{From: Root, To: seq - len(m.arcs)}, nil
	}

	return m.arcs[seq], nil
}

// Column returns the rows and coefficients of sequence seq, tail first.
func (m *Matrix) Column(seq int) ([]int, []float64, error) {
	a, err := m.Arc(seq)
	if err != nil {
		return nil, nil, fmt.Errorf("Column: %w", err)
	}
	rows := make([]int, 0, 2)
	vals := make([]float64, 0, 2)
	if a.From != Root {
		rows, vals = append(rows, a.From), append(vals, tailMark)
	}
	if a.To != Root {
		mark := headMark
		if m.IsSlack(seq) {
			mark = slackMark
		}
		rows, vals = append(rows, a.To), append(vals, mark)
	}

	return rows, vals, nil
}

// Unpack adds the column of sequence seq into dst (tail entry first).
func (m *Matrix) Unpack(dst *sparse.Indexed, seq int) error {
	rows, vals, err := m.Column(seq)
	if err != nil {
		return fmt.Errorf("Unpack: %w", err)
	}
	for k, r := range rows {
		if err = dst.Add(r, vals[k]); err != nil {
			return fmt.Errorf("Unpack: %w", err)
		}
	}

	return nil
}

// UnpackPacked appends the column of sequence seq to dst.
func (m *Matrix) UnpackPacked(dst *sparse.Packed, seq int) error {
	rows, vals, err := m.Column(seq)
	if err != nil {
		return fmt.Errorf("UnpackPacked: %w", err)
	}
	for k, r := range rows {
		dst.QuickInsert(r, vals[k])
	}

	return nil
}

// Dense exports the full matrix, Rows() × Sequences().
// Complexity: O(rows·(columns+rows)).
func (m *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.Sequences(), nil)
	for seq := 0; seq < m.Sequences(); seq++ {
		rows, vals, _ := m.Column(seq) // seq is in range
		for k, r := range rows {
			d.Set(r, seq, vals[k])
		}
	}

	return d
}

// MulVec returns A·x for x of length Sequences().
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.Sequences() {
		return nil, fmt.Errorf("MulVec: len(x)=%d, want %d: %w", len(x), m.Sequences(), ErrDimensionMismatch)
	}
	out := make([]float64, m.rows)
	for seq, xv := range x {
		if xv == 0 {
			continue
		}
		rows, vals, _ := m.Column(seq)
		for k, r := range rows {
			out[r] += vals[k] * xv
		}
	}

	return out, nil
}

// TransMulVec returns Aᵀ·y for y of length Rows().
func (m *Matrix) TransMulVec(y []float64) ([]float64, error) {
	if len(y) != m.rows {
		return nil, fmt.Errorf("TransMulVec: len(y)=%d, want %d: %w", len(y), m.rows, ErrDimensionMismatch)
	}
	out := make([]float64, m.Sequences())
	for seq := range out {
		rows, vals, _ := m.Column(seq)
		for k, r := range rows {
			out[seq] += vals[k] * y[r]
		}
	}

	return out, nil
}
