package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netlp/network"
	"github.com/katalvlaran/netlp/sparse"
)

// triangle: rows 0,1,2; arcs 0→1, 1→2, 2→root, root→0.
func triangle(t *testing.T) *network.Matrix {
	t.Helper()
	m, err := network.NewMatrix(3, []network.Arc{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 2, To: network.Root},
		{From: network.Root, To: 0},
	})
	require.NoError(t, err)

	return m
}

func TestNewMatrix_Validation(t *testing.T) {
	_, err := network.NewMatrix(0, nil)
	require.ErrorIs(t, err, network.ErrBadShape)

	_, err = network.NewMatrix(2, []network.Arc{{From: 0, To: 2}})
	require.ErrorIs(t, err, network.ErrRowOutOfRange)

	_, err = network.NewMatrix(2, []network.Arc{{From: -2, To: 1}})
	require.ErrorIs(t, err, network.ErrRowOutOfRange)

	_, err = network.NewMatrix(2, []network.Arc{{From: 1, To: 1}})
	require.ErrorIs(t, err, network.ErrLoop)

	_, err = network.NewMatrix(2, []network.Arc{{From: network.Root, To: network.Root}})
	require.ErrorIs(t, err, network.ErrLoop)
}

func TestMatrix_Column(t *testing.T) {
	m := triangle(t)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Columns())
	require.Equal(t, 7, m.Sequences())

	rows, vals, err := m.Column(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, rows)
	require.Equal(t, []float64{-1, 1}, vals)

	rows, vals, err = m.Column(2) // 2→root
	require.NoError(t, err)
	require.Equal(t, []int{2}, rows)
	require.Equal(t, []float64{-1}, vals)

	rows, vals, err = m.Column(5) // slack of row 1
	require.NoError(t, err)
	require.Equal(t, []int{1}, rows)
	require.Equal(t, []float64{1}, vals)
	require.True(t, m.IsSlack(5))

	_, _, err = m.Column(7)
	require.ErrorIs(t, err, network.ErrSequenceOutOfRange)
}

func TestMatrix_Unpack(t *testing.T) {
	m := triangle(t)
	v, err := sparse.NewIndexed(3)
	require.NoError(t, err)
	require.NoError(t, m.Unpack(v, 1))
	require.Equal(t, []int{1, 2}, v.Indices())
	require.Equal(t, []float64{0, -1, 1}, v.Dense())

	p, err := sparse.NewPacked(0)
	require.NoError(t, err)
	require.NoError(t, m.UnpackPacked(p, 3))
	require.Equal(t, []int{0}, p.Indices())
	require.Equal(t, []float64{1}, p.Values())

	require.ErrorIs(t, m.Unpack(v, -1), network.ErrSequenceOutOfRange)
}

func TestMatrix_DenseAgreesWithMulVec(t *testing.T) {
	m := triangle(t)
	x := []float64{1, 2, 3, 4, 5, 6, 7}
	got, err := m.MulVec(x)
	require.NoError(t, err)

	var want mat.VecDense
	want.MulVec(m.Dense(), mat.NewVecDense(len(x), x))
	require.Equal(t, want.RawVector().Data, got)

	y := []float64{1, -1, 2}
	gotT, err := m.TransMulVec(y)
	require.NoError(t, err)
	var wantT mat.VecDense
	wantT.MulVec(m.Dense().T(), mat.NewVecDense(len(y), y))
	require.Equal(t, wantT.RawVector().Data, gotT)

	_, err = m.MulVec(x[:2])
	require.ErrorIs(t, err, network.ErrDimensionMismatch)
	_, err = m.TransMulVec(x)
	require.ErrorIs(t, err, network.ErrDimensionMismatch)
}
