package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netlp/network"
)

func TestNewBasic_Validation(t *testing.T) {
	m := triangle(t)
	_, err := network.NewBasic(m, []int{0, 1})
	require.ErrorIs(t, err, network.ErrDimensionMismatch)

	_, err = network.NewBasic(m, []int{0, 1, 9})
	require.ErrorIs(t, err, network.ErrSequenceOutOfRange)

	_, err = network.NewBasic(m, []int{0, 1, 1})
	require.ErrorIs(t, err, network.ErrDuplicateBasic)
}

func TestBasic_SlackBasisAndPivot(t *testing.T) {
	m := triangle(t)
	b := network.SlackBasis(m)
	require.Equal(t, []int{4, 5, 6}, b.Pivots())
	require.True(t, b.IsBasic(5))
	require.False(t, b.IsBasic(0))

	require.NoError(t, b.SetPivotVariable(1, 0))
	require.Equal(t, 0, b.PivotVariable(1))
	require.False(t, b.IsBasic(5))
	require.True(t, b.IsBasic(0))

	require.ErrorIs(t, b.SetPivotVariable(2, 0), network.ErrDuplicateBasic)
	require.ErrorIs(t, b.SetPivotVariable(3, 1), network.ErrPositionOutOfRange)
	require.ErrorIs(t, b.SetPivotVariable(0, 99), network.ErrSequenceOutOfRange)
	require.NoError(t, b.SetPivotVariable(1, 0))
}

func TestBasic_BasisDense(t *testing.T) {
	m := triangle(t)
	b, err := network.NewBasic(m, []int{3, 0, 1}) // root→0, 0→1, 1→2
	require.NoError(t, err)

	d := b.BasisDense()
	// column 0: +1 at row 0; column 1: -1 row 0, +1 row 1; column 2: -1 row 1, +1 row 2
	require.Equal(t, []float64{
		1, -1, 0,
		0, 1, -1,
		0, 0, 1,
	}, d.RawMatrix().Data)
}

func TestBasic_CostsAndScatter(t *testing.T) {
	m := triangle(t)
	b, err := network.NewBasic(m, []int{3, 0, 6})
	require.NoError(t, err)

	c, err := b.Costs([]float64{10, 20, 30, 40, 0, 0, 7})
	require.NoError(t, err)
	require.Equal(t, []float64{40, 10, 7}, c)

	x, err := b.Scatter([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, 0, 1, 0, 0, 3}, x)

	_, err = b.Costs(nil)
	require.ErrorIs(t, err, network.ErrDimensionMismatch)
	_, err = b.Scatter(nil)
	require.ErrorIs(t, err, network.ErrDimensionMismatch)
}
