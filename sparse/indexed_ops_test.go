package sparse_test

import (
	"testing"

	"github.com/katalvlaran/netlp/sparse"
	"github.com/stretchr/testify/require"
)

// pair builds a = {0:2, 2:4} and b = {2:-4, 3:1}.
func pair(t *testing.T) (*sparse.Indexed, *sparse.Indexed) {
	t.Helper()
	a := newIndexed(t, 3)
	require.NoError(t, a.SetVector([]int{0, 2}, []float64{2, 4}))
	b := newIndexed(t, 4)
	require.NoError(t, b.SetVector([]int{2, 3}, []float64{-4, 1}))

	return a, b
}

func TestIndexed_Plus(t *testing.T) {
	a, b := pair(t)
	sum := a.Plus(b)
	// Position 2 cancels exactly and is removed.
	require.Equal(t, []float64{2, 0, 0, 1}, sparse.ToDense(sum, 4))
	require.Equal(t, 2, sum.NumElements())
	require.NoError(t, sparse.CheckClean(sum))
	// Operands are untouched.
	require.Equal(t, 4.0, a.Value(2))
}

func TestIndexed_Minus(t *testing.T) {
	a, b := pair(t)
	diff := a.Minus(b)
	require.Equal(t, []float64{2, 0, 8, -1}, sparse.ToDense(diff, 4))
	require.NoError(t, sparse.CheckClean(diff))
}

func TestIndexed_TimesDropsOneSided(t *testing.T) {
	a, b := pair(t)
	prod := a.Times(b)
	require.Equal(t, []int{2}, prod.Indices())
	require.Equal(t, -16.0, prod.Value(2))
	require.NoError(t, sparse.CheckClean(prod))
}

func TestIndexed_Quotient(t *testing.T) {
	a := newIndexed(t, 4)
	require.NoError(t, a.SetVector([]int{1}, []float64{6}))
	b := newIndexed(t, 4)
	require.NoError(t, b.SetVector([]int{1, 3}, []float64{3, 5}))

	q, err := a.Quotient(b)
	require.NoError(t, err)
	// 0/5 at position 3 is dropped.
	require.Equal(t, []float64{0, 2, 0, 0}, sparse.ToDense(q, 4))

	_, err = b.Quotient(a)
	require.ErrorIs(t, err, sparse.ErrZeroDivisor)
}

func TestIndexed_DivVectorUnchangedOnError(t *testing.T) {
	a, b := pair(t)
	require.ErrorIs(t, a.DivVector(b), sparse.ErrZeroDivisor)
	require.Equal(t, []float64{2, 0, 4}, sparse.ToDense(a, 3))
}

func TestIndexed_ScalarOps(t *testing.T) {
	v := newIndexed(t, 3)
	require.NoError(t, v.SetVector([]int{0, 2}, []float64{1, 3}))

	v.AddScalar(1)
	require.Equal(t, []float64{2, 0, 4}, sparse.ToDense(v, 3))
	v.SubScalar(2)
	// The tracked 0 is snapped to a really tiny value.
	require.Equal(t, sparse.ReallyTinyElement, v.Value(0))
	require.Equal(t, 2, v.NumElements())

	v.Scale(3)
	require.Equal(t, 6.0, v.Value(2))
	require.NoError(t, v.DivScalar(2))
	require.Equal(t, 3.0, v.Value(2))
	require.ErrorIs(t, v.DivScalar(0), sparse.ErrZeroDivisor)
}
