package netbasis_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netlp/netbasis"
	"github.com/katalvlaran/netlp/network"
	"github.com/katalvlaran/netlp/sparse"
)

const residualTol = 1e-9

// twoNode is the network of rows 0,1 with arcs 1→0 (seq 0) and 0→1 (seq 1);
// slacks are seq 2 (row 0) and seq 3 (row 1). The basis holds slack 0 at
// position 0 and arc 1→0 at position 1:
//
//	root ← 0 (sign +1) ← 1 (sign -1)
func twoNode(t *testing.T, opts ...netbasis.Option) (*network.Basic, *netbasis.Basis) {
	t.Helper()
	m, err := network.NewMatrix(2, []network.Arc{{From: 1, To: 0}, {From: 0, To: 1}})
	require.NoError(t, err)
	basic, err := network.NewBasic(m, []int{2, 0})
	require.NoError(t, err)
	b, err := netbasis.Bootstrap(basic, 2, opts...)
	require.NoError(t, err)

	return basic, b
}

// randomNetwork draws arcs between random distinct endpoints, roots included.
func randomNetwork(t testing.TB, rng *rand.Rand, rows, arcs int) *network.Matrix {
	t.Helper()
	list := make([]network.Arc, 0, arcs)
	for len(list) < arcs {
		from, to := rng.Intn(rows+1)-1, rng.Intn(rows+1)-1
		if from == to {
			continue
		}
		list = append(list, network.Arc{From: from, To: to})
	}
	m, err := network.NewMatrix(rows, list)
	require.NoError(t, err)

	return m
}

// pivotRandomly makes a random nonbasic sequence basic at a random position
// of its cycle, the way a simplex iteration would.
func pivotRandomly(t testing.TB, rng *rand.Rand, basic *network.Basic, b *netbasis.Basis, region *sparse.Indexed) {
	t.Helper()
	var enter int
	for {
		enter = rng.Intn(basic.Sequences())
		if !basic.IsBasic(enter) {
			break
		}
	}
	require.NoError(t, basic.Unpack(region, enter))
	b.UpdateColumn(region, -1)
	cycle := append([]int(nil), region.Indices()...)
	region.Clear()
	require.NotEmpty(t, cycle)

	leave := cycle[rng.Intn(len(cycle))]
	require.NoError(t, b.ReplaceColumn(region, enter, leave))
	require.NoError(t, basic.SetPivotVariable(leave, enter))
	require.Equal(t, 0, region.NumElements())
}

// requireSameBasis checks the forest reconstructs the model's basis matrix.
func requireSameBasis(t *testing.T, basic *network.Basic, b *netbasis.Basis) {
	t.Helper()
	require.NoError(t, b.Check())
	require.True(t, mat.Equal(basic.BasisDense(), b.Dense()), "forest:\n%s", b)
}

// requireSolves checks B·FTRAN(rhs) = rhs and BTRAN(c)ᵀ·B = cᵀ densely.
func requireSolves(t *testing.T, basic *network.Basic, b *netbasis.Basis, rhs, c []float64) {
	t.Helper()
	B := basic.BasisDense()
	n := b.Rows()

	x := append([]float64(nil), rhs...)
	b.UpdateColumnDense(x)
	var bx mat.VecDense
	bx.MulVec(B, mat.NewVecDense(n, x))
	require.True(t, floats.EqualApprox(rhs, bx.RawVector().Data, residualTol), "B·x=%v want %v", bx.RawVector().Data, rhs)

	y := append([]float64(nil), c...)
	b.UpdateColumnTransposeDense(y)
	var yB mat.VecDense
	yB.MulVec(B.T(), mat.NewVecDense(n, y))
	require.True(t, floats.EqualApprox(c, yB.RawVector().Data, residualTol), "yᵀB=%v want %v", yB.RawVector().Data, c)

	// Duality: y·rhs = c·x.
	require.InDelta(t, floats.Dot(y, rhs), floats.Dot(c, x), residualTol)
}

func randomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		if rng.Intn(3) > 0 {
			v[i] = float64(rng.Intn(19) - 9)
		}
	}

	return v
}
