package netbasis_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netlp/netbasis"
	"github.com/katalvlaran/netlp/network"
	"github.com/katalvlaran/netlp/sparse"
)

func TestUpdateColumn_TwoNodeUnitRow(t *testing.T) {
	_, b := twoNode(t)
	region, err := sparse.NewIndexed(2)
	require.NoError(t, err)
	require.NoError(t, region.Insert(1, 1))

	// Row 1 feeds node 1 (sign -1) and then node 0 (sign +1).
	got := b.UpdateColumn(region, 1)
	require.Equal(t, -1.0, got)
	require.Equal(t, []float64{1, -1}, region.Dense())
	require.ElementsMatch(t, []int{0, 1}, region.Indices())
	require.NoError(t, sparse.CheckClean(region))
	require.NoError(t, b.Workspace().Check())
}

func TestUpdateColumn_PackedMatchesIndexed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := randomNetwork(t, rng, 9, 30)
	basic := network.SlackBasis(m)
	b, err := netbasis.Bootstrap(basic, 9, netbasis.WithChecks(true))
	require.NoError(t, err)
	region, err := sparse.NewIndexed(9)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		pivotRandomly(t, rng, basic, b, region)
	}

	for trial := 0; trial < 20; trial++ {
		rhs := randomVector(rng, 9)

		dense := append([]float64(nil), rhs...)
		nDense := b.UpdateColumnDense(dense)

		indexed, err := sparse.NewIndexed(9)
		require.NoError(t, err)
		require.NoError(t, indexed.SetFull(rhs))
		pivot := rng.Intn(9)
		got := b.UpdateColumn(indexed, pivot)
		require.Equal(t, dense[pivot], got)
		require.Equal(t, nDense, indexed.NumElements())
		require.Equal(t, dense, sparse.ToDense(indexed, 9))
		require.NoError(t, sparse.CheckClean(indexed))

		packed := fullPacked(t, rhs)
		b.UpdateColumn(packed, -1)
		require.Equal(t, dense, sparse.ToDense(packed, 9))
		require.NoError(t, sparse.CheckClean(packed))
	}
}

func TestUpdateColumnTranspose_PackedMatchesIndexed(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := randomNetwork(t, rng, 10, 35)
	basic := network.SlackBasis(m)
	b, err := netbasis.Bootstrap(basic, 10, netbasis.WithChecks(true))
	require.NoError(t, err)
	region, err := sparse.NewIndexed(10)
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		pivotRandomly(t, rng, basic, b, region)
	}

	for trial := 0; trial < 20; trial++ {
		c := randomVector(rng, 10)

		dense := append([]float64(nil), c...)
		nDense := b.UpdateColumnTransposeDense(dense)

		indexed, err := sparse.NewIndexed(10)
		require.NoError(t, err)
		require.NoError(t, indexed.SetFull(c))
		require.Equal(t, nDense, b.UpdateColumnTranspose(indexed))
		require.Equal(t, dense, sparse.ToDense(indexed, 10))
		require.NoError(t, sparse.CheckClean(indexed))

		packed := fullPacked(t, c)
		require.Equal(t, nDense, b.UpdateColumnTranspose(packed))
		require.Equal(t, dense, sparse.ToDense(packed, 10))
		require.NoError(t, sparse.CheckClean(packed))
	}
}

func TestUpdateColumn_PairFastPath(t *testing.T) {
	// Chain root ← 0 ← 1 ← 2 built from arcs; column 2→0 cancels at node 0.
	m, err := network.NewMatrix(3, []network.Arc{
		{From: network.Root, To: 0}, {From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0},
	})
	require.NoError(t, err)
	basic, err := network.NewBasic(m, []int{0, 1, 2})
	require.NoError(t, err)
	b, err := netbasis.Bootstrap(basic, 3, netbasis.WithChecks(true))
	require.NoError(t, err)
	requireSameBasis(t, basic, b)

	region, err := sparse.NewIndexed(3)
	require.NoError(t, err)
	require.NoError(t, basic.Unpack(region, 3))
	b.UpdateColumn(region, -1)
	// 2→0 runs the path 0→1→2 backwards: positions 1 and 2 with weight -1.
	require.ElementsMatch(t, []int{1, 2}, region.Indices())
	require.Equal(t, -1.0, region.Value(1))
	require.Equal(t, -1.0, region.Value(2))
	require.NoError(t, b.Workspace().Check())
}

func TestUpdateColumn_UnequalPairTakesGeneralPath(t *testing.T) {
	_, b := twoNode(t, netbasis.WithChecks(true))
	region, err := sparse.NewIndexed(2)
	require.NoError(t, err)
	require.NoError(t, region.SetVector([]int{1, 0}, []float64{3, -1}))

	dense := []float64{-1, 3}
	b.UpdateColumnDense(dense)
	b.UpdateColumn(region, -1)
	require.Equal(t, dense, sparse.ToDense(region, 2))
}

func TestSolves_AfterRandomPivots(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		rng := rand.New(rand.NewSource(seed))
		rows := 6 + rng.Intn(10)
		m := randomNetwork(t, rng, rows, 4*rows)
		basic := network.SlackBasis(m)
		b, err := netbasis.Bootstrap(basic, rows, netbasis.WithChecks(true))
		require.NoError(t, err)
		region, err := sparse.NewIndexed(rows)
		require.NoError(t, err)

		for it := 0; it < 5*rows; it++ {
			pivotRandomly(t, rng, basic, b, region)
			requireSameBasis(t, basic, b)
			requireSolves(t, basic, b, randomVector(rng, rows), randomVector(rng, rows))
		}
	}
}

func TestUpdateColumnDense_ShortRegionPanics(t *testing.T) {
	_, b := twoNode(t)
	require.Panics(t, func() { b.UpdateColumnDense([]float64{1}) })
	require.Panics(t, func() { b.UpdateColumnTransposeDense(nil) })
}

func TestUpdateColumn_GrowsSmallRegion(t *testing.T) {
	_, b := twoNode(t)
	region, err := sparse.NewIndexed(0)
	require.NoError(t, err)
	require.NoError(t, region.Insert(0, 2))
	b.UpdateColumn(region, -1)
	require.Equal(t, 2, region.Capacity())
	require.Equal(t, []float64{2, 0}, region.Dense())
}

func fullPacked(t *testing.T, values []float64) *sparse.Packed {
	t.Helper()
	p, err := sparse.NewPacked(len(values))
	require.NoError(t, err)
	for i, v := range values {
		if v != 0 {
			p.QuickInsert(i, v)
		}
	}

	return p
}
