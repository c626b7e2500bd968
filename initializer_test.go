package routing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePoints(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: float64(i % 7), Y: float64((i * 3) % 5)}
	}
	return pts
}

func requirePermutation(t *testing.T, chromo [][]int, n int) {
	t.Helper()
	seen := make(map[int]bool)
	for _, part := range chromo {
		for _, c := range part {
			require.False(t, seen[c], "customer %d appears more than once", c)
			require.Greater(t, c, 0)
			require.Less(t, c, n)
			seen[c] = true
		}
	}
	require.Len(t, seen, n-1, "every customer 1..N-1 must appear exactly once")
}

func TestRandomSplitInitializer_ProducesPermutations(t *testing.T) {
	inst, err := NewInstance(samplePoints(20), 4, true, 0)
	require.NoError(t, err)
	ev, err := NewEvaluator(MinimiseTotalDistance, inst)
	require.NoError(t, err)
	g := newRNG(1)

	init, err := NewInitializer(RandomSplit, inst, ev, g)
	require.NoError(t, err)
	pop := init.Generate(10)
	require.Len(t, pop, 10)
	for _, ind := range pop {
		require.True(t, ind.Evaluated())
		require.Len(t, ind.Chromo, 4)
		requirePermutation(t, ind.Chromo, 20)
	}
}

func TestKMeansInitializer_ProducesPermutations(t *testing.T) {
	inst, err := NewInstance(samplePoints(30), 3, true, 0)
	require.NoError(t, err)
	ev, err := NewEvaluator(MinimiseTotalDistance, inst)
	require.NoError(t, err)
	g := newRNG(2)

	init, err := NewInitializer(KMeansRandomised, inst, ev, g)
	require.NoError(t, err)
	pop := init.Generate(8)
	require.Len(t, pop, 8)
	for _, ind := range pop {
		require.True(t, ind.Evaluated())
		require.Len(t, ind.Chromo, 3)
		requirePermutation(t, ind.Chromo, 30)
	}
}

func TestNewInitializer_UnknownKindErrors(t *testing.T) {
	inst, err := NewInstance(samplePoints(5), 1, true, 0)
	require.NoError(t, err)
	ev, err := NewEvaluator(MinimiseTotalDistance, inst)
	require.NoError(t, err)
	g := newRNG(3)
	_, err = NewInitializer(InitializerKind(99), inst, ev, g)
	require.Error(t, err)
}

func TestKMeansInitializer_HandlesMoreClustersThanCustomers(t *testing.T) {
	// K > N-1: degenerate kmeans path (k >= n), still must be a valid
	// permutation split across exactly k parts.
	inst, err := NewInstance(samplePoints(4), 6, true, 0)
	require.NoError(t, err)
	ev, err := NewEvaluator(MinimiseTotalDistance, inst)
	require.NoError(t, err)
	g := newRNG(4)

	init, err := NewInitializer(KMeansRandomised, inst, ev, g)
	require.NoError(t, err)
	pop := init.Generate(2)
	for _, ind := range pop {
		require.Len(t, ind.Chromo, 6)
		requirePermutation(t, ind.Chromo, 4)
	}
}
