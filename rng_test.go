package routing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNG_SameSeedIsDeterministic(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.intn(1000), b.intn(1000))
	}
}

func TestRNG_UniqueNReturnsDistinctValuesInRange(t *testing.T) {
	g := newRNG(9)
	vals := g.uniqueN(5, 15, 7)
	require.Len(t, vals, 7)
	seen := make(map[int]bool)
	for _, v := range vals {
		require.GreaterOrEqual(t, v, 5)
		require.Less(t, v, 15)
		require.False(t, seen[v])
		seen[v] = true
	}
}

func TestRNG_FlipCoinBoundaries(t *testing.T) {
	g := newRNG(10)
	require.False(t, g.flipCoin(0))
	require.True(t, g.flipCoin(1))
}

func TestRNG_ZeroSeedIsNonDeterministic(t *testing.T) {
	a := newRNG(0)
	b := newRNG(0)
	// both draw from the wall clock; extremely unlikely to collide on the
	// first 10 draws from two independently seeded generators.
	same := true
	for i := 0; i < 10; i++ {
		if a.intn(1 << 30) != b.intn(1<<30) {
			same = false
			break
		}
	}
	require.False(t, same)
}
