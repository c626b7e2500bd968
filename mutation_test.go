package routing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapMutate_NeverMovesCustomerAcrossParts(t *testing.T) {
	g := newRNG(21)
	ind := NewIndividual([][]int{{1, 2, 3}, {4, 5}}, 0)
	before := ind.Flatten()

	mutated := SwapMutate(ind, 1.0, g)

	require.Len(t, mutated.Chromo[0], 3)
	require.Len(t, mutated.Chromo[1], 2)
	after := mutated.Flatten()
	requirePermutation(t, mutated.Chromo, 6)

	beforeSet := make(map[int]bool)
	for _, c := range before {
		beforeSet[c] = true
	}
	for _, c := range after {
		require.True(t, beforeSet[c])
	}
}

func TestSwapMutate_ZeroRateIsNoOp(t *testing.T) {
	g := newRNG(22)
	ind := NewIndividual([][]int{{1, 2, 3}}, 0)
	before := append([]int(nil), ind.Chromo[0]...)
	mutated := SwapMutate(ind, 0, g)
	require.Equal(t, before, mutated.Chromo[0])
}

func TestSwapMutate_SkipsSingletonParts(t *testing.T) {
	g := newRNG(23)
	ind := NewIndividual([][]int{{1}, {}}, 0)
	require.NotPanics(t, func() { SwapMutate(ind, 1.0, g) })
}

func TestSwapMutate_DoesNotMutateParent(t *testing.T) {
	g := newRNG(24)
	ind := NewIndividual([][]int{{1, 2, 3, 4, 5}}, 0)
	before := append([]int(nil), ind.Chromo[0]...)
	SwapMutate(ind, 1.0, g)
	require.Equal(t, before, ind.Chromo[0], "SwapMutate must not mutate its input in place")
}
