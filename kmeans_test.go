package routing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKmeans_AssignsEveryPointALabel(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0}, {X: 0.1, Y: 0.1}, {X: -0.1, Y: 0},
		{X: 10, Y: 10}, {X: 10.1, Y: 9.9}, {X: 9.9, Y: 10.1},
	}
	g := newRNG(5)
	labels := kmeans(pts, 2, g)
	require.Len(t, labels, len(pts))
	for _, l := range labels {
		require.GreaterOrEqual(t, l, 0)
		require.Less(t, l, 2)
	}
	// the two tight clusters should not share a label.
	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[0], labels[2])
	require.Equal(t, labels[3], labels[4])
	require.Equal(t, labels[3], labels[5])
	require.NotEqual(t, labels[0], labels[3])
}

func TestKmeans_KGreaterOrEqualNIsDegenerateNotPanic(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	g := newRNG(6)
	require.NotPanics(t, func() { kmeans(pts, 5, g) })
}

func TestKmeans_ZeroKReturnsAllZeroLabels(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	g := newRNG(8)
	labels := kmeans(pts, 0, g)
	require.Equal(t, []int{0, 0}, labels)
}
