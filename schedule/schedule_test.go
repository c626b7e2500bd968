package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bandimrouting/mvrp/schedule"
)

func TestTimestamps_AccumulatesTravelAndServiceTime(t *testing.T) {
	start := time.Date(2026, 7, 29, 8, 0, 0, 0, time.UTC)
	routes := [][]schedule.Stop{
		{
			{UID: "a", Demand: 1},
			{UID: "b", Demand: 2},
		},
	}
	travel := 10 * time.Minute
	visit := 5 * time.Minute

	out := schedule.Timestamps(routes, start, travel, visit)
	require.Len(t, out, 1)
	require.Len(t, out[0], 2)

	require.Equal(t, "a", out[0][0].UID)
	require.Equal(t, start.Add(travel), out[0][0].At)

	wantB := start.Add(travel).Add(visit * 1).Add(travel)
	require.Equal(t, "b", out[0][1].UID)
	require.Equal(t, wantB, out[0][1].At)
}

func TestTimestamps_EmptyRouteYieldsNoVisits(t *testing.T) {
	start := time.Now()
	out := schedule.Timestamps([][]schedule.Stop{{}}, start, time.Minute, time.Minute)
	require.Len(t, out, 1)
	require.Empty(t, out[0])
}

func TestTimestamps_IndependentRoutesAllStartFromSameClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	routes := [][]schedule.Stop{
		{{UID: "x", Demand: 0}},
		{{UID: "y", Demand: 0}},
	}
	out := schedule.Timestamps(routes, start, time.Minute, time.Minute)
	require.Equal(t, out[0][0].At, out[1][0].At)
}
