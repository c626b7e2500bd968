package routing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	routing "github.com/bandimrouting/mvrp"
)

func demoLocations() []routing.Location {
	return []routing.Location{
		{UID: "customer-a", Latitude: 1, Longitude: 0},
		{UID: "depot", Latitude: 0, Longitude: 0, Depot: true},
		{UID: "customer-b", Latitude: 0, Longitude: 1},
		{UID: "customer-c", Latitude: -1, Longitude: -1},
	}
}

func TestSolve_ReturnsOneRoutePerWorkerCoveringAllUIDs(t *testing.T) {
	cfg := routing.NewSolverConfig()
	cfg.NumGenerations = 10
	cfg.RandomSeed = 5

	res, err := routing.Solve(demoLocations(), 2, cfg)
	require.NoError(t, err)
	require.Len(t, res.Routes, 2)

	seen := make(map[string]bool)
	for _, route := range res.Routes {
		require.GreaterOrEqual(t, len(route), 2)
		require.Equal(t, "depot", route[0], "depot UID must be the first entry of every route")
		require.Equal(t, "depot", route[len(route)-1], "depot UID must be the last entry of every route")
		for _, uid := range route[1 : len(route)-1] {
			require.False(t, seen[uid])
			seen[uid] = true
		}
	}
	require.Len(t, seen, 3) // every non-depot UID exactly once
}

func TestSolve_DepotOrderDoesNotAffectWhichUIDsAreRouted(t *testing.T) {
	cfg := routing.NewSolverConfig()
	cfg.NumGenerations = 5
	cfg.RandomSeed = 9

	locs := demoLocations()
	res, err := routing.Solve(locs, 1, cfg)
	require.NoError(t, err)

	total := 0
	for _, route := range res.Routes {
		total += len(route) - 2 // exclude the leading/trailing depot UID
	}
	require.Equal(t, 3, total)
}

func TestSolve_DefaultsWhenConfigNil(t *testing.T) {
	// A nil config falls back to NewSolverConfig's defaults, which leave
	// NumGenerations at zero, so driver construction rejects it.
	res, err := routing.Solve(demoLocations(), 1, nil)
	require.Error(t, err)
	require.Nil(t, res)
	var rerr *routing.Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, routing.InvalidConfiguration, rerr.Kind)
}

func TestSolveContext_HonoursCancellation(t *testing.T) {
	locs := make([]routing.Location, 0, 200)
	locs = append(locs, routing.Location{UID: "depot", Depot: true})
	for i := 0; i < 199; i++ {
		locs = append(locs, routing.Location{UID: "c", Latitude: float64(i % 10), Longitude: float64(i % 7)})
	}
	cfg := routing.NewSolverConfig()
	cfg.NumGenerations = 1000000

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := routing.SolveContext(ctx, locs, 5, cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
}
