// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import (
	"context"
	"time"
)

// Location is the boundary representation of one point to visit (spec §6
// "Input (solve request)"), mirroring the original API's BaseLocation
// (latitude, longitude, depot, demand). It is not persisted; this package
// only ever reads it to build an Instance and reads it back out to label a
// solved route.
type Location struct {
	UID       string
	Latitude  float64
	Longitude float64
	Depot     bool
	Demand    int
}

// SolveRequest groups the boundary inputs of a solve (spec §6); Solve and
// SolveContext take its Locations and Workers as separate arguments. The
// caller's HTTP handler is responsible for everything above this: parsing
// JSON, authentication, looking datasets up by UID. StartTime/EndTime bound
// the downstream schedule only; the solver itself never looks at them (spec
// §6: "used only by the downstream scheduler, not the solver").
type SolveRequest struct {
	Locations []Location
	Workers   int
	StartTime time.Time
	EndTime   time.Time
}

// SolveResult is the boundary output of Solve (spec §6): one ordered route
// per worker, with the depot UID as both the first and last entry (spec
// §6: "the UID of the depot is always the first and last entry per route
// when emitted to consumers"), and the total Euclidean distance of the
// returned assignment.
type SolveResult struct {
	Routes  [][]string
	Fitness float64
}

// reorderDepotFirst returns a copy of locs with the depot entry (the first
// one marked Depot==true, or index 0 if none is marked) moved to index 0
// (spec §6: "the array is reordered so any depot: true entry is at index
// 0... if none is marked, index 0 is used by convention").
func reorderDepotFirst(locs []Location) []Location {
	depotIdx := 0
	for i, l := range locs {
		if l.Depot {
			depotIdx = i
			break
		}
	}
	out := make([]Location, 0, len(locs))
	out = append(out, locs[depotIdx])
	for i, l := range locs {
		if i == depotIdx {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Solve is the single entry point a thin HTTP handler calls (spec §6): it
// builds an Instance and Driver from req and cfg, runs the solver to
// completion, and decodes the best individual back into the boundary
// SolveResult shape. No persistence, no transport framework: everything
// above Solve (request parsing, dataset lookup, response encoding) is out
// of scope per spec §1. Equivalent to SolveContext(context.Background(),
// ...).
func Solve(locs []Location, workers int, cfg *SolverConfig) (*SolveResult, error) {
	return SolveContext(context.Background(), locs, workers, cfg)
}

// SolveContext is Solve with an explicit cancellation context, so an HTTP
// handler can tie the run to the inbound request's context and honour
// spec §5's "safely cancellable only between generations" without the
// caller reaching into Driver directly.
func SolveContext(ctx context.Context, locs []Location, workers int, cfg *SolverConfig) (*SolveResult, error) {
	ordered := reorderDepotFirst(locs)

	points := make([]Point, len(ordered))
	for i, l := range ordered {
		points[i] = Point{X: l.Latitude, Y: l.Longitude}
	}

	threshold := 2000
	if cfg != nil {
		threshold = cfg.PrecomputeThreshold
	}
	inst, err := NewInstance(points, workers, true, threshold)
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = NewSolverConfig()
	}
	d, err := NewDriver(inst, cfg)
	if err != nil {
		return nil, err
	}

	res := d.Run(ctx)
	best := res.Best()
	if best == nil {
		return nil, newError(InvalidConfiguration, "solver returned an empty population")
	}

	const depot = 0
	depotUID := ordered[depot].UID
	routes := make([][]string, len(best.Chromo))
	for i, part := range best.Chromo {
		route := make([]string, 0, len(part)+2)
		route = append(route, depotUID)
		for _, customer := range part {
			route = append(route, ordered[customer].UID)
		}
		route = append(route, depotUID)
		routes[i] = route
	}

	return &SolveResult{Routes: routes, Fitness: best.Fitness}, nil
}
