// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schedule translates solved routes into per-visit timestamps. It
// is the "downstream scheduler" collaborator described in spec §6: a
// separate linear pass with no dependency on the solver's internals (spec
// §9: "a separate linear pass... belongs to the scheduling collaborator,
// not the solver"), grounded on the earlier, simpler revisions of the
// routing module's ancestor (original_source/backend_server/routing/
// routing1.py-routing3.py), which already accumulate travel and service
// time into visit timestamps before the mVRP solver was introduced.
package schedule

import "time"

// Stop is one visited location along a route, carrying the demand that
// sets its service time and the UID the routing package's SolveResult
// already carries.
type Stop struct {
	UID    string
	Demand int
}

// Visit is a single scheduled stop: the location and the clock time the
// worker is expected to arrive.
type Visit struct {
	UID string
	At  time.Time
}

// Timestamps accumulates, for each route, travelDefault seconds per edge
// (depot -> stop, stop -> stop, stop -> depot) plus
// visitDuration * demand seconds per stop, starting at start, exactly as
// spec §6 describes the downstream scheduler ("accumulating travel_default
// seconds per edge plus visit_duration x demand seconds per stop"). It
// performs no I/O and holds no state between calls.
func Timestamps(routes [][]Stop, start time.Time, travelDefault, visitDuration time.Duration) [][]Visit {
	out := make([][]Visit, len(routes))
	for i, route := range routes {
		out[i] = timestampsForRoute(route, start, travelDefault, visitDuration)
	}
	return out
}

// timestampsForRoute schedules a single worker's route, including the
// implicit depot departure and return (neither of which appears in the
// returned slice — only customer stops are timestamped). A caller
// building route from a routing.SolveResult strips that result's leading
// and trailing depot UID first, since this package's own []Stop contract
// carries customer stops only.
func timestampsForRoute(route []Stop, start time.Time, travelDefault, visitDuration time.Duration) []Visit {
	visits := make([]Visit, len(route))
	clock := start
	for i, stop := range route {
		clock = clock.Add(travelDefault)
		visits[i] = Visit{UID: stop.UID, At: clock}
		clock = clock.Add(visitDuration * time.Duration(stop.Demand))
	}
	return visits
}
