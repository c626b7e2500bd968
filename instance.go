// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Point is a coordinate in the plane (latitude, longitude treated as a
// Euclidean pair, spec §3).
type Point struct {
	X float64
	Y float64
}

// Instance is an immutable problem instance (spec §4.1): the coordinate
// list (index 0 is always the depot by convention), the worker count, and
// an optional precomputed N×N distance matrix.
type Instance struct {
	points  []Point
	workers int
	matrix  [][]float64 // N×N, nil when not precomputed
	n       int
}

// NewInstance validates and constructs a problem Instance. precompute
// controls whether the N×N distance matrix is built eagerly; when points
// exceeds threshold the matrix is built lazily regardless (SPEC_FULL Part
// E), bounding memory for large instances. threshold <= 0 disables the
// override (always honour precompute as given).
func NewInstance(points []Point, workers int, precompute bool, threshold int) (*Instance, error) {
	n := len(points)
	if n < 2 {
		return nil, newError(InvalidInstance, "need at least 2 points (1 depot + 1 customer), got %d", n)
	}
	if workers < 1 {
		return nil, newError(InvalidInstance, "worker count must be at least 1, got %d", workers)
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, newError(InvalidInstance, "point %d has a non-finite coordinate: (%v, %v)", i, p.X, p.Y)
		}
	}

	inst := &Instance{points: points, workers: workers, n: n}
	if precompute && (threshold <= 0 || n <= threshold) {
		inst.buildMatrix()
	}
	return inst, nil
}

// buildMatrix computes the symmetric N×N Euclidean distance matrix in
// O(N^2) time and space (spec §4.1), allocated with la.MatAlloc the way the
// teacher allocates its own distance matrices (island.go's mdist/ndist).
func (inst *Instance) buildMatrix() {
	n := inst.n
	m := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := euclid(inst.points[i], inst.points[j])
			m[i][j] = d
			m[j][i] = d
		}
	}
	inst.matrix = m
}

// euclid computes the Euclidean distance between two points using hypot
// for numerical stability (spec §4.1).
func euclid(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// N returns the number of points, including the depot.
func (inst *Instance) N() int { return inst.n }

// Workers returns the configured worker count K.
func (inst *Instance) Workers() int { return inst.workers }

// Point returns the coordinate at index i.
func (inst *Instance) Point(i int) Point { return inst.points[i] }

// Distance returns the Euclidean distance between points i and j,
// deterministic and symmetric (spec §4.1, §8 property 5): the matrix entry
// when precomputed, else computed on demand.
func (inst *Instance) Distance(i, j int) float64 {
	if inst.matrix != nil {
		chk.IntAssertLessThan(i, inst.n)
		chk.IntAssertLessThan(j, inst.n)
		return inst.matrix[i][j]
	}
	return euclid(inst.points[i], inst.points[j])
}
