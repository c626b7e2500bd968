// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import "math"

// kmeansMaxIters bounds the clustering loop when it fails to converge
// (spec §4.4: "up to a bounded number of iterations... if the algorithm
// fails to converge, keep the last assignment").
const kmeansMaxIters = 100

// kmeansTolerance is the centroid-drift convergence tolerance (spec
// §4.4: "centroid drift tolerance a small positive number").
const kmeansTolerance = 1e-6

// kmeans clusters points (customer coordinates, depot excluded by the
// caller) into k labels using Lloyd's algorithm with centroids seeded from
// a random sample of the points themselves, drawn from g (deterministic
// only when g was built with a non-zero seed). It returns one label per
// point in [0, k).
//
// No clustering library exists anywhere in the example pack (searched for
// "kmeans"/"cluster" across every repo and the other_examples sweep); this
// is implemented directly on stdlib math, which is the justified
// exception recorded in DESIGN.md.
func kmeans(points []Point, k int, g *rng) []int {
	n := len(points)
	labels := make([]int, n)
	if k <= 0 {
		return labels
	}
	if k >= n {
		// Degenerate: more clusters than points, one point per cluster
		// and the rest left in the last cluster.
		for i := range labels {
			if i < k {
				labels[i] = i
			} else {
				labels[i] = k - 1
			}
		}
		return labels
	}

	centroids := make([]Point, k)
	seed := g.uniqueN(0, n, k)
	for i, idx := range seed {
		centroids[i] = points[idx]
	}

	for iter := 0; iter < kmeansMaxIters; iter++ {
		// assignment step: nearest centroid per point
		changed := false
		for i, p := range points {
			best, bestDist := 0, math.Inf(1)
			for c, centroid := range centroids {
				d := euclid(p, centroid)
				if d < bestDist {
					bestDist, best = d, c
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}

		// update step: mean of assigned points, keep stale centroid for an
		// empty cluster rather than introducing NaN
		sums := make([]Point, k)
		counts := make([]int, k)
		for i, p := range points {
			c := labels[i]
			sums[c].X += p.X
			sums[c].Y += p.Y
			counts[c]++
		}
		maxDrift := 0.0
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			next := Point{X: sums[c].X / float64(counts[c]), Y: sums[c].Y / float64(counts[c])}
			maxDrift = math.Max(maxDrift, euclid(centroids[c], next))
			centroids[c] = next
		}
		if !changed || maxDrift < kmeansTolerance {
			break
		}
	}
	return labels
}
