// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import "math"

// notEvaluated marks an Individual whose fitness has not yet been computed
// (spec §4.2's "unassigned fitness is represented as not yet evaluated").
const notEvaluated = math.MaxFloat64

// Individual is a candidate assignment: a K-part chromosome where part j is
// an ordered sequence of customer indices (the depot index 0 never appears
// inside a part), together with its fitness and the generation at which it
// was created (spec §3 "Individual (chromosome)").
//
// Individuals are compared by reference, not value: parent selection must
// detect p1 != p2 without comparing chromosomes (spec §4.2), so Population
// never deduplicates by content.
type Individual struct {
	Chromo     [][]int
	Fitness    float64
	Generation int
}

// NewIndividual wraps a chromosome with a generation tag. Fitness starts
// unassigned; call an Evaluator before using it in selection.
func NewIndividual(chromo [][]int, generation int) *Individual {
	return &Individual{Chromo: chromo, Fitness: notEvaluated, Generation: generation}
}

// Evaluated reports whether Fitness has been assigned.
func (ind *Individual) Evaluated() bool {
	return ind.Fitness != notEvaluated
}

// NumParts returns K, the number of worker parts in the chromosome.
func (ind *Individual) NumParts() int {
	return len(ind.Chromo)
}

// Clone returns a deep copy with the same generation tag and an
// unevaluated fitness; used wherever an operator must not mutate its
// parent's chromosome in place.
func (ind *Individual) Clone() *Individual {
	chromo := make([][]int, len(ind.Chromo))
	for i, part := range ind.Chromo {
		chromo[i] = append([]int(nil), part...)
	}
	return NewIndividual(chromo, ind.Generation)
}

// Flatten concatenates the chromosome's parts, in part order, into a
// single customer-index sequence of length N-1 (spec §4.5.1 step 1).
func (ind *Individual) Flatten() []int {
	total := 0
	for _, p := range ind.Chromo {
		total += len(p)
	}
	out := make([]int, 0, total)
	for _, p := range ind.Chromo {
		out = append(out, p...)
	}
	return out
}

// partition splits a flat customer sequence into k parts at the given
// sorted, distinct interior cut positions (spec §4.5.1 step 5). cuts must
// contain exactly k-1 values in [1, len(flat)).
func partition(flat []int, cuts []int) [][]int {
	parts := make([][]int, len(cuts)+1)
	start := 0
	for i, c := range cuts {
		parts[i] = append([]int(nil), flat[start:c]...)
		start = c
	}
	parts[len(cuts)] = append([]int(nil), flat[start:]...)
	return parts
}
