// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Population is an ordered collection of Individuals (spec §3, §4.2).
// Created by an initialiser, replaced each generation by the selection
// step, discarded when a run returns.
type Population []*Individual

// RandomPick returns a uniformly random member. No replacement semantics
// are required: callers that need two distinct individuals retry on
// collision (spec §4.2), see pickDistinctParents in crossover.go.
func (p Population) RandomPick(g *rng) *Individual {
	return p[g.intn(len(p))]
}

// sortable adapts Population to sort.Interface, ascending by fitness
// (smaller is better), mirroring the teacher's Population.Less/Sort but
// inverted: the teacher sorts decreasing fitness (a maximisation problem),
// ours minimises total distance.
type sortable struct{ Population }

func (s sortable) Len() int           { return len(s.Population) }
func (s sortable) Swap(i, j int)      { s.Population[i], s.Population[j] = s.Population[j], s.Population[i] }
func (s sortable) Less(i, j int) bool { return s.Population[i].Fitness < s.Population[j].Fitness }

// Sort orders the population ascending by fitness (stable, so ties keep
// their relative order). All members must be evaluated beforehand (spec
// §4.2: "unevaluated individuals must not appear at the point of sort").
func (p Population) Sort() {
	for _, ind := range p {
		if !ind.Evaluated() {
			chk.Panic("Sort called with an unevaluated individual (generation=%d)", ind.Generation)
		}
	}
	sort.Stable(sortable{p})
}

// Prune sorts ascending and truncates to the first m members (spec §4.2).
func (p Population) Prune(m int) Population {
	p.Sort()
	if m > len(p) {
		m = len(p)
	}
	return p[:m]
}

// TopK returns the best k members after an ascending sort (spec §4.2).
func (p Population) TopK(k int) Population {
	p.Sort()
	if k > len(p) {
		k = len(p)
	}
	out := make(Population, k)
	copy(out, p[:k])
	return out
}

// Concat returns a new population that is the ordered union of p and
// other, leaving both untouched (spec §4.2).
func (p Population) Concat(other Population) Population {
	out := make(Population, 0, len(p)+len(other))
	out = append(out, p...)
	out = append(out, other...)
	return out
}

// BestFitness returns the fitness of the best (minimum) member, or the
// not-evaluated sentinel (math.MaxFloat64) for an empty population. Used by
// the driver's generation report.
func (p Population) BestFitness() float64 {
	if len(p) == 0 {
		return notEvaluated
	}
	best := p[0].Fitness
	for _, ind := range p[1:] {
		if ind.Fitness < best {
			best = ind.Fitness
		}
	}
	return best
}

// Report renders one line per generation in the teacher's io.Pf/io.Ff
// table style: generation index and best fitness.
func Report(buf *bytes.Buffer, generation int, best float64) {
	io.Ff(buf, "gen=%-6d best_fitness=%g\n", generation, best)
}
