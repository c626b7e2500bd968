// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

// SwapMutate clones ind and applies swap mutation to the clone (spec
// §4.5.5; spec §3 "mutation produces a new Individual"): for each position
// in each part, with independent probability rate, swap it with another
// uniformly chosen position within the same part. Never moves a customer
// across parts. Grounded on the original's _mutation_operator and on
// cbarrick-evo/perm's RandSwap shape.
func SwapMutate(ind *Individual, rate float64, g *rng) *Individual {
	child := ind.Clone()
	for _, part := range child.Chromo {
		if len(part) < 2 {
			continue
		}
		for i := range part {
			if g.flipCoin(rate) {
				j := g.intn(len(part))
				part[i], part[j] = part[j], part[i]
			}
		}
	}
	return child
}

// MutateAll replaces every individual in p with its SwapMutate clone.
func MutateAll(p Population, rate float64, g *rng) {
	for i, ind := range p {
		p[i] = SwapMutate(ind, rate, g)
	}
}
