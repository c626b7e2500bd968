// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

// Crossover breeds a single child from two distinct parents (spec §4.5).
// Every implementation preserves the global permutation invariant.
type Crossover interface {
	Cross(parent1, parent2 *Individual, generation, k int, g *rng) *Individual
}

// pickDistinctParents draws two parents by reference from pop, retrying on
// collision (spec §4.2 "no replacement semantics are required... simply
// retries if it draws the same reference twice"; §4.6 "rejecting
// parent-pairs with referential equality"). Grounded on the teacher's
// FilterPairs (operators.go), which reshuffles a fallback pool to avoid a
// repeated pair; here the pool is simply the population itself and p1/p2
// are compared by pointer identity, matching spec §4.2's reference-equality
// requirement exactly.
func pickDistinctParents(pop Population, g *rng) (*Individual, *Individual) {
	p1 := pop.RandomPick(g)
	p2 := pop.RandomPick(g)
	for p2 == p1 {
		p2 = pop.RandomPick(g)
	}
	return p1, p2
}

// OXCrossover is order crossover (spec §4.5.1).
type OXCrossover struct{}

// Cross implements OX: copy a random contiguous segment of parent1's flat
// chromosome into the child, then fill the rest in the order the
// remaining customers appear in parent2 (spec §4.5.1 steps 1-4), and
// repartition into k parts (step 5).
func (OXCrossover) Cross(parent1, parent2 *Individual, generation, k int, g *rng) *Individual {
	p1 := parent1.Flatten()
	p2 := parent2.Flatten()
	n := len(p1)

	start := g.intn(n)
	end := start + g.intn(n-start+1) // end in [start, n]
	middle := append([]int(nil), p1[start:end]...)

	inMiddle := make(map[int]bool, len(middle))
	for _, c := range middle {
		inMiddle[c] = true
	}
	var remaining []int
	for _, c := range p2 {
		if !inMiddle[c] {
			remaining = append(remaining, c)
		}
	}

	child := make([]int, 0, n)
	child = append(child, remaining[:start]...)
	child = append(child, middle...)
	child = append(child, remaining[start:]...)

	cuts := splitPoints(n, k, g)
	return NewIndividual(partition(child, cuts), generation)
}

// CXCrossover is cycle crossover (spec §4.5.2).
type CXCrossover struct{}

// Cross implements CX: partitions the index space [0, n) into cycles
// linked by the p1[i] <-> p2[i] mapping, then takes values from parent1 for
// odd-numbered cycles and parent2 for even-numbered ones (a fixed,
// arbitrary policy, spec §4.5.2), and repartitions into k parts.
func (CXCrossover) Cross(parent1, parent2 *Individual, generation, k int, g *rng) *Individual {
	p1 := parent1.Flatten()
	p2 := parent2.Flatten()
	n := len(p1)

	pos1 := make(map[int]int, n) // customer -> index in p1
	for i, c := range p1 {
		pos1[c] = i
	}

	child := make([]int, n)
	taken := make([]bool, n)
	cycleCount := 0
	for start := 0; start < n; start++ {
		if taken[start] {
			continue
		}
		cycleCount++
		var cycle []int
		cur := start
		for !taken[cur] {
			taken[cur] = true
			cycle = append(cycle, cur)
			cur = pos1[p2[cur]]
		}
		fromP1 := cycleCount%2 == 1
		for _, idx := range cycle {
			if fromP1 {
				child[idx] = p1[idx]
			} else {
				child[idx] = p2[idx]
			}
		}
	}

	cuts := splitPoints(n, k, g)
	return NewIndividual(partition(child, cuts), generation)
}

// ERXCrossover is edge-recombination crossover (spec §4.5.3).
type ERXCrossover struct{}

// Cross implements ERX: build a neighbour-set adjacency map from both
// parents' flattened tours, then greedily extend a walk by always
// choosing the unvisited neighbour with the fewest remaining neighbours
// (ties broken uniformly), falling back to a uniformly random unvisited
// customer when the current node has none left (spec §4.5.3).
func (ERXCrossover) Cross(parent1, parent2 *Individual, generation, k int, g *rng) *Individual {
	p1 := parent1.Flatten()
	p2 := parent2.Flatten()
	n := len(p1)

	neighbors := make(map[int]map[int]bool, n)
	addEdges := func(seq []int) {
		m := len(seq)
		for i, c := range seq {
			if neighbors[c] == nil {
				neighbors[c] = make(map[int]bool)
			}
			if i > 0 {
				neighbors[c][seq[i-1]] = true
			}
			if i < m-1 {
				neighbors[c][seq[i+1]] = true
			}
		}
	}
	addEdges(p1)
	addEdges(p2)

	remove := func(c int) {
		for _, set := range neighbors {
			delete(set, c)
		}
	}

	all := append([]int(nil), p1...)
	current := all[g.intn(len(all))]
	visited := make(map[int]bool, n)
	child := make([]int, 0, n)
	child = append(child, current)
	visited[current] = true
	remove(current)

	for len(child) < n {
		set := neighbors[current]
		var candidates []int
		for c := range set {
			if !visited[c] {
				candidates = append(candidates, c)
			}
		}
		var next int
		if len(candidates) == 0 {
			var unvisited []int
			for _, c := range all {
				if !visited[c] {
					unvisited = append(unvisited, c)
				}
			}
			next = unvisited[g.intn(len(unvisited))]
		} else {
			insertionSort(candidates)
			fewest := -1
			var best []int
			for _, c := range candidates {
				cnt := len(neighbors[c])
				if fewest == -1 || cnt < fewest {
					fewest = cnt
					best = []int{c}
				} else if cnt == fewest {
					best = append(best, c)
				}
			}
			next = best[g.intn(len(best))]
		}
		visited[next] = true
		remove(next)
		child = append(child, next)
		current = next
	}

	cuts := splitPoints(n, k, g)
	return NewIndividual(partition(child, cuts), generation)
}

// AEXCrossover is alternating-edges crossover (spec §4.5.4). It is
// experimental per spec §9 ("the source implementation shows incomplete
// AEX code... treat AEX as experimental"): this implementation performs
// the documented "alternate edges, reassemble by greedy walk" procedure
// and post-validates the result, falling back to OX (counting an
// OperatorDegenerate event) whenever the walk does not cover every
// customer exactly once.
type AEXCrossover struct {
	// Degenerate counts how many AEX attempts fell back to OX. Exposed so
	// the driver can report it; never surfaced as an error (spec §7).
	Degenerate int
}

// Cross attempts AEX, falling back to OX on a degenerate result.
func (a *AEXCrossover) Cross(parent1, parent2 *Individual, generation, k int, g *rng) *Individual {
	n := len(parent1.Flatten())
	child := a.tryAEX(parent1, parent2, g)
	if child == nil || !assertPermutation([][]int{child}, n+1, 1) {
		a.Degenerate++
		return OXCrossover{}.Cross(parent1, parent2, generation, k, g)
	}
	cuts := splitPoints(len(child), k, g)
	return NewIndividual(partition(child, cuts), generation)
}

// tryAEX collects each parent's within-part adjacent pairs as directed
// edges, alternates even-indexed edges from parent1 with odd-indexed edges
// from parent2, then reassembles a walk by following the child edge list
// and skipping any edge that would revisit a node (spec §4.5.4). Returns
// nil if the walk cannot proceed (dead end before every customer is
// placed) rather than panicking: degeneracy is expected and handled by the
// caller via fallback, not treated as a bug.
func (a *AEXCrossover) tryAEX(parent1, parent2 *Individual, g *rng) []int {
	edgesOf := func(ind *Individual) [][2]int {
		var edges [][2]int
		for _, part := range ind.Chromo {
			for i := 0; i+1 < len(part); i++ {
				edges = append(edges, [2]int{part[i], part[i+1]})
			}
		}
		return edges
	}
	e1 := edgesOf(parent1)
	e2 := edgesOf(parent2)

	n := len(parent1.Flatten())
	if n == 0 {
		return nil
	}

	maxLen := len(e1)
	if len(e2) > maxLen {
		maxLen = len(e2)
	}
	var childEdges [][2]int
	for i := 0; i < maxLen; i++ {
		if i%2 == 0 {
			if i < len(e1) {
				childEdges = append(childEdges, e1[i])
			}
		} else {
			if i < len(e2) {
				childEdges = append(childEdges, e2[i])
			}
		}
	}
	if len(childEdges) == 0 {
		return nil
	}

	next := make(map[int]int, len(childEdges))
	for _, e := range childEdges {
		if _, exists := next[e[0]]; !exists {
			next[e[0]] = e[1]
		}
	}

	start := childEdges[0][0]
	visited := make(map[int]bool, n)
	walk := []int{start}
	visited[start] = true
	cur := start
	for len(walk) < n {
		nxt, ok := next[cur]
		if !ok || visited[nxt] {
			return nil
		}
		walk = append(walk, nxt)
		visited[nxt] = true
		cur = nxt
	}
	return walk
}

// NewCrossover resolves a CrossoverKind to a concrete Crossover.
func NewCrossover(kind CrossoverKind) (Crossover, error) {
	switch kind {
	case OX:
		return OXCrossover{}, nil
	case CX:
		return CXCrossover{}, nil
	case ERX:
		return ERXCrossover{}, nil
	case AEX:
		return &AEXCrossover{}, nil
	default:
		return nil, newError(InvalidConfiguration, "unknown crossover tag %v", kind)
	}
}
