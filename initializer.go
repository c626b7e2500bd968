// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

// Initializer seeds a Population of a given size (spec §4.4's capability
// set {generate() -> Population of size P}).
type Initializer interface {
	Generate(size int) Population
}

// splitPoints draws k-1 distinct, sorted interior cut positions in
// [1, n), the shared mechanic behind the random-split initialiser and
// every crossover's repartitioning step (spec §4.4, §4.5.1 step 5). It is
// the direct descendant of the teacher's GenerateCxEnds (operators.go),
// adapted from "ncuts or explicit cuts, return end-of-segment positions"
// to "always k-1 random cuts, return interior cut positions" since our
// chromosomes never take explicit cut lists.
func splitPoints(n, k int, g *rng) []int {
	if k <= 1 {
		return nil
	}
	if k-1 >= n {
		// Degenerate: more parts than interior positions: use every
		// position, leaving the trailing parts empty rather than
		// panicking (spec §4.4: "some may be empty only if N-1 < K").
		cuts := make([]int, k-1)
		for i := range cuts {
			if i < n {
				cuts[i] = i + 1
			} else {
				cuts[i] = n
			}
		}
		return cuts
	}
	cuts := g.uniqueN(1, n, k-1)
	insertionSort(cuts)
	return cuts
}

// insertionSort sorts small int slices in place; cheaper than sort.Ints
// for the tiny K-1 slices this package deals with and avoids importing
// sort just for this.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// RandomSplitInitializer implements spec §4.4's "Random split": for each
// individual, shuffle [1..N-1] and cut it at K-1 random interior points.
type RandomSplitInitializer struct {
	Instance  *Instance
	Evaluator Evaluator
	RNG       *rng
}

// Generate returns an evaluated, generation-0 population of the requested
// size.
func (in *RandomSplitInitializer) Generate(size int) Population {
	n, k := in.Instance.N(), in.Instance.Workers()
	pop := make(Population, size)
	for i := 0; i < size; i++ {
		flat := make([]int, n-1)
		for c := 1; c < n; c++ {
			flat[c-1] = c
		}
		in.RNG.shuffle(flat)
		cuts := splitPoints(len(flat), k, in.RNG)
		ind := NewIndividual(partition(flat, cuts), 0)
		pop[i] = in.Evaluator.Evaluate(ind)
	}
	return pop
}

// KMeansInitializer implements spec §4.4's "K-means randomised": cluster
// non-depot points into K groups, one group per worker part, with a
// stride redistribution to keep the population diverse despite sharing one
// clustering (SPEC_FULL Part E; scheme promoted from the commented-out
// create_individual_clustering helper in the original source).
type KMeansInitializer struct {
	Instance  *Instance
	Evaluator Evaluator
	RNG       *rng
}

// Generate returns an evaluated, generation-0 population of the requested
// size. The clustering itself is computed once; each individual shuffles
// every shared cluster independently and deals its members round-robin
// across all K parts, starting at the part with the cluster's index. The
// starting offset depends only on the cluster, so individuals differ only
// through their shuffles.
func (in *KMeansInitializer) Generate(size int) Population {
	n, k := in.Instance.N(), in.Instance.Workers()
	customers := in.Instance.points[1:n]
	labels := kmeans(customers, k, in.RNG)

	clusters := make([][]int, k)
	for i, label := range labels {
		customerIdx := i + 1 // shift back past the depot
		clusters[label] = append(clusters[label], customerIdx)
	}

	pop := make(Population, size)
	for i := 0; i < size; i++ {
		parts := make([][]int, k)
		for c := range parts {
			parts[c] = []int{}
		}
		for c, cluster := range clusters {
			shuffled := append([]int(nil), cluster...)
			in.RNG.shuffle(shuffled)
			// stride-redistribute across parts starting at part c so
			// successive clusters don't all collapse onto the same
			// partition shape; the shuffle above varies it per individual.
			for j, customer := range shuffled {
				dest := (c + j) % k
				parts[dest] = append(parts[dest], customer)
			}
		}
		ind := NewIndividual(parts, 0)
		pop[i] = in.Evaluator.Evaluate(ind)
	}
	return pop
}

// NewInitializer resolves an InitializerKind to a concrete Initializer.
func NewInitializer(kind InitializerKind, inst *Instance, ev Evaluator, g *rng) (Initializer, error) {
	switch kind {
	case RandomSplit:
		return &RandomSplitInitializer{Instance: inst, Evaluator: ev, RNG: g}, nil
	case KMeansRandomised:
		return &KMeansInitializer{Instance: inst, Evaluator: ev, RNG: g}, nil
	default:
		return nil, newError(InvalidConfiguration, "unknown initializer tag %v", kind)
	}
}

// assertPermutation reports whether chromo is exactly a permutation of
// [1, n) split into k parts; it never panics. Used by AEX's
// post-validation.
func assertPermutation(chromo [][]int, n, k int) bool {
	if len(chromo) != k {
		return false
	}
	seen := make([]bool, n)
	count := 0
	for _, part := range chromo {
		for _, c := range part {
			if c <= 0 || c >= n || seen[c] {
				return false
			}
			seen[c] = true
			count++
		}
	}
	return count == n-1
}
