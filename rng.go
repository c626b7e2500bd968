// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import (
	"math/rand"
	"time"
)

// rng is the per-run source of randomness. Every Driver owns exactly one;
// no operator in this package consults math/rand's global functions or any
// other process-wide generator, so independent Driver.Run calls never share
// mutable state (spec §5) and are reproducible given the same seed
// (spec §7/§8 property 7).
type rng struct {
	r *rand.Rand
}

// newRNG seeds a generator. seed == 0 draws entropy from the wall clock,
// matching the teacher's convention that a zero seed means "unseeded".
func newRNG(seed int64) *rng {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &rng{r: rand.New(rand.NewSource(seed))}
}

// flipCoin returns true with probability p, false otherwise.
func (g *rng) flipCoin(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return g.r.Float64() < p
}

// intn returns a uniform integer in [0, n).
func (g *rng) intn(n int) int {
	return g.r.Intn(n)
}

// shuffle permutes s in place using the Fisher-Yates algorithm.
func (g *rng) shuffle(s []int) {
	g.r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// uniqueN draws n distinct integers from [lo, hi) without replacement.
func (g *rng) uniqueN(lo, hi, n int) []int {
	pool := make([]int, hi-lo)
	for i := range pool {
		pool[i] = lo + i
	}
	g.shuffle(pool)
	out := make([]int, n)
	copy(out, pool[:n])
	return out
}
