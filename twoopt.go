// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

// TwoOpt applies 2-opt local search to every part of ind in place, then
// re-evaluates ind's fitness (spec §4.5.7). For each part, it repeatedly
// scans all reversals of [i..j], accepts the first one that strictly
// improves the part's depot-anchored closed-tour length, and restarts the
// scan until a full pass finds no improving move. The result is always a
// permutation of the part's original customers (only a sub-range is
// reversed), so spec §8 property 6 (2-opt never worsens fitness) holds by
// construction: every accepted move strictly decreases length, and the
// final individual's fitness is the sum over parts.
func TwoOpt(inst *Instance, ind *Individual, e Evaluator) {
	for _, part := range ind.Chromo {
		twoOptPart(inst, part)
	}
	e.Evaluate(ind)
}

// twoOptPart runs 2-opt on a single part in place until no single reversal
// improves its closed-tour length.
func twoOptPart(inst *Instance, part []int) {
	n := len(part)
	if n < 3 {
		return
	}
	improved := true
	for improved {
		improved = false
	scan:
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				delta := reversalDelta(inst, part, i, j)
				if delta < -1e-12 {
					reverseSegment(part, i, j)
					improved = true
					break scan
				}
			}
		}
	}
}

// reversalDelta computes the change in closed-tour length (new - old) if
// part[i:j+1] were reversed, without mutating part. Negative means an
// improvement. Only the two edges touching the reversed segment's
// boundary change; edges strictly inside the segment are unaffected by a
// reversal, and the depot edges only change when i==0 or j==n-1.
func reversalDelta(inst *Instance, part []int, i, j int) float64 {
	n := len(part)
	const depot = 0

	prevNode := depot
	if i > 0 {
		prevNode = part[i-1]
	}
	nextNode := depot
	if j < n-1 {
		nextNode = part[j+1]
	}

	oldCost := inst.Distance(prevNode, part[i]) + inst.Distance(part[j], nextNode)
	newCost := inst.Distance(prevNode, part[j]) + inst.Distance(part[i], nextNode)
	return newCost - oldCost
}

// reverseSegment reverses part[i:j+1] in place.
func reverseSegment(part []int, i, j int) {
	for i < j {
		part[i], part[j] = part[j], part[i]
		i++
		j--
	}
}
