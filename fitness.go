// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import "math"

// Evaluator scores an Individual (spec §4.3). The capability set is a
// single method so alternative objectives (e.g. minimise the longest
// single tour, for load balancing) slot in without touching the driver.
type Evaluator interface {
	Evaluate(ind *Individual) *Individual
}

// TotalDistanceEvaluator is the default fitness: the sum, over parts, of
// the closed depot-anchored tour length. An empty part contributes +Inf
// (spec §4.3: "empty parts imply an idle worker and should never win
// selection unless no non-empty assignment exists").
type TotalDistanceEvaluator struct {
	Instance *Instance
}

// NewTotalDistanceEvaluator returns the default evaluator bound to inst.
func NewTotalDistanceEvaluator(inst *Instance) *TotalDistanceEvaluator {
	return &TotalDistanceEvaluator{Instance: inst}
}

// Evaluate computes and attaches ind's fitness, mutating and returning it
// (matching the teacher/original's evaluate-in-place convention). Calling
// Evaluate twice on the same chromosome yields the same fitness (spec §8
// property 4: the instance's distance matrix never changes after
// construction).
func (e *TotalDistanceEvaluator) Evaluate(ind *Individual) *Individual {
	total := 0.0
	for _, part := range ind.Chromo {
		total += partLength(e.Instance, part)
	}
	ind.Fitness = total
	return ind
}

// partLength returns a single part's closed-tour length: depot -> part[0]
// -> ... -> part[last] -> depot, or +Inf for an empty part (spec §4.3).
func partLength(inst *Instance, part []int) float64 {
	if len(part) == 0 {
		return math.Inf(1)
	}
	const depot = 0
	d := inst.Distance(depot, part[0])
	for i := 1; i < len(part); i++ {
		d += inst.Distance(part[i-1], part[i])
	}
	d += inst.Distance(part[len(part)-1], depot)
	return d
}

// EvaluateAll evaluates every individual in p using e, in place.
func EvaluateAll(e Evaluator, p Population) {
	for _, ind := range p {
		e.Evaluate(ind)
	}
}

// NewEvaluator resolves a FitnessKind to a concrete Evaluator bound to
// inst.
func NewEvaluator(kind FitnessKind, inst *Instance) (Evaluator, error) {
	switch kind {
	case MinimiseTotalDistance:
		return NewTotalDistanceEvaluator(inst), nil
	default:
		return nil, newError(InvalidConfiguration, "unknown fitness tag %v", kind)
	}
}
