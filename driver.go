// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routing

import "context"

// Result is what a completed or cancelled run returns (spec §4.6 step 4,
// §7 Cancelled).
type Result struct {
	// Population is the final population, sorted ascending by fitness.
	Population Population

	// Cancelled is true when the run was stopped early via ctx.
	Cancelled bool

	// Generations is the number of generations actually completed.
	Generations int

	// Degenerate counts how many AEX crossover attempts fell back to OX
	// (spec §7 OperatorDegenerate: "counted but never surfaced").
	Degenerate int
}

// Best returns the top individual, or nil for an empty result.
func (r *Result) Best() *Individual {
	if len(r.Population) == 0 {
		return nil
	}
	return r.Population[0]
}

// Driver runs the C6 solver state machine: Created -> Seeded ->
// (Breed -> Mutate -> Evaluate -> Select) x G -> Refined -> Done (spec
// §4.6). Grounded on the teacher's Island (NewIsland, the report buffer),
// reshaped for a single-objective permutation chromosome and a
// context-driven cancellation point instead of island migration.
type Driver struct {
	instance  *Instance
	config    *SolverConfig
	evaluator Evaluator
	init      Initializer
	crossover Crossover
	rng       *rng
}

// NewDriver validates cfg against inst and wires the configured
// initialiser, evaluator, and crossover. Construction is the only place
// InvalidConfiguration/InvalidInstance can surface (spec §7): a built
// Driver never fails at Run time for configuration reasons.
func NewDriver(inst *Instance, cfg *SolverConfig) (*Driver, error) {
	if inst == nil {
		return nil, newError(InvalidInstance, "instance must not be nil")
	}
	if err := cfg.Validate(inst.N()); err != nil {
		return nil, err
	}

	g := newRNG(cfg.RandomSeed)

	ev, err := NewEvaluator(cfg.Fitness, inst)
	if err != nil {
		return nil, err
	}
	initer, err := NewInitializer(cfg.Initializer, inst, ev, g)
	if err != nil {
		return nil, err
	}
	xo, err := NewCrossover(cfg.Crossover)
	if err != nil {
		return nil, err
	}

	return &Driver{
		instance:  inst,
		config:    cfg,
		evaluator: ev,
		init:      initer,
		crossover: xo,
		rng:       g,
	}, nil
}

// Run executes the full state machine and returns the final population
// (spec §4.6 run protocol, §5 concurrency/cancellation model). ctx is
// checked once at the head of every generation; cancellation never
// interrupts a generation already in progress (spec §5: "safely
// cancellable only between generations").
func (d *Driver) Run(ctx context.Context) *Result {
	pop := d.init.Generate(d.config.PopulationSize)
	k := d.instance.Workers()

	generationsRun := 0
	cancelled := false

	for gen := 1; gen <= d.config.NumGenerations; gen++ {
		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			break
		}

		children := make(Population, len(pop))
		for i := range children {
			p1, p2 := pickDistinctParents(pop, d.rng)
			children[i] = d.crossover.Cross(p1, p2, gen, k, d.rng)
		}

		MutateAll(children, d.config.MutationRate, d.rng)
		EvaluateAll(d.evaluator, children)

		pop = Select(pop, children)
		generationsRun = gen

		if d.config.TwoOptPerGeneration {
			for _, ind := range pop {
				TwoOpt(d.instance, ind, d.evaluator)
			}
			pop.Sort()
		}

		if d.config.Report != nil {
			Report(d.config.Report, gen, pop.BestFitness())
		}
	}

	if len(pop) > 0 {
		pop.Sort()
		TwoOpt(d.instance, pop[0], d.evaluator)
		pop.Sort()
	}

	degenerate := 0
	if a, ok := d.crossover.(*AEXCrossover); ok {
		degenerate = a.Degenerate
	}

	return &Result{
		Population:  pop,
		Cancelled:   cancelled,
		Generations: generationsRun,
		Degenerate:  degenerate,
	}
}
