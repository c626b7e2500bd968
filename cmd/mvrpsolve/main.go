// Copyright 2026 The mvrp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mvrpsolve is a minimal demo CLI around the routing package,
// playing the role the teacher's examples/rel-prob1to5.go plays for goga:
// load an instance, run the solver, print a report. Restructured around
// spf13/cobra (grounded on mihai-snyk-descheduler, the only pack repo with
// a CLI framework) rather than the teacher's io.ArgToFilename convention,
// since a single flag-driven command is a better fit for a library demo
// than a numbered-problem switch statement.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	routing "github.com/bandimrouting/mvrp"
)

// instanceFile is the on-disk JSON shape accepted by --instance: a flat
// list of locations, depot-flagged, mirroring routing.Location.
type instanceFile struct {
	Locations []routing.Location `json:"locations"`
	Workers   int                `json:"workers"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		instancePath   string
		generations    int
		populationSize int
		mutationRate   float64
		seed           int64
		initializer    string
		crossover      string
	)

	cmd := &cobra.Command{
		Use:   "mvrpsolve",
		Short: "Solve a multi-depot-free vehicle routing instance",
		Long: "mvrpsolve reads a JSON instance (depot-flagged locations plus a " +
			"worker count), runs the population-based evolutionary mVRP solver, " +
			"and prints the resulting routes and total fitness.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := loadInstanceFile(instancePath)
			if err != nil {
				return err
			}

			cfg := routing.NewSolverConfig()
			cfg.NumGenerations = generations
			cfg.PopulationSize = populationSize
			cfg.MutationRate = mutationRate
			cfg.RandomSeed = seed
			if err := applyInitializer(cfg, initializer); err != nil {
				return err
			}
			if err := applyCrossover(cfg, crossover); err != nil {
				return err
			}

			var report bytes.Buffer
			cfg.Report = &report

			result, err := routing.Solve(inst.Locations, inst.Workers, cfg)
			if err != nil {
				return err
			}

			io.Pf("%v", report.String())
			io.Pf("\nbest fitness = %g\n", result.Fitness)
			for i, route := range result.Routes {
				io.Pf("worker %d: %v\n", i, route)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&instancePath, "instance", "", "path to a JSON instance file (required)")
	flags.IntVar(&generations, "generations", 200, "number of generations to run")
	flags.IntVar(&populationSize, "population-size", 0, "population size (0 derives from instance size)")
	flags.Float64Var(&mutationRate, "mutation-rate", 0.1, "per-position swap mutation probability")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 draws from the system clock)")
	flags.StringVar(&initializer, "initializer", "kmeans", "population initializer: kmeans|random")
	flags.StringVar(&crossover, "crossover", "ox", "crossover operator: ox|cx|erx|aex")
	cmd.MarkFlagRequired("instance")

	return cmd
}

func applyInitializer(cfg *routing.SolverConfig, name string) error {
	switch name {
	case "kmeans":
		cfg.Initializer = routing.KMeansRandomised
	case "random":
		cfg.Initializer = routing.RandomSplit
	default:
		return fmt.Errorf("unknown --initializer %q: want kmeans|random", name)
	}
	return nil
}

func applyCrossover(cfg *routing.SolverConfig, name string) error {
	switch name {
	case "ox":
		cfg.Crossover = routing.OX
	case "cx":
		cfg.Crossover = routing.CX
	case "erx":
		cfg.Crossover = routing.ERX
	case "aex":
		cfg.Crossover = routing.AEX
	default:
		return fmt.Errorf("unknown --crossover %q: want ox|cx|erx|aex", name)
	}
	return nil
}

func loadInstanceFile(path string) (*instanceFile, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance file %q: %w", path, err)
	}
	var f instanceFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing instance file %q: %w", path, err)
	}
	return &f, nil
}
