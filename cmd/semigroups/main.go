// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command semigroups enumerates a small built-in transformation semigroup
// (generated by an n-cycle and a map collapsing point n-1 onto 0; for n = 3
// that is 24 of the 27 transformations), reports its size, rule count and
// idempotent count, then computes the universal congruence on it (the two
// generators identified) with the Todd-Coxeter and the pair-orbit strategy
// concurrently and prints both class counts. The concurrent
// worker-per-task pattern (a sync.WaitGroup fanning out one goroutine per
// strategy) is adapted from this module's ancestor CLI, which drove
// concurrent route insertions the same way.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/gaissmai/semigroups/congruence"
	"github.com/gaissmai/semigroups/element"
	"github.com/gaissmai/semigroups/internal/fp"
	"github.com/gaissmai/semigroups/internal/report"
)

func main() {
	degree := flag.Int("degree", 3, "degree of the generated transformation semigroup")
	verbose := flag.Bool("v", false, "report enumeration progress to stderr")
	flag.Parse()

	sink := report.Noop
	if *verbose {
		sink = report.NewStderr()
	}

	gens := cycleAndCollapse(*degree)
	s := fp.New[element.Transformation, *element.Transformation](gens, 4, sink)

	fmt.Printf("degree %d, %d generators\n", s.Degree(), s.NrGens())
	fmt.Printf("size:          %d\n", s.Size())
	fmt.Printf("nr. rules:     %d\n", s.NrRules())
	fmt.Printf("nr. idempotents: %d\n", s.NrIdempotents())

	var wg sync.WaitGroup
	strategies := []func() *congruence.Congruence{
		func() *congruence.Congruence {
			c := congruence.New(congruence.TwoSided, s, []congruence.Pair{{LHS: []int{0}, RHS: []int{1}}})
			c.ForceTC()
			return c
		},
		func() *congruence.Congruence {
			c := congruence.New(congruence.TwoSided, s, []congruence.Pair{{LHS: []int{0}, RHS: []int{1}}})
			c.ForcePairOrbit()
			return c
		},
	}
	results := make([]int, len(strategies))
	wg.Add(len(strategies))
	for i, build := range strategies {
		go func(i int, build func() *congruence.Congruence) {
			defer wg.Done()
			c := build()
			results[i] = c.NrClasses()
		}(i, build)
	}
	wg.Wait()

	for i, n := range results {
		fmt.Printf("universal congruence, strategy %d: %d classes\n", i, n)
	}

	os.Exit(0)
}

// cycleAndCollapse returns a generating set for a reasonably large
// transformation semigroup: a full n-cycle, and a map collapsing point
// n-1 onto point 0.
func cycleAndCollapse(n int) []element.Transformation {
	cycle := make([]uint16, n)
	for i := range cycle {
		cycle[i] = uint16((i + 1) % n)
	}
	collapse := make([]uint16, n)
	for i := range collapse {
		collapse[i] = uint16(i)
	}
	collapse[n-1] = 0

	return []element.Transformation{
		{Images: cycle},
		{Images: collapse},
	}
}
