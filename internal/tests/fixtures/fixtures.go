// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package fixtures holds known-good Froidure-Pin enumeration sizes used as
// golden data, adapted from this module's ancestor's
// internal/golden/table.go brute-force reference pattern: instead of
// computing the expected answer by a second, slower algorithm at test
// time, a handful of published constants are checked directly against
// classic semigroups whose sizes are well known in the literature.
package fixtures

import "github.com/gaissmai/semigroups/element"

// Scenario is one named generating set with its expected enumeration
// results, for table-driven golden tests. At100 and its factorisation
// length are only meaningful (non-nil) for scenarios with Size > 100.
type Scenario struct {
	Name          string
	Generators    []element.Transformation
	Size          int
	NrIdempotents int
	NrRules       int

	At100        []int // expected images of the element at position 100, if Size > 100
	FactorLen100 int   // expected len(Factorisation(100)), if At100 is set
}

func t(images ...int) element.Transformation {
	imgs := make([]uint16, len(images))
	for i, v := range images {
		imgs[i] = uint16(v)
	}
	return element.Transformation{Images: imgs}
}

// Scenarios are ordered roughly by size, smallest first. S1, S2, S3 below
// (S3 lives in PartialPermScenarios, its element type not being
// Transformation) are the seed scenarios used throughout the test suite to
// pin down exact rule counts and idempotent counts, not just sizes.
var Scenarios = []Scenario{
	{
		// The cyclic group of order 3, as transformations of degree 3.
		Name:       "C3",
		Generators: []element.Transformation{t(1, 2, 0)},
		Size:       3,
	},
	{
		// Transformations of 3 points generated by a 3-cycle and a
		// non-injective map onto {0, 1}: every rank-2 and constant map of
		// T3 is reached, but among the permutations only the three
		// rotations, so 24 of the full monoid's 3^3 = 27 elements.
		Name:       "T3",
		Generators: []element.Transformation{t(1, 2, 0), t(1, 0, 1)},
		Size:       24,
	},
	{
		// S1: a transformation semigroup on 3 points generated by a
		// singleton idempotent-producing pair. Small enough that every
		// element is itself a generator, so the length-one phase alone
		// accounts for the whole rule set.
		Name:          "S1",
		Generators:    []element.Transformation{t(0, 1, 0), t(0, 1, 2)},
		Size:          2,
		NrIdempotents: 2,
		NrRules:       4,
	},
	{
		// S2: a transformation monoid on 6 points generated by 5 maps,
		// the suite's main stress scenario for the associativity
		// shortcut (large enough that most rows take it, not the
		// explicit-multiply fallback).
		Name: "S2",
		Generators: []element.Transformation{
			t(0, 1, 2, 3, 4, 5),
			t(1, 0, 2, 3, 4, 5),
			t(4, 0, 1, 2, 3, 5),
			t(5, 1, 2, 3, 4, 5),
			t(1, 1, 2, 3, 4, 5),
		},
		Size:          7776,
		NrIdempotents: 537,
		NrRules:       2459,
		At100:         []int{5, 3, 4, 1, 2, 5},
		FactorLen100:  7,
	},
}

// PartialPermScenario mirrors Scenario for generating sets of partial
// permutations, whose element type differs from Transformation. EmptyAt is
// the position of the everywhere-undefined partial permutation of the
// scenario's degree, if known.
type PartialPermScenario struct {
	Name          string
	Degree        int
	Generators    []element.PartialPerm
	Size          int
	NrIdempotents int
	NrRules       int
	EmptyAt       int
}

func pp(degree int, dom, img []int) element.PartialPerm {
	return *element.NewPartialPerm(degree, dom, img)
}

// PartialPermScenarios holds S3: a partial permutation monoid generated by
// two partial permutations, small enough to enumerate directly but with
// enough non-injective collisions to exercise both the associativity
// shortcut and the explicit-multiply fallback.
//
// The source listing gives both generators degree 10, yet its second
// generator maps point 4 to image point 10, outside 0..9. Both generators
// are built here with degree 11 so that this point is kept as listed; with
// it, the listed size, idempotent count, rule count and position of the
// empty partial perm all hold (dropping point 4 instead gives 21 elements
// and 8 rules).
var PartialPermScenarios = []PartialPermScenario{
	{
		Name:   "S3",
		Degree: 11,
		Generators: []element.PartialPerm{
			pp(11, []int{0, 1, 2, 3, 5, 6, 9}, []int{9, 7, 3, 5, 4, 2, 1}),
			pp(11, []int{4, 5, 0}, []int{10, 0, 1}),
		},
		Size:          22,
		NrIdempotents: 1,
		NrRules:       9,
		EmptyAt:       10,
	},
}
