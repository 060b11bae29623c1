// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates randomised concrete elements for property-style
// tests, adapted from this module's ancestor's internal/golden random
// prefix generator: math/rand/v2, with the caller supplying the *rand.Rand,
// no global mutable generator state.
package random

import (
	"math/rand/v2"

	"github.com/gaissmai/semigroups/element"
)

// Transformation returns a uniformly random full transformation of
// {0, ..., degree-1}.
func Transformation(rng *rand.Rand, degree int) element.Transformation {
	images := make([]uint16, degree)
	for i := range images {
		images[i] = uint16(rng.IntN(degree))
	}
	return element.Transformation{Images: images}
}

// PartialPerm returns a random injective partial permutation of degree
// points, with each point in the domain independently with probability
// keepProb.
func PartialPerm(rng *rand.Rand, degree int, keepProb float64) element.PartialPerm {
	perm := rng.Perm(degree)
	var dom, img []int
	for _, p := range perm {
		if rng.Float64() < keepProb {
			dom = append(dom, p)
		}
	}
	img = rng.Perm(degree)[:len(dom)]
	return *element.NewPartialPerm(degree, dom, img)
}

// BooleanMatrix returns a random n x n boolean matrix with each entry set
// independently with probability density.
func BooleanMatrix(rng *rand.Rand, n int, density float64) element.BooleanMatrix {
	entries := make([]bool, n*n)
	for i := range entries {
		entries[i] = rng.Float64() < density
	}
	return *element.NewBooleanMatrix(n, entries)
}

// Generators returns n independently random transformations of the given
// degree, suitable as a Froidure-Pin generating set.
func Generators(rng *rand.Rand, n, degree int) []element.Transformation {
	gens := make([]element.Transformation, n)
	for i := range gens {
		gens[i] = Transformation(rng, degree)
	}
	return gens
}
