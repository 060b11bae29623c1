// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package semigroups computes with finitely generated semigroups and
// monoids of concrete elements (transformations, partial permutations,
// boolean matrices, bipartitions): enumerating their elements via the
// Froidure-Pin algorithm, and computing congruences on them via
// Todd-Coxeter coset enumeration, direct pair-orbit closure, or
// Knuth-Bendix-backed rewriting.
//
//   - package element defines the algebraic element contract and the
//     concrete types that satisfy it.
//   - FroidurePin, in this package, wraps internal/fp's generic engine for
//     each concrete element type.
//   - package congruence computes congruences over a FroidurePin semigroup.
package semigroups
