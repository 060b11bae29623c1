// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package semigroups

import "github.com/gaissmai/semigroups/internal/fp"

// Word is a sequence of generator indices, read left to right as the
// product gens[w[0]] * gens[w[1]] * ... * gens[w[len(w)-1]].
type Word []int

// Undefined is the sentinel returned in place of a position, coset, or
// generator index when no such value exists.
const Undefined = fp.Undefined

// LimitMax requests enumeration or coset enumeration run to completion,
// rather than up to some bounded count.
const LimitMax = fp.LimitMax
