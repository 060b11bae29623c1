// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package congruence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaissmai/semigroups/element"
	"github.com/gaissmai/semigroups/internal/fp"
	"github.com/gaissmai/semigroups/internal/report"
)

func transformation(images ...int) element.Transformation {
	imgs := make([]uint16, len(images))
	for i, v := range images {
		imgs[i] = uint16(v)
	}
	return element.Transformation{Images: imgs}
}

func fullTransformationDegree3() *fp.FP[element.Transformation, *element.Transformation] {
	gens := []element.Transformation{
		transformation(1, 2, 0),
		transformation(1, 0, 1),
	}
	return fp.New[element.Transformation, *element.Transformation](gens, 1, report.Noop)
}

func TestUniversalCongruenceHasOneClass(t *testing.T) {
	s := fullTransformationDegree3()
	s.Enumerate(fp.LimitMax)

	// Identify every generator with every other generator directly: that
	// alone forces the whole semigroup into one class since every element
	// is a product of generators.
	pairs := []Pair{{LHS: []int{0}, RHS: []int{1}}}

	c := New(TwoSided, s, pairs)
	c.ForceTC()
	require.Equal(t, 1, c.NrClasses())
}

func TestPairOrbitAgreesWithTCOnTrivialCongruence(t *testing.T) {
	s := fullTransformationDegree3()
	s.Enumerate(fp.LimitMax)

	cTC := New(TwoSided, s, nil)
	cTC.ForceTC()

	cPO := New(TwoSided, s, nil)
	cPO.ForcePairOrbit()

	require.Equal(t, cTC.NrClasses(), cPO.NrClasses())
	require.Equal(t, s.Size(), cTC.NrClasses())
}
