// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaissmai/semigroups/internal/report"
)

// The cyclic group of order 5 presented as <a | a^5 = identity>, i.e. one
// generator whose 5th power acts as the empty word.
func cyclicOrder5() *TC {
	rel := Relation{LHS: []int{0, 0, 0, 0, 0}, RHS: []int{}}
	return New(1, []Relation{rel}, report.Noop)
}

func TestNrClassesCyclicGroup(t *testing.T) {
	tbl := cyclicOrder5()
	require.Equal(t, 5, tbl.NrClasses())
	require.True(t, tbl.IsDone())
}

// TestNrClassesIsActiveMinusOne pins down the active-vs-classes offset
// itself (nrActive is seeded at 1 before coset 0 is created, so it ends at
// 6 for the five cosets), independently of the class count that
// TestNrClassesCyclicGroup checks.
func TestNrClassesIsActiveMinusOne(t *testing.T) {
	tbl := cyclicOrder5()
	tbl.Run(LimitMax)
	require.Equal(t, 6, tbl.nrActive)
	require.Equal(t, tbl.nrActive-1, tbl.NrClasses())
}

func TestWordToClassWrapsAround(t *testing.T) {
	tbl := cyclicOrder5()
	tbl.Run(LimitMax)
	c0 := tbl.WordToClass([]int{})
	c5 := tbl.WordToClass([]int{0, 0, 0, 0, 0})
	require.Equal(t, c0, c5)

	c1 := tbl.WordToClass([]int{0})
	c6 := tbl.WordToClass([]int{0, 0, 0, 0, 0, 0})
	require.Equal(t, c1, c6)
}

func TestTwoGeneratorRelationsMergeCosets(t *testing.T) {
	// <a, b | a^2 = identity, b^2 = identity, ab = ba> -- Klein four group.
	rels := []Relation{
		{LHS: []int{0, 0}, RHS: []int{}},
		{LHS: []int{1, 1}, RHS: []int{}},
		{LHS: []int{0, 1}, RHS: []int{1, 0}},
	}
	tbl := New(2, rels, report.Noop)
	require.Equal(t, 4, tbl.NrClasses())
}
