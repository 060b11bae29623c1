// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package fp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaissmai/semigroups/element"
	"github.com/gaissmai/semigroups/internal/report"
)

func transformation(images ...int) element.Transformation {
	imgs := make([]uint16, len(images))
	for i, v := range images {
		imgs[i] = uint16(v)
	}
	return element.Transformation{Images: imgs}
}

// transformation semigroup on 3 points generated by a 3-cycle and a
// non-injective map: every rank-2 and constant map is reached, but among
// the permutations only the three rotations, so 24 of T3's 27 elements.
func fullTransformationDegree3() *FP[element.Transformation, *element.Transformation] {
	gens := []element.Transformation{
		transformation(1, 2, 0),
		transformation(1, 0, 1),
	}
	return New[element.Transformation, *element.Transformation](gens, 1, report.Noop)
}

func TestEnumerateSize(t *testing.T) {
	s := fullTransformationDegree3()
	require.Equal(t, 24, s.Size())
	require.True(t, s.IsDone())
}

func TestFactorisationRoundTrips(t *testing.T) {
	s := fullTransformationDegree3()
	s.Enumerate(LimitMax)
	for pos := 0; pos < s.CurrentSize(); pos++ {
		word := s.Factorisation(pos)
		got := s.WordToPos(word)
		require.Equal(t, pos, got)
	}
}

func TestDuplicateGeneratorRecordsRelation(t *testing.T) {
	gens := []element.Transformation{
		transformation(1, 2, 0),
		transformation(1, 2, 0),
	}
	s := New[element.Transformation, *element.Transformation](gens, 1, report.Noop)
	require.Equal(t, 1, s.nrRules)
	require.Equal(t, 1, len(s.duplicateGens))
}

func TestIdempotents(t *testing.T) {
	s := fullTransformationDegree3()
	idem := s.Idempotents()
	for _, pos := range idem {
		require.True(t, s.IsIdempotent(pos))
	}
	require.Greater(t, len(idem), 0)
}

func TestRightAndLeftAgreeWithWordToPos(t *testing.T) {
	s := fullTransformationDegree3()
	s.Enumerate(LimitMax)
	for pos := 0; pos < s.CurrentSize(); pos++ {
		for g := 0; g < s.NrGens(); g++ {
			word := append(s.Factorisation(pos), g)
			require.Equal(t, s.Right(pos, g), s.WordToPos(word))
			leftWord := append([]int{g}, s.Factorisation(pos)...)
			require.Equal(t, s.Left(pos, g), s.WordToPos(leftWord))
		}
	}
}

func TestNextRelationEnumeratesAll(t *testing.T) {
	s := fullTransformationDegree3()
	s.Enumerate(LimitMax)
	s.ResetNextRelation()
	count := 0
	for {
		_, _, ok := s.NextRelation()
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, s.NrRules(), count)
}
