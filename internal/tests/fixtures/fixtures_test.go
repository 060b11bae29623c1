// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaissmai/semigroups/element"
	"github.com/gaissmai/semigroups/internal/fp"
	"github.com/gaissmai/semigroups/internal/report"
)

func TestScenarioSizes(t *testing.T) {
	for _, sc := range Scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			gens := append([]element.Transformation(nil), sc.Generators...)
			s := fp.New[element.Transformation, *element.Transformation](gens, 1, report.Noop)
			require.Equal(t, sc.Size, s.Size())
			if sc.NrIdempotents > 0 {
				require.Equal(t, sc.NrIdempotents, s.NrIdempotents())
			}
			if sc.NrRules > 0 {
				require.Equal(t, sc.NrRules, s.NrRules())
			}
			if sc.At100 != nil {
				at100 := s.At(100)
				require.Equal(t, len(sc.At100), len(at100.Images))
				for i, want := range sc.At100 {
					require.Equal(t, uint16(want), at100.Images[i])
				}
				require.Len(t, s.Factorisation(100), sc.FactorLen100)
			}
		})
	}
}

func TestS1Positions(t *testing.T) {
	sc := Scenarios[2] // S1
	require.Equal(t, "S1", sc.Name)
	s := fp.New[element.Transformation, *element.Transformation](sc.Generators, 1, report.Noop)
	s.Size()

	a := t(0, 1, 0)
	b := t(0, 1, 2)
	notAnElement := t(0, 0, 0)

	posA, ok := s.Position(&a)
	require.True(t, ok)
	require.Equal(t, 0, posA)

	posB, ok := s.Position(&b)
	require.True(t, ok)
	require.Equal(t, 1, posB)

	_, ok = s.Position(&notAnElement)
	require.False(t, ok)
}

func TestPartialPermScenarios(t *testing.T) {
	for _, sc := range PartialPermScenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			gens := append([]element.PartialPerm(nil), sc.Generators...)
			s := fp.New[element.PartialPerm, *element.PartialPerm](gens, 1, report.Noop)
			require.Equal(t, sc.Size, s.Size())
			require.Equal(t, sc.NrIdempotents, s.NrIdempotents())
			require.Equal(t, sc.NrRules, s.NrRules())

			empty := element.PartialPerm{Images: make([]int32, sc.Degree)}
			for i := range empty.Images {
				empty.Images[i] = -1
			}
			pos, ok := s.Position(&empty)
			require.True(t, ok)
			require.Equal(t, sc.EmptyAt, pos)
		})
	}
}
