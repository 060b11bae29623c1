// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package congruence

import "github.com/gaissmai/semigroups/internal/tc"

// tcStrategy computes a congruence's classes by coset-enumerating the
// semigroup's own relations together with the extra generating pairs.
type tcStrategy struct {
	kind  Kind
	s     Semigroup
	table *tc.TC
	limit int
}

func newTCStrategy(kind Kind, s Semigroup, pairs []Pair) *tcStrategy {
	orient := func(w []int) []int {
		if kind == Left {
			return reversed(w)
		}
		return w
	}

	var rels []tc.Relation
	s.ResetNextRelation()
	for {
		lhs, rhs, ok := s.NextRelation()
		if !ok {
			break
		}
		rels = append(rels, tc.Relation{LHS: orient(lhs), RHS: orient(rhs)})
	}
	for _, p := range pairs {
		rels = append(rels, tc.Relation{LHS: orient(p.LHS), RHS: orient(p.RHS)})
	}

	return &tcStrategy{kind: kind, s: s, table: tc.New(s.NrGens(), rels, nil), limit: 0}
}

func (st *tcStrategy) Name() string { return "tc" }

func (st *tcStrategy) RunSteps(steps int) bool {
	st.limit += steps
	st.table.Run(st.limit)
	return st.table.IsDone()
}

func (st *tcStrategy) Kill() {}

// nrClasses leaves out coset 0, the empty word, which is not an element of
// the semigroup.
func (st *tcStrategy) nrClasses() int { return st.table.NrClasses() - 1 }

func (st *tcStrategy) classOf(word []int) int {
	w := word
	if st.kind == Left {
		w = reversed(word)
	}
	return st.table.WordToClass(w)
}

func (st *tcStrategy) representatives() [][]int {
	return nontrivialFromSemigroup(st.s, st.classOf)
}
