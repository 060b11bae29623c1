// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package congruence

import (
	"github.com/gaissmai/semigroups/internal/fp"
	"github.com/gaissmai/semigroups/internal/report"
	"github.com/gaissmai/semigroups/internal/rewrite"
)

// kbfpStrategy computes a congruence by installing a rewriting system
// loaded with the semigroup's relations and the extra pairs, then
// enumerating the rewritten single-letter words with a Froidure-Pin
// engine instantiated over rewrite.WordElement. Two words are congruent
// iff they rewrite to the same normal form, which is exactly what
// WordElement.Product computes, so FP's own element-equality check (hash
// + Equal) does the congruence membership test for free.
//
// This mirrors the original source's KBFP strategy (Knuth-Bendix then
// Froidure-Pin over the quotient), with the same caveat package rewrite
// documents: Identity does not complete the rule set via Knuth-Bendix, so
// this strategy only certifies classes it can actually derive from the
// rules as given, not the full deductive closure a true completion would
// find.
type kbfpStrategy struct {
	s    Semigroup
	sys  rewrite.System
	fpe  *fp.FP[rewrite.WordElement, *rewrite.WordElement]
	done bool
}

func newKBFPStrategy(s Semigroup, pairs []Pair) *kbfpStrategy {
	sys := rewrite.NewIdentity()

	var rules []rewrite.Rule
	s.ResetNextRelation()
	for {
		lhs, rhs, ok := s.NextRelation()
		if !ok {
			break
		}
		rules = append(rules, rewrite.Rule{LHS: lhs, RHS: rhs})
	}
	for _, p := range pairs {
		rules = append(rules, rewrite.Rule{LHS: p.LHS, RHS: p.RHS})
	}
	sys.AddRules(rules)
	rewrite.Configure(sys)

	gens := make([]rewrite.WordElement, s.NrGens())
	for g := range gens {
		gens[g] = rewrite.WordElement{Word: sys.Rewrite([]int{g})}
	}

	return &kbfpStrategy{
		s:   s,
		sys: sys,
		fpe: fp.New[rewrite.WordElement, *rewrite.WordElement](gens, 1, report.Noop),
	}
}

func (st *kbfpStrategy) Name() string { return "kbfp" }

func (st *kbfpStrategy) RunSteps(steps int) bool {
	if st.done {
		return true
	}
	st.fpe.Enumerate(st.fpe.CurrentSize() + steps)
	st.done = st.fpe.IsDone()
	return st.done
}

func (st *kbfpStrategy) Kill() {}

func (st *kbfpStrategy) nrClasses() int {
	st.fpe.Enumerate(fp.LimitMax)
	return st.fpe.CurrentSize()
}

func (st *kbfpStrategy) classOf(word []int) int {
	w := rewrite.WordElement{Word: st.sys.Rewrite(word)}
	pos, ok := st.fpe.Position(&w)
	if !ok {
		panic("congruence: word outside the semigroup generated by the kbfp strategy's generators")
	}
	return pos
}

func (st *kbfpStrategy) representatives() [][]int {
	return nontrivialFromSemigroup(st.s, st.classOf)
}
