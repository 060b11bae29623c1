// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package congruence computes the classes of a congruence on a finitely
// presented semigroup: an equivalence relation respecting multiplication,
// generated by the semigroup's own defining relations together with a
// caller-supplied set of extra generating pairs. It races independent
// strategies (Todd-Coxeter coset enumeration, direct pair-orbit closure,
// Knuth-Bendix-backed word rewriting) and keeps whichever finishes first,
// mirroring the Congruence class in the original libsemigroups C++
// source, which races TC/TC_PREFILL/P/KBP/KBFP the same way via its DATA
// strategy objects.
package congruence

import (
	"github.com/gaissmai/semigroups/internal/driver"
)

// Kind distinguishes left, right, and two-sided congruences: which side
// of each generating pair's consequences get propagated.
type Kind int

const (
	Right Kind = iota
	Left
	TwoSided
)

// Semigroup is the read-only view internal/fp.FP exposes to this package,
// kept narrow and non-generic so Congruence never has to parametrise over
// FP's element type.
type Semigroup interface {
	NrGens() int
	Size() int
	ResetNextRelation()
	NextRelation() (lhs, rhs []int, ok bool)
	GensLookup(letter int) int
	Right(pos, g int) int
	Left(pos, g int) int
	WordToPos(word []int) int
	Factorisation(pos int) []int
}

// Pair is one extra generating pair (LHS, RHS words) the congruence
// identifies, beyond whatever relations already hold in the semigroup.
type Pair struct {
	LHS []int
	RHS []int
}

// Congruence computes and answers queries about the classes of a
// congruence on S generated by Pairs.
type Congruence struct {
	kind  Kind
	s     Semigroup
	pairs []Pair

	forced     string // "", "tc", "pairorbit", "kbfp": set by the Force* methods
	maxThreads int

	result classifier
}

// classifier is whatever a winning strategy produces: enough to answer
// NrClasses/WordToClassIndex/NontrivialClasses without referring back to
// the strategy that built it.
type classifier interface {
	nrClasses() int
	classOf(word []int) int
	representatives() [][]int
}

// New returns a congruence of the given kind on s, generated additionally
// by pairs.
func New(kind Kind, s Semigroup, pairs []Pair) *Congruence {
	return &Congruence{kind: kind, s: s, pairs: append([]Pair(nil), pairs...), maxThreads: 1}
}

// SetMaxThreads records a thread bound for the congruence. Run does not
// consult it: it starts every applicable strategy (or the forced one)
// concurrently, however many that is.
func (c *Congruence) SetMaxThreads(n int) {
	if n < 1 {
		n = 1
	}
	c.maxThreads = n
}

// ForceTC restricts Run to the Todd-Coxeter strategy only.
func (c *Congruence) ForceTC() { c.forced = "tc" }

// ForcePairOrbit restricts Run to the direct pair-orbit strategy only.
// Only applicable when the underlying semigroup is finite, which is
// always true for semigroups built by this module's internal/fp engine.
func (c *Congruence) ForcePairOrbit() { c.forced = "pairorbit" }

// ForceKBFP restricts Run to the Knuth-Bendix-then-Froidure-Pin strategy.
func (c *Congruence) ForceKBFP() { c.forced = "kbfp" }

// Run computes the congruence's classes, racing every applicable strategy
// unless one has been forced, and caches the winner for subsequent
// queries. Safe to call more than once; later calls are no-ops.
func (c *Congruence) Run() {
	if c.result != nil {
		return
	}

	var strategies []driver.Strategy
	var classifiers []classifier

	addTC := func() {
		st := newTCStrategy(c.kind, c.s, c.pairs)
		strategies = append(strategies, st)
		classifiers = append(classifiers, st)
	}
	addPairOrbit := func() {
		st := newPairOrbitStrategy(c.kind, c.s, c.pairs)
		strategies = append(strategies, st)
		classifiers = append(classifiers, st)
	}
	addKBFP := func() {
		st := newKBFPStrategy(c.s, c.pairs)
		strategies = append(strategies, st)
		classifiers = append(classifiers, st)
	}

	switch c.forced {
	case "tc":
		addTC()
	case "pairorbit":
		addPairOrbit()
	case "kbfp":
		addKBFP()
	default:
		addTC()
		addPairOrbit()
		addKBFP()
	}

	res := driver.Race(strategies, 256)
	c.result = classifiers[res.Index]
}

// NrClasses returns the number of congruence classes.
func (c *Congruence) NrClasses() int {
	c.Run()
	return c.result.nrClasses()
}

// WordToClassIndex returns the class index of word.
func (c *Congruence) WordToClassIndex(word []int) int {
	c.Run()
	return c.result.classOf(word)
}

// NontrivialClasses returns one representative word per class containing
// more than one element of the semigroup, i.e. every class actually
// formed by an identification rather than a singleton.
func (c *Congruence) NontrivialClasses() [][]int {
	c.Run()
	return c.result.representatives()
}

// reversed returns a reversed copy of word, used to reduce a LEFT
// congruence to the same right-multiplication tracing machinery used for
// RIGHT and TWOSIDED: reversing every word turns "apply on the left" into
// "apply on the right" in the mirror-image presentation.
func reversed(word []int) []int {
	out := make([]int, len(word))
	for i, v := range word {
		out[len(word)-1-i] = v
	}
	return out
}

// nontrivialFromSemigroup groups every element of s's (finite) element
// list by classOf(factorisation) and returns one representative word per
// group with more than one member.
func nontrivialFromSemigroup(s Semigroup, classOf func([]int) int) [][]int {
	n := s.Size()
	groups := make(map[int][]int) // class -> representative word (first word seen)
	counts := make(map[int]int)
	for pos := 0; pos < n; pos++ {
		word := s.Factorisation(pos)
		cls := classOf(word)
		counts[cls]++
		if _, ok := groups[cls]; !ok {
			groups[cls] = word
		}
	}
	var out [][]int
	for cls, count := range counts {
		if count > 1 {
			out = append(out, groups[cls])
		}
	}
	return out
}
