// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package tc implements Todd-Coxeter style coset enumeration for a
// semigroup or monoid presentation: given a number of generators and a
// set of relations (pairs of words), it builds the partial right Cayley
// table ("coset table") of the semigroup the relations generate, growing
// it on demand and identifying cosets ("coincidences") forced by the
// relations until either the table closes (the congruence has finitely
// many classes) or an explicit coset limit is hit.
//
// The coset table, the active/dead coset bookkeeping via a forwarding
// array, and the preimage linked lists are ported from the coset
// enumeration engine in the original libsemigroups C++ source (tc.h /
// tc.cc): new_coset, identify_cosets and trace correspond directly to
// newCoset, identify and defineTrace below. compress() (renumbering active
// cosets to close gaps left by dead ones) is intentionally not ported:
// this module targets the moderate coset counts exercised by the
// congruence package's strategies, not the huge enumerations the original
// engine was built to pack into memory.
package tc

import (
	"sync"

	"github.com/gaissmai/semigroups/internal/packed"
	"github.com/gaissmai/semigroups/internal/report"
)

// Undefined marks a not-yet-defined table entry or coset reference.
const Undefined = -1

// LimitMax requests enumeration until the table closes.
const LimitMax = int(^uint(0) >> 1)

// Relation is one defining relation: LHS and RHS are words over generator
// indices that must act identically on every coset.
type Relation struct {
	LHS []int
	RHS []int
}

// TC is one coset enumeration instance.
type TC struct {
	mu sync.Mutex

	nrGens int
	table  *packed.Table[int] // table.Get(c, g) = coset reached by c under generator g

	fwd []int // fwd[c] == c: c is active. Otherwise c was identified away; fwd
	// chains (with path compression via find) toward the surviving coset.

	preimInit *packed.Table[int] // preimInit.Get(c, g) = one preimage of c under g
	preimNext []int              // preimNext[p] = next preimage in the same (c, g) bucket as p

	active []int // active cosets, in creation order (processing cursor walks this)

	relations []Relation

	cursor int // index into active of the next coset to process

	nrActive int
	done     bool

	sink      report.Sink
	batchSize int
}

// New returns a coset table with a single coset (0, the identity coset)
// and the given relations, ready for Run.
func New(nrGens int, relations []Relation, sink report.Sink) *TC {
	if nrGens < 1 {
		panic("tc: zero generators")
	}
	t := &TC{
		nrGens:    nrGens,
		table:     packed.New[int](nrGens, 0),
		preimInit: packed.New[int](nrGens, 0),
		relations: append([]Relation(nil), relations...),
		sink:      report.Select(sink != report.Sink(nil), sink),
		batchSize: 1024,
		nrActive:  1, // base count coset 0 is charged against, per NrClasses
	}
	t.fillUndefined(t.table, 0)
	t.newCoset()
	return t
}

func (t *TC) fillUndefined(tbl *packed.Table[int], fromRow int) {
	for r := fromRow; r < tbl.NrRows(); r++ {
		for g := 0; g < t.nrGens; g++ {
			tbl.Set(r, g, Undefined)
		}
	}
}

// newCoset allocates and activates a fresh coset, returning its id.
func (t *TC) newCoset() int {
	c := len(t.fwd)
	t.fwd = append(t.fwd, c)
	t.preimNext = append(t.preimNext, Undefined)
	t.table.AddRows(1)
	t.preimInit.AddRows(1)
	for g := 0; g < t.nrGens; g++ {
		t.table.Set(c, g, Undefined)
		t.preimInit.Set(c, g, Undefined)
	}
	t.active = append(t.active, c)
	t.nrActive++
	return c
}

// find returns the surviving coset that c was identified into, compressing
// the forwarding chain as it goes, exactly like union-find's find.
func (t *TC) find(c int) int {
	root := c
	for t.fwd[root] != root {
		root = t.fwd[root]
	}
	for t.fwd[c] != root {
		t.fwd[c], c = root, t.fwd[c]
	}
	return root
}

// NrGens returns the number of generators the table is indexed by.
func (t *TC) NrGens() int { return t.nrGens }

// NrClasses runs enumeration to completion and returns the number of
// distinct cosets (congruence classes): active-1, since nrActive is seeded
// at 1 before coset 0 (the identity class) is even created, so every
// surviving coset including coset 0 is counted once against that base.
func (t *TC) NrClasses() int {
	t.Run(LimitMax)
	return t.nrActive - 1
}

// IsDone reports whether every active coset has had every relation traced
// through it.
func (t *TC) IsDone() bool { return t.done }

// WordToClass returns the canonical (surviving) coset for word,
// tracing it from the identity coset, defining new cosets on demand.
func (t *TC) WordToClass(word []int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := 0
	for _, g := range word {
		if g < 0 || g >= t.nrGens {
			panic("tc: letter out of range")
		}
		c = t.defineTrace(c, g)
	}
	return t.find(c)
}
