// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package fp implements the Froidure-Pin incremental enumeration engine:
// an incremental, restartable breadth-first enumeration of a semigroup's
// elements that simultaneously builds the left and right Cayley graphs,
// the word-length table, and a canonical rewriting relation set.
//
// The algorithms here are transcribed from the Semigroup class in the
// original libsemigroups C++ source (semigroups.h / semigroups.cc),
// restructured into Go idiom: explicit loops instead of gotos, panics
// instead of asserts for precondition violations, and generics instead of
// virtual dispatch over an Element base class (element.Element[T]).
package fp

import (
	"sync"

	"github.com/gaissmai/semigroups/element"
	"github.com/gaissmai/semigroups/internal/packed"
	"github.com/gaissmai/semigroups/internal/report"
)

// Undefined is the sentinel for "no such position/coset/letter", matching
// UNDEFINED in spec section 6.
const Undefined = -1

// LimitMax requests full enumeration; pass it as the limit argument of
// Enumerate.
const LimitMax = int(^uint(0) >> 1)

// DefaultBatchSize is the number of extra elements generated per implicit
// enumeration step triggered by Position, per spec section 6.
const DefaultBatchSize = 8192

// IdempotentParallelThreshold is the size below which multithreaded
// idempotent search is not attempted, ported verbatim from the original
// source's hard-coded 7^7 cutoff. Spec section 9 explicitly calls this an
// undocumented tuning constant, not to be rationalised further.
const IdempotentParallelThreshold = 823543

// dupGen records that generator Letter is a duplicate of the element first
// introduced as generator FirstPos's generator index.
type dupGen struct {
	Letter   int
	FirstPos int
}

// rule records one defining relation word1 = word2 discovered during
// enumeration, where word1 is some known word extended by one letter and
// word2 is the position its product turned out to already occupy.
type rule struct {
	lhsPos int // position whose word, extended by lhsGen, is the relation's left side
	lhsGen int
	rhs    int // position equal to lhsPos*gens[lhsGen]
}

// FP is the Froidure-Pin enumeration state for elements of type T, whose
// pointer type PT implements element.Element[T].
type FP[T any, PT element.Element[T]] struct {
	mu sync.Mutex // serialises Enumerate; defence-in-depth per spec section 5

	batchSize  int
	maxThreads int
	degree     int
	nrGens     int

	elements []T
	buckets  map[uint64][]int // hash -> candidate positions, resolved via Equal

	gens          []T
	duplicateGens []dupGen
	letterToPos   []int

	right     *packed.Table[int]
	left      *packed.Table[int]
	leftReady bool

	first  []int
	final  []int
	prefix []int
	suffix []int
	length []int

	order      []int // traversal (insertion) order, a.k.a. "_index"
	lenIndex   []int
	reduced    *packed.Table[bool]
	multiplied []bool

	pos     int
	wordlen int
	nrRules int

	foundOne bool
	posOne   int
	id       T

	tmp []T // per-thread scratch destinations for Product, len == max(1,maxThreads)

	nrIdempotents    int
	isIdempotent     []bool
	idempotents      []int
	idempotentsStart int

	sortedPerm    []int
	sortedInverse []int
	sortedValid   bool

	rules   []rule // defining relations discovered so far, in discovery order
	relIter int    // ResetNextRelation/NextRelation cursor into rules

	lengthOneDone bool // whether the one-time length-one phase has run
	shortcutGens  int  // nrGens as of the last length-one phase; see defineRightGeneralLocked

	sink report.Sink
}

// New constructs a Froidure-Pin engine from a non-empty slice of
// generators, deep-copying them the way the original Semigroup
// constructor copies via really_copy. Panics if gens is empty or if the
// generators do not share a common degree (PreconditionViolation, per
// spec section 7).
func New[T any, PT element.Element[T]](gens []T, maxThreads int, sink report.Sink) *FP[T, PT] {
	if len(gens) == 0 {
		panic("fp: zero generators")
	}
	degree := PT(&gens[0]).Degree()
	for i := range gens {
		if PT(&gens[i]).Degree() != degree {
			panic("fp: generator degree mismatch")
		}
	}
	if maxThreads < 1 {
		maxThreads = 1
	}

	s := &FP[T, PT]{
		batchSize:  DefaultBatchSize,
		maxThreads: maxThreads,
		degree:     degree,
		nrGens:     len(gens),
		buckets:    make(map[uint64][]int),
		right:      packed.New[int](len(gens), 0),
		left:       packed.New[int](len(gens), 0),
		reduced:    packed.New[bool](len(gens), 0),
		lenIndex:   []int{0},
		tmp:        make([]T, maxThreads),
		sink:       report.Select(sink != report.Sink(nil), sink),
	}
	s.id = PT(&gens[0]).Identity()

	s.gens = make([]T, len(gens))
	for i := range gens {
		s.gens[i] = PT(&gens[i]).Clone()
	}

	for i := range s.gens {
		if p, ok := s.find(&s.gens[i]); ok {
			s.letterToPos = append(s.letterToPos, p)
			s.duplicateGens = append(s.duplicateGens, dupGen{Letter: i, FirstPos: p})
			s.rules = append(s.rules, rule{lhsPos: Undefined, lhsGen: i, rhs: p})
			s.nrRules++
			continue
		}
		pos := len(s.elements)
		s.markIfIdentity(&s.gens[i], pos)
		s.elements = append(s.elements, PT(&s.gens[i]).Clone())
		s.first = append(s.first, i)
		s.final = append(s.final, i)
		s.length = append(s.length, 1)
		s.prefix = append(s.prefix, Undefined)
		s.suffix = append(s.suffix, Undefined)
		s.order = append(s.order, pos)
		s.insert(&s.elements[pos], pos)
		s.letterToPos = append(s.letterToPos, pos)
	}
	s.expand(len(s.elements))
	s.lenIndex = append(s.lenIndex, len(s.order))
	s.multiplied = make([]bool, len(s.elements))

	return s
}

func (s *FP[T, PT]) markIfIdentity(x *T, pos int) {
	if !s.foundOne && PT(x).Equal(&s.id) {
		s.foundOne = true
		s.posOne = pos
	}
}

// find returns the position of x in the element table, if present.
func (s *FP[T, PT]) find(x *T) (int, bool) {
	h := PT(x).Hash()
	for _, p := range s.buckets[h] {
		if PT(&s.elements[p]).Equal(x) {
			return p, true
		}
	}
	return 0, false
}

// insert records that s.elements[pos] (already appended) is addressable by
// its hash bucket.
func (s *FP[T, PT]) insert(x *T, pos int) {
	h := PT(x).Hash()
	s.buckets[h] = append(s.buckets[h], pos)
}

// expand grows the Cayley graphs and the reduced-flag table by n rows, and
// extends the multiplied watermark slice, mirroring Semigroup::expand.
func (s *FP[T, PT]) expand(n int) {
	s.left.AddRows(n)
	s.right.AddRows(n)
	s.reduced.AddRows(n)
	s.multiplied = append(s.multiplied, make([]bool, n)...)
}

// Degree returns the fixed degree of the semigroup's elements.
func (s *FP[T, PT]) Degree() int { return s.degree }

// NrGens returns the number of generators, including duplicates.
func (s *FP[T, PT]) NrGens() int { return s.nrGens }

// SetBatchSize changes the number of elements generated per implicit batch.
func (s *FP[T, PT]) SetBatchSize(n int) { s.batchSize = n }

// SetMaxThreads changes the worker count used by the multithreaded
// idempotent search.
func (s *FP[T, PT]) SetMaxThreads(n int) {
	if n < 1 {
		n = 1
	}
	s.maxThreads = n
	if len(s.tmp) < n {
		s.tmp = append(s.tmp, make([]T, n-len(s.tmp))...)
	}
}

// Reserve pre-allocates room for at least n elements, amortising growth.
func (s *FP[T, PT]) Reserve(n int) {
	if n <= len(s.elements) {
		return
	}
	extra := n - len(s.elements)
	grown := make([]T, 0, len(s.elements)+extra)
	grown = append(grown, s.elements...)
	s.elements = grown
}

// IsDone reports whether every discovered element has been multiplied by
// every generator.
func (s *FP[T, PT]) IsDone() bool { return s.pos >= len(s.elements) }

// Size runs enumeration to completion and returns the number of elements.
func (s *FP[T, PT]) Size() int {
	s.Enumerate(LimitMax)
	return len(s.elements)
}

// CurrentSize returns the number of elements discovered so far, without
// triggering further enumeration.
func (s *FP[T, PT]) CurrentSize() int { return len(s.elements) }

// NrRules runs enumeration to completion and returns the size of the
// minimal defining relation set.
func (s *FP[T, PT]) NrRules() int {
	s.Enumerate(LimitMax)
	return s.nrRules
}

// GensLookup returns the position of the letter-th generator.
func (s *FP[T, PT]) GensLookup(letter int) int {
	if letter < 0 || letter >= len(s.letterToPos) {
		panic("fp: generator index out of range")
	}
	return s.letterToPos[letter]
}
