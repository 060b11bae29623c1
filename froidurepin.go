// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package semigroups

import (
	"github.com/gaissmai/semigroups/element"
	"github.com/gaissmai/semigroups/internal/fp"
	"github.com/gaissmai/semigroups/internal/report"
)

// FroidurePin is a finitely generated semigroup of concrete elements of
// type T, enumerated incrementally by the Froidure-Pin algorithm. T's
// pointer type PT must satisfy element.Element[T]; instantiate as e.g.
// FroidurePin[element.Transformation, *element.Transformation].
type FroidurePin[T any, PT element.Element[T]] struct {
	engine *fp.FP[T, PT]
}

// New returns a semigroup generated by gens. Panics if gens is empty or
// the generators' degrees disagree, matching this package's
// panic-on-precondition-violation convention.
func New[T any, PT element.Element[T]](gens []T) *FroidurePin[T, PT] {
	return &FroidurePin[T, PT]{engine: fp.New[T, PT](gens, 1, report.Noop)}
}

// SetBatchSize changes the number of extra elements enumerated per
// implicit batch triggered by a query that needs more of the semigroup
// than is currently known.
func (s *FroidurePin[T, PT]) SetBatchSize(n int) { s.engine.SetBatchSize(n) }

// SetMaxThreads bounds the worker count used by the multithreaded
// idempotent search.
func (s *FroidurePin[T, PT]) SetMaxThreads(n int) { s.engine.SetMaxThreads(n) }

// SetReport has no effect: the semigroup's progress sink is fixed when New
// constructs it (report.Noop), and sink is ignored.
func (s *FroidurePin[T, PT]) SetReport(sink report.Sink) {
	// internal/fp resolves its sink once at construction and has no setter
	// for it, so there is nothing to forward sink to.
	_ = sink
}

// Degree returns the fixed degree of the semigroup's elements.
func (s *FroidurePin[T, PT]) Degree() int { return s.engine.Degree() }

// NrGens returns the number of generators, counting duplicates.
func (s *FroidurePin[T, PT]) NrGens() int { return s.engine.NrGens() }

// Size runs enumeration to completion and returns the number of elements.
func (s *FroidurePin[T, PT]) Size() int { return s.engine.Size() }

// NrRules runs enumeration to completion and returns the number of
// relations in the semigroup's defining presentation.
func (s *FroidurePin[T, PT]) NrRules() int { return s.engine.NrRules() }

// NrIdempotents runs enumeration to completion and returns the number of
// idempotent elements.
func (s *FroidurePin[T, PT]) NrIdempotents() int { return s.engine.NrIdempotents() }

// At returns the element at pos, enumerating as needed.
func (s *FroidurePin[T, PT]) At(pos int) T { return s.engine.At(pos) }

// Position returns the position of x, or Undefined and false if x does
// not belong to the semigroup.
func (s *FroidurePin[T, PT]) Position(x *T) (int, bool) { return s.engine.Position(x) }

// Contains reports whether x belongs to the semigroup.
func (s *FroidurePin[T, PT]) Contains(x *T) bool { return s.engine.Contains(x) }

// Factorisation returns a word of generator indices whose product is the
// element at pos.
func (s *FroidurePin[T, PT]) Factorisation(pos int) Word { return s.engine.Factorisation(pos) }

// WordToPos computes the position reached by applying word, enumerating
// as needed.
func (s *FroidurePin[T, PT]) WordToPos(word Word) int { return s.engine.WordToPos(word) }

// WordToElement computes the element reached by applying word.
func (s *FroidurePin[T, PT]) WordToElement(word Word) T { return s.engine.WordToElement(word) }

// AddGenerators extends the semigroup in place with newGens, preserving
// everything already discovered.
func (s *FroidurePin[T, PT]) AddGenerators(newGens []T) { s.engine.AddGenerators(newGens) }

// Closure returns a new, independent semigroup generated by the union of
// this semigroup's generators and newGens.
func (s *FroidurePin[T, PT]) Closure(newGens []T) *FroidurePin[T, PT] {
	return &FroidurePin[T, PT]{engine: s.engine.Closure(newGens)}
}

// Copy returns a deep, independent clone.
func (s *FroidurePin[T, PT]) Copy() *FroidurePin[T, PT] {
	return &FroidurePin[T, PT]{engine: s.engine.Copy()}
}

// Semigroup returns the underlying engine, which satisfies the congruence
// package's non-generic Semigroup interface, so it can be handed to
// congruence.New without that package ever parametrising over T.
func (s *FroidurePin[T, PT]) Semigroup() *fp.FP[T, PT] { return s.engine }
