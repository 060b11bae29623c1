// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package fp

// ResetNextRelation rewinds the relation cursor used by NextRelation back
// to the first defining relation, mirroring Semigroup::next_relation's
// reset entry point used by the congruence package to replay every known
// relation into a coset table.
func (s *FP[T, PT]) ResetNextRelation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relIter = 0
}

// NextRelation returns the next defining relation as a pair of words over
// generator indices known to evaluate to the same element, and advances
// the cursor. The third return value (ok) is false once every relation
// discovered so far has been returned; callers that want every relation
// (not just those known at the time of the call) should interleave
// NextRelation with further Enumerate calls.
func (s *FP[T, PT]) NextRelation() (lhs, rhs []int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.relIter >= len(s.rules) {
		return nil, nil, false
	}
	r := s.rules[s.relIter]
	s.relIter++

	lhs = s.wordOfLocked(r.lhsPos, r.lhsGen)
	rhs = s.factorisationLocked(r.rhs)
	return lhs, rhs, true
}

// wordOfLocked returns the word for lhsPos extended by one letter lhsGen,
// or just [lhsGen] if lhsPos is Undefined (a duplicate-generator rule).
func (s *FP[T, PT]) wordOfLocked(lhsPos, lhsGen int) []int {
	if lhsPos == Undefined {
		return []int{lhsGen}
	}
	word := s.factorisationLocked(lhsPos)
	return append(word, lhsGen)
}

// factorisationLocked is Factorisation's body, callable while s.mu is
// already held.
func (s *FP[T, PT]) factorisationLocked(pos int) []int {
	var word []int
	for pos != Undefined {
		word = append(word, s.final[pos])
		pos = s.prefix[pos]
	}
	for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
		word[i], word[j] = word[j], word[i]
	}
	return word
}

// NrRulesKnown returns the number of relations discovered so far, without
// forcing enumeration to completion (unlike NrRules).
func (s *FP[T, PT]) NrRulesKnown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}
