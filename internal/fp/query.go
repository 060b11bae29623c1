// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package fp

// At returns a clone of the element at position pos. Triggers enumeration
// up to pos+1 if it has not yet been discovered.
func (s *FP[T, PT]) At(pos int) T {
	s.Enumerate(pos + 1)
	if pos < 0 || pos >= len(s.elements) {
		panic("fp: position out of range")
	}
	return PT(&s.elements[pos]).Clone()
}

// Position returns the position of x, enumerating in batches until x is
// found or the semigroup is exhausted. Returns (Undefined, false) if x is
// not an element of the semigroup.
func (s *FP[T, PT]) Position(x *T) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if p, ok := s.find(x); ok {
			return p, true
		}
		if s.IsDone() {
			return Undefined, false
		}
		s.enumerateLocked(len(s.elements) + s.batchSize)
	}
}

// Contains reports whether x belongs to the semigroup.
func (s *FP[T, PT]) Contains(x *T) bool {
	_, ok := s.Position(x)
	return ok
}

// Right returns the position reached by right-multiplying the element at
// pos by generator g, enumerating as needed.
func (s *FP[T, PT]) Right(pos, g int) int {
	s.Enumerate(pos + 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	for pos >= s.pos && !s.IsDone() {
		s.enumerateLocked(len(s.elements) + s.batchSize)
	}
	return s.right.Get(pos, g)
}

// Left returns the position reached by left-multiplying the element at pos
// by generator g. The left Cayley graph is computed lazily, in full, the
// first time it is queried: unlike the right graph it is not a byproduct
// of enumeration order, so it is filled by direct brute-force product
// once the semigroup is closed.
func (s *FP[T, PT]) Left(pos, g int) int {
	s.Enumerate(LimitMax)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLeftLocked()
	return s.left.Get(pos, g)
}

func (s *FP[T, PT]) ensureLeftLocked() {
	if s.leftReady {
		return
	}
	const threadID = 0
	n := len(s.elements)
	for i := 0; i < n; i++ {
		for g := 0; g < s.nrGens; g++ {
			dst := &s.tmp[threadID]
			PT(dst).Product(&s.gens[g], &s.elements[i], threadID)
			q, ok := s.find(dst)
			if !ok {
				panic("fp: left product outside closed semigroup")
			}
			s.left.Set(i, g, q)
		}
	}
	s.leftReady = true
}

// First returns the generator that begins the canonical word for pos.
func (s *FP[T, PT]) First(pos int) int { s.Enumerate(pos + 1); return s.first[pos] }

// Final returns the generator that ends the canonical word for pos.
func (s *FP[T, PT]) Final(pos int) int { s.Enumerate(pos + 1); return s.final[pos] }

// Length returns the length of the canonical (shortlex-minimal, in
// discovery order) word for pos.
func (s *FP[T, PT]) Length(pos int) int { s.Enumerate(pos + 1); return s.length[pos] }

// Prefix returns the position of the canonical word for pos with its last
// letter removed, or Undefined if pos is a generator.
func (s *FP[T, PT]) Prefix(pos int) int { s.Enumerate(pos + 1); return s.prefix[pos] }

// Suffix returns the position of the canonical word for pos with its first
// letter removed, or Undefined if pos is a generator.
func (s *FP[T, PT]) Suffix(pos int) int { s.Enumerate(pos + 1); return s.suffix[pos] }

// Factorisation returns a word of generator indices whose product is the
// element at pos, reconstructed by walking the prefix chain.
func (s *FP[T, PT]) Factorisation(pos int) []int {
	s.Enumerate(pos + 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos < 0 || pos >= len(s.elements) {
		panic("fp: position out of range")
	}
	return s.factorisationLocked(pos)
}

// WordToPos computes the position reached by applying word (a sequence of
// generator indices) starting from the identity-less empty product,
// enumerating on demand. Panics if word contains an out-of-range letter.
func (s *FP[T, PT]) WordToPos(word []int) int {
	if len(word) == 0 {
		panic("fp: empty word has no position")
	}
	pos := s.GensLookup(word[0])
	for _, g := range word[1:] {
		if g < 0 || g >= s.nrGens {
			panic("fp: letter out of range")
		}
		pos = s.Right(pos, g)
	}
	return pos
}

// WordToElement computes the element reached by applying word, without
// requiring it to already be tabulated: it enumerates as far as WordToPos
// needs and returns a clone of the element there.
func (s *FP[T, PT]) WordToElement(word []int) T {
	pos := s.WordToPos(word)
	return s.At(pos)
}

// ProductByReduction computes the position of elements[p]*elements[q] by
// walking the shorter operand's canonical word one letter at a time against
// the already-known Cayley graph, without ever calling the element type's
// Product. Mirrors Semigroup::product_by_reduction: if p is no longer than
// q, it peels letters off p's end (via Prefix/Final, through Left), since
// p's canonical word is prefix(p) followed by the single letter final(p);
// otherwise it peels letters off q's start (via Suffix/First, through
// Right), since q's canonical word is first(q) followed by suffix(q).
func (s *FP[T, PT]) ProductByReduction(p, q int) int {
	s.Enumerate(p + 1)
	s.Enumerate(q + 1)

	if s.Length(p) <= s.Length(q) {
		acc := q
		for cur := p; cur != Undefined; cur = s.Prefix(cur) {
			acc = s.Left(acc, s.Final(cur))
		}
		return acc
	}

	acc := p
	for cur := q; cur != Undefined; cur = s.Suffix(cur) {
		acc = s.Right(acc, s.First(cur))
	}
	return acc
}

// FastProduct computes the position of elements[p]*elements[q], choosing
// between ProductByReduction and a direct Product call based on whichever
// is cheaper: tracing a canonical word of length L costs L table lookups,
// which wins whenever L is smaller than twice the element type's abstract
// multiplication cost (Element.Complexity).
func (s *FP[T, PT]) FastProduct(p, q, threadID int) int {
	s.Enumerate(p + 1)
	s.Enumerate(q + 1)

	s.mu.Lock()
	lp, lq := s.length[p], s.length[q]
	complexity := PT(&s.elements[p]).Complexity()
	s.mu.Unlock()

	if lp < 2*complexity || lq < 2*complexity {
		return s.ProductByReduction(p, q)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dst := &s.tmp[threadID]
	PT(dst).Product(&s.elements[p], &s.elements[q], threadID)
	if pos, ok := s.find(dst); ok {
		return pos
	}
	panic("fp: fast product outside closed semigroup")
}

// NrClasses is an alias for Size: each element of the semigroup is its own
// class of the trivial congruence.
func (s *FP[T, PT]) NrClasses() int { return s.Size() }
