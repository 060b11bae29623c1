// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package fp

// AddGenerators extends the semigroup in place with newGens, widening the
// degree of every previously discovered element (via CloneWidened) if any
// new generator has a larger degree, then resuming enumeration from the
// existing frontier. Mirrors Semigroup::add_generators: already-known
// relations are preserved, only the new letters' reachable closure is
// explored.
func (s *FP[T, PT]) AddGenerators(newGens []T) {
	if len(newGens) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	maxDegree := s.degree
	for i := range newGens {
		if d := PT(&newGens[i]).Degree(); d > maxDegree {
			maxDegree = d
		}
	}
	if maxDegree > s.degree {
		s.widenLocked(maxDegree)
	}

	s.right.AddCols(len(newGens))
	s.left.AddCols(len(newGens))
	s.reduced.AddCols(len(newGens))

	base := s.nrGens
	for i := range newGens {
		g := PT(&newGens[i]).CloneWidened(maxDegree - PT(&newGens[i]).Degree())
		s.gens = append(s.gens, g)
	}
	s.nrGens += len(newGens)

	for i := 0; i < len(newGens); i++ {
		letter := base + i
		idx := letter
		if p, ok := s.find(&s.gens[idx]); ok {
			s.letterToPos = append(s.letterToPos, p)
			s.duplicateGens = append(s.duplicateGens, dupGen{Letter: letter, FirstPos: p})
			s.rules = append(s.rules, rule{lhsPos: Undefined, lhsGen: letter, rhs: p})
			s.nrRules++
			continue
		}
		pos := len(s.elements)
		s.markIfIdentity(&s.gens[idx], pos)
		s.elements = append(s.elements, PT(&s.gens[idx]).Clone())
		s.expand(1)
		s.first = append(s.first, letter)
		s.final = append(s.final, letter)
		s.length = append(s.length, 1)
		s.prefix = append(s.prefix, Undefined)
		s.suffix = append(s.suffix, Undefined)
		s.order = append(s.order, pos)
		s.insert(&s.elements[pos], pos)
		s.letterToPos = append(s.letterToPos, pos)
	}
	// Fill in the new generators' columns for every position discovered
	// before they were added; defineRightLocked may itself discover further
	// new positions, which the normal Enumerate loop will pick up (and
	// process against every generator, old and new) once it reaches them
	// in s.order.
	oldElementCount := s.pos // positions already fully processed against the old generator set
	for i := 0; i < oldElementCount; i++ {
		for g := base; g < s.nrGens; g++ {
			s.defineRightLocked(i, g, 0)
		}
	}

	s.lenIndex[len(s.lenIndex)-1] = len(s.order)
	s.leftReady = false
	s.sortedValid = false
}

// widenLocked replaces every already-discovered element and generator with
// its CloneWidened counterpart, and rebuilds the hash buckets (Hash and
// Equal may depend on degree). Used when AddGenerators introduces a
// generator of larger degree than the semigroup's current one.
func (s *FP[T, PT]) widenLocked(newDegree int) {
	delta := newDegree - s.degree
	for i := range s.elements {
		s.elements[i] = PT(&s.elements[i]).CloneWidened(delta)
	}
	for i := range s.gens {
		s.gens[i] = PT(&s.gens[i]).CloneWidened(delta)
	}
	idElem := PT(&s.id).CloneWidened(delta)
	s.id = idElem

	s.buckets = make(map[uint64][]int, len(s.elements))
	for pos := range s.elements {
		s.insert(&s.elements[pos], pos)
	}
	s.degree = newDegree
}

// Closure returns a new, independent semigroup generated by the union of
// the receiver's generators and newGens, leaving the receiver untouched.
func (s *FP[T, PT]) Closure(newGens []T) *FP[T, PT] {
	cp := s.Copy()
	cp.AddGenerators(newGens)
	return cp
}

// Copy returns a deep, independent clone of s, safe to mutate or enumerate
// concurrently with the original.
func (s *FP[T, PT]) Copy() *FP[T, PT] {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := &FP[T, PT]{
		batchSize:  s.batchSize,
		maxThreads: s.maxThreads,
		degree:     s.degree,
		nrGens:     s.nrGens,
		buckets:    make(map[uint64][]int, len(s.buckets)),
		pos:        s.pos,
		wordlen:    s.wordlen,
		nrRules:    s.nrRules,
		foundOne:   s.foundOne,
		posOne:     s.posOne,
		id:         PT(&s.id).Clone(),
		leftReady:     s.leftReady,
		sink:          s.sink,
		tmp:           make([]T, s.maxThreads),
		lengthOneDone: s.lengthOneDone,
		shortcutGens:  s.shortcutGens,
	}

	cp.elements = make([]T, len(s.elements))
	for i := range s.elements {
		cp.elements[i] = PT(&s.elements[i]).Clone()
	}
	cp.gens = make([]T, len(s.gens))
	for i := range s.gens {
		cp.gens[i] = PT(&s.gens[i]).Clone()
	}
	cp.duplicateGens = append([]dupGen(nil), s.duplicateGens...)
	cp.letterToPos = append([]int(nil), s.letterToPos...)
	cp.first = append([]int(nil), s.first...)
	cp.final = append([]int(nil), s.final...)
	cp.prefix = append([]int(nil), s.prefix...)
	cp.suffix = append([]int(nil), s.suffix...)
	cp.length = append([]int(nil), s.length...)
	cp.order = append([]int(nil), s.order...)
	cp.lenIndex = append([]int(nil), s.lenIndex...)
	cp.multiplied = append([]bool(nil), s.multiplied...)
	cp.rules = append([]rule(nil), s.rules...)
	cp.relIter = s.relIter
	for h, ps := range s.buckets {
		cp.buckets[h] = append([]int(nil), ps...)
	}

	cp.right = s.right.Clone()
	cp.left = s.left.Clone()
	cp.reduced = s.reduced.Clone()

	return cp
}
