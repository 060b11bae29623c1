// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package congruence

// pairOrbitStrategy computes a congruence directly over the (finite)
// semigroup's own element positions: it unions the positions named by
// each generating pair, then closes the partition under multiplication by
// every generator until no further merge is forced. This is the
// "obvious" algorithm the original source's P strategy names; it only
// needs the semigroup to already be fully enumerated, which
// internal/fp.FP always is once Size() has been called.
type pairOrbitStrategy struct {
	kind Kind
	s    Semigroup

	parent []int
	done   bool
	queue  [][2]int
}

func newPairOrbitStrategy(kind Kind, s Semigroup, pairs []Pair) *pairOrbitStrategy {
	n := s.Size()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	st := &pairOrbitStrategy{kind: kind, s: s, parent: parent}
	for _, p := range pairs {
		st.queue = append(st.queue, [2]int{s.WordToPos(p.LHS), s.WordToPos(p.RHS)})
	}
	return st
}

func (st *pairOrbitStrategy) find(x int) int {
	for st.parent[x] != x {
		st.parent[x] = st.parent[st.parent[x]]
		x = st.parent[x]
	}
	return x
}

func (st *pairOrbitStrategy) union(a, b int) {
	ra, rb := st.find(a), st.find(b)
	if ra == rb {
		return
	}
	st.parent[ra] = rb
	nrGens := st.s.NrGens()
	switch st.kind {
	case Left:
		for g := 0; g < nrGens; g++ {
			st.queue = append(st.queue, [2]int{st.s.Left(a, g), st.s.Left(b, g)})
		}
	case Right:
		for g := 0; g < nrGens; g++ {
			st.queue = append(st.queue, [2]int{st.s.Right(a, g), st.s.Right(b, g)})
		}
	case TwoSided:
		for g := 0; g < nrGens; g++ {
			st.queue = append(st.queue, [2]int{st.s.Left(a, g), st.s.Left(b, g)})
			st.queue = append(st.queue, [2]int{st.s.Right(a, g), st.s.Right(b, g)})
		}
	}
}

func (st *pairOrbitStrategy) Name() string { return "pairorbit" }

func (st *pairOrbitStrategy) RunSteps(steps int) bool {
	if st.done {
		return true
	}
	for steps > 0 && len(st.queue) > 0 {
		pair := st.queue[len(st.queue)-1]
		st.queue = st.queue[:len(st.queue)-1]
		st.union(pair[0], pair[1])
		steps--
	}
	if len(st.queue) == 0 {
		st.done = true
	}
	return st.done
}

func (st *pairOrbitStrategy) Kill() {}

func (st *pairOrbitStrategy) nrClasses() int {
	seen := make(map[int]bool)
	for i := range st.parent {
		seen[st.find(i)] = true
	}
	return len(seen)
}

func (st *pairOrbitStrategy) classOf(word []int) int {
	return st.find(st.s.WordToPos(word))
}

func (st *pairOrbitStrategy) representatives() [][]int {
	return nontrivialFromSemigroup(st.s, st.classOf)
}
