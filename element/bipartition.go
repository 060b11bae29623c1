// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package element

import "hash/maphash"

//nolint:gochecknoglobals
var bipartitionSeed = maphash.MakeSeed()

// Bipartition is a set partition of {0, ..., n-1} union {n, ..., 2n-1} (the
// "top" and "bottom" points), represented by Blocks[i] = block index of
// point i, 0 <= Blocks[i] < NrBlocks. Two bipartitions are equal iff their
// block partitions coincide, regardless of block numbering.
//
// Bipartition exists primarily to exercise CloneWidened on a second,
// structurally distinct element type from Transformation: closure with a
// higher-degree generator must widen a bipartition by adding two points
// (one top, one bottom) to their own singleton blocks.
type Bipartition struct {
	N      int // half the number of points
	Blocks []int32
}

// NewBipartition builds a bipartition of 2n points from block labels,
// normalising them to canonical first-occurrence order.
func NewBipartition(n int, blocks []int32) *Bipartition {
	cp := make([]int32, len(blocks))
	copy(cp, blocks)
	return normalise(&Bipartition{N: n, Blocks: cp})
}

func normalise(b *Bipartition) *Bipartition {
	relabel := make(map[int32]int32, len(b.Blocks))
	var next int32
	for i, v := range b.Blocks {
		l, ok := relabel[v]
		if !ok {
			l = next
			relabel[v] = l
			next++
		}
		b.Blocks[i] = l
	}
	return b
}

func (b *Bipartition) nrBlocks() int32 {
	var max int32 = -1
	for _, v := range b.Blocks {
		if v > max {
			max = v
		}
	}
	return max + 1
}

func (b *Bipartition) Equal(other *Bipartition) bool {
	if b.N != other.N || len(b.Blocks) != len(other.Blocks) {
		return false
	}
	for i, v := range b.Blocks {
		if other.Blocks[i] != v {
			return false
		}
	}
	return true
}

func (b *Bipartition) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(bipartitionSeed)
	buf := make([]byte, 4*len(b.Blocks))
	for i, v := range b.Blocks {
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v >> 16)
		buf[4*i+3] = byte(v >> 24)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

func (b *Bipartition) Degree() int { return b.N }

// Complexity of bipartition composition is quadratic in the number of
// points via the standard join-the-middle-row construction.
func (b *Bipartition) Complexity() int { return 4 * b.N * b.N }

func (b *Bipartition) Identity() Bipartition {
	blocks := make([]int32, 2*b.N)
	for i := 0; i < b.N; i++ {
		blocks[i] = int32(i)
		blocks[b.N+i] = int32(i)
	}
	return Bipartition{N: b.N, Blocks: blocks}
}

func (b *Bipartition) Clone() Bipartition {
	cp := make([]int32, len(b.Blocks))
	copy(cp, b.Blocks)
	return Bipartition{N: b.N, Blocks: cp}
}

// CloneWidened adds delta new top/bottom point pairs, each forming its own
// singleton block.
func (b *Bipartition) CloneWidened(delta int) Bipartition {
	newN := b.N + delta
	blocks := make([]int32, 2*newN)
	for i := 0; i < b.N; i++ {
		blocks[i] = b.Blocks[i]
		blocks[newN+i] = b.Blocks[b.N+i]
	}
	next := b.nrBlocks()
	for i := b.N; i < newN; i++ {
		blocks[i] = next
		next++
		blocks[newN+i] = next
		next++
	}
	return *normalise(&Bipartition{N: newN, Blocks: blocks})
}

// Product computes the join of a's and b's block structures along their
// shared middle row (a's bottom points glued to b's top points), the
// standard bipartition composition algorithm, via a union-find over the
// 3n labelled points {a-top, shared middle, b-bottom}.
func (m *Bipartition) Product(a, bb *Bipartition, _ int) {
	n := a.N
	// union-find over: a-top [0,n), middle [n,2n), b-bottom [2n,3n)
	parent := make([]int, 3*n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(x, y int) {
		rx, ry := find(x), find(y)
		if rx != ry {
			parent[rx] = ry
		}
	}

	// a's own blocks, restricted to top+its-bottom(which is the middle row)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.Blocks[i] == a.Blocks[j] {
				union(i, j)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if a.Blocks[i] == a.Blocks[n+j] {
				union(i, n+j)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.Blocks[n+i] == a.Blocks[n+j] {
				union(n+i, n+j)
			}
		}
	}
	// b's own blocks, restricted to its-top(middle row)+bottom
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if bb.Blocks[i] == bb.Blocks[j] {
				union(n+i, n+j)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if bb.Blocks[i] == bb.Blocks[n+j] {
				union(n+i, 2*n+j)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if bb.Blocks[n+i] == bb.Blocks[n+j] {
				union(2*n+i, 2*n+j)
			}
		}
	}

	blocks := make([]int32, 2*n)
	labels := make(map[int]int32, n)
	var next int32
	label := func(root int) int32 {
		l, ok := labels[root]
		if !ok {
			l = next
			labels[root] = l
			next++
		}
		return l
	}
	for i := 0; i < n; i++ {
		blocks[i] = label(find(i))
	}
	for i := 0; i < n; i++ {
		blocks[n+i] = label(find(2*n + i))
	}
	m.N = n
	m.Blocks = blocks
}
